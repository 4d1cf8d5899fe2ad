package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/staffing/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	candidates *handlers.CandidateHandler,
	booking *handlers.BookingHandler,
	onboarding *handlers.OnboardingHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Публичная самозапись: аутентификация только токеном из письма.
	v1.Post("/schedule", booking.BookPublic)

	// Административные маршруты под JWT.
	cg := v1.Group("/candidates", authMW)
	cg.Post("/", candidates.Create)
	cg.Get("/", candidates.List)
	cg.Get("/:id", candidates.GetByID)
	cg.Post("/:id/reachout", candidates.SendReachOut)
	cg.Post("/:id/hire", candidates.Hire)
	cg.Put("/:id/status", candidates.UpdateStatus)
	cg.Get("/:id/audit", candidates.AuditLog)
	cg.Post("/:id/interview", booking.BookByAdmin)

	og := v1.Group("/onboarding", authMW)
	og.Post("/repair", onboarding.Repair)
}
