package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/staffing/api/http/presenter"
	"github.com/artem13815/staffing/pkg/onboarding"
)

type OnboardingHandler struct {
	uc onboarding.UseCase
}

func NewOnboardingHandler(uc onboarding.UseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// @Summary Ремонт чек-листов онбординга
// @Description Сверяет чек-листы всех нанятых кандидатов с канонической политикой и чинит расхождения. Идемпотентно, безопасно перезапускать.
// @Tags        Онбординг
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} onboarding.SweepResult
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /onboarding/repair [post]
func (h *OnboardingHandler) Repair(c *fiber.Ctx) error {
	res, err := h.uc.RepairAll(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "ремонт чек-листов не завершён: "+err.Error())
	}
	return presenter.JSON(c, http.StatusOK, res)
}
