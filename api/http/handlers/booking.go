package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/staffing/api/http/presenter"
	"github.com/artem13815/staffing/pkg/candidate"
	"github.com/artem13815/staffing/pkg/interview"
)

type BookingHandler struct {
	uc interview.UseCase
}

func NewBookingHandler(uc interview.UseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

type adminBookRequest struct {
	ScheduledAt     time.Time `json:"scheduledAt"`
	Interviewer     string    `json:"interviewer"`
	DurationMinutes int       `json:"durationMinutes"`
}

// @Summary Назначить собеседование (оператор)
// @Description Оператор может выбрать любой день и время; проверяется только занятость общего ресурса и фиксированная длительность 30 минут.
// @Tags        Собеседования
// @Accept      json
// @Produce     json
// @Param       id path string true "ID кандидата (UUID)"
// @Param       input body adminBookRequest true "Слот"
// @Security    BearerAuth
// @Success     201 {object} map[string]any
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     404 {object} presenter.ErrorResponse
// @Failure     409 {object} presenter.ErrorResponse
// @Router      /candidates/{id}/interview [post]
func (h *BookingHandler) BookByAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var req adminBookRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if req.ScheduledAt.IsZero() {
		return presenter.Error(c, http.StatusBadRequest, "scheduledAt обязателен")
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = interview.DurationMinutes
	}
	iv, err := h.uc.BookByAdmin(c.Context(), id, req.ScheduledAt, req.Interviewer, req.DurationMinutes, operatorName(c))
	if err != nil {
		return bookingError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"interviewId": iv.ID.String(),
		"scheduledAt": iv.ScheduledAt,
	})
}

type publicBookRequest struct {
	CandidateID     string    `json:"candidateId"`
	SchedulingToken string    `json:"schedulingToken"`
	ScheduledAt     time.Time `json:"scheduledAt"`
}

// @Summary Самозапись кандидата на собеседование
// @Description Кандидат записывается по токену из письма. Действует окно: воскресенье–четверг, старты 11:00–14:00, только :00 и :30.
// @Tags        Собеседования
// @Accept      json
// @Produce     json
// @Param       input body publicBookRequest true "Токен и слот"
// @Success     201 {object} map[string]any
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     409 {object} presenter.ErrorResponse
// @Failure     422 {object} presenter.ErrorResponse
// @Router      /schedule [post]
func (h *BookingHandler) BookPublic(c *fiber.Ctx) error {
	var req publicBookRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	candID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный candidateId")
	}
	token, err := uuid.Parse(req.SchedulingToken)
	if err != nil {
		// Непарсящийся токен не отличаем от несуществующего.
		return presenter.Error(c, http.StatusUnauthorized, "ссылка недействительна или устарела")
	}
	if req.ScheduledAt.IsZero() {
		return presenter.Error(c, http.StatusBadRequest, "scheduledAt обязателен")
	}
	iv, err := h.uc.BookPublic(c.Context(), candID, token, req.ScheduledAt)
	if err != nil {
		return bookingError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"interviewId": iv.ID.String(),
		"scheduledAt": iv.ScheduledAt,
	})
}

// bookingError транслирует типизированные отказы бронирования в HTTP-ответы.
func bookingError(c *fiber.Ctx, err error) error {
	var windowErr *interview.WindowError
	switch {
	case errors.Is(err, interview.ErrInvalidToken):
		return presenter.Error(c, http.StatusUnauthorized, "ссылка недействительна или устарела")
	case errors.As(err, &windowErr):
		return presenter.Error(c, http.StatusUnprocessableEntity, windowErr.Reason)
	case errors.Is(err, interview.ErrSlotConflict):
		return presenter.Error(c, http.StatusConflict, "слот уже занят — выберите другое время не ближе 30 минут")
	case errors.Is(err, interview.ErrSelfConflict):
		return presenter.Error(c, http.StatusConflict, "у вас уже есть собеседование в это время")
	case errors.Is(err, interview.ErrInvalidDuration):
		return presenter.Error(c, http.StatusBadRequest, "поддерживается только длительность 30 минут")
	case errors.Is(err, candidate.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "кандидат не найден")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "не удалось забронировать слот")
	}
}
