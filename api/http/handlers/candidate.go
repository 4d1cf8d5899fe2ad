package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/staffing/api/http/presenter"
	"github.com/artem13815/staffing/pkg/audit"
	"github.com/artem13815/staffing/pkg/candidate"
)

type CandidateHandler struct {
	uc      candidate.UseCase
	journal audit.Repository
}

func NewCandidateHandler(uc candidate.UseCase, journal audit.Repository) *CandidateHandler {
	return &CandidateHandler{uc: uc, journal: journal}
}

type createCandidateRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CourseCompleted bool   `json:"courseCompleted"`
}

// @Summary Создать кандидата
// @Description Заводит карточку кандидата в статусе NEW.
// @Tags        Кандидаты
// @Accept      json
// @Produce     json
// @Param       input body createCandidateRequest true "Данные кандидата"
// @Security    BearerAuth
// @Success     201 {object} map[string]any
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var req createCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	cand, err := h.uc.Create(c.Context(), candidate.Candidate{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		CourseCompleted: req.CourseCompleted,
	})
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":     cand.ID.String(),
		"status": cand.Status,
	})
}

// @Summary Получить кандидата по ID
// @Tags    Кандидаты
// @Produce json
// @Param   id path string true "ID кандидата (UUID)"
// @Security BearerAuth
// @Success 200 {object} candidate.Candidate
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	cand, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "кандидат не найден")
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

// @Summary Список кандидатов
// @Tags    Кандидаты
// @Produce json
// @Security BearerAuth
// @Router  /candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	cands, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить список")
	}
	return presenter.JSON(c, http.StatusOK, cands)
}

// @Summary Отправить приглашение на самозапись
// @Description Выпускает новый токен самозаписи (прежний перестаёт действовать) и шлёт кандидату ссылку.
// @Tags        Кандидаты
// @Produce     json
// @Param       id path string true "ID кандидата (UUID)"
// @Security    BearerAuth
// @Success     200 {object} map[string]any
// @Failure     404 {object} presenter.ErrorResponse
// @Router      /candidates/{id}/reachout [post]
func (h *CandidateHandler) SendReachOut(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	cand, err := h.uc.SendReachOut(c.Context(), id, operatorName(c))
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "кандидат не найден")
		}
		return presenter.Error(c, http.StatusInternalServerError, "не удалось отправить приглашение")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":     cand.ID.String(),
		"status": cand.Status,
	})
}

// @Summary Нанять кандидата
// @Description Переводит кандидата в HIRED и создаёт чек-лист онбординга, если его ещё нет.
// @Tags        Кандидаты
// @Produce     json
// @Param       id path string true "ID кандидата (UUID)"
// @Security    BearerAuth
// @Success     200 {object} map[string]any
// @Failure     404 {object} presenter.ErrorResponse
// @Router      /candidates/{id}/hire [post]
func (h *CandidateHandler) Hire(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	cand, err := h.uc.Hire(c.Context(), id, operatorName(c))
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "кандидат не найден")
		}
		return presenter.Error(c, http.StatusInternalServerError, "не удалось нанять кандидата")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":     cand.ID.String(),
		"status": cand.Status,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// @Summary Изменить статус кандидата
// @Tags    Кандидаты
// @Accept  json
// @Produce json
// @Param   id path string true "ID кандидата (UUID)"
// @Param   input body updateStatusRequest true "Целевой статус"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/status [put]
func (h *CandidateHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	cand, err := h.uc.UpdateStatus(c.Context(), id, candidate.Status(req.Status), operatorName(c), req.Note)
	if err != nil {
		var unknown *candidate.ErrUnknownStatus
		switch {
		case errors.As(err, &unknown):
			return presenter.Error(c, http.StatusBadRequest, "неизвестный статус: "+req.Status)
		case errors.Is(err, candidate.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "кандидат не найден")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "не удалось изменить статус")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":     cand.ID.String(),
		"status": cand.Status,
	})
}

// @Summary История переходов статусов кандидата
// @Tags    Кандидаты
// @Produce json
// @Param   id path string true "ID кандидата (UUID)"
// @Security BearerAuth
// @Success 200 {array} audit.Entry
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/audit [get]
func (h *CandidateHandler) AuditLog(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	entries, err := h.journal.ListByCandidate(c.Context(), id)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить журнал")
	}
	return presenter.JSON(c, http.StatusOK, entries)
}
