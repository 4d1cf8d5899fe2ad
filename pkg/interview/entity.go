package interview

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Единственный поддерживаемый размер слота: один интервьюер, одна
// переговорка, слоты по 30 минут.
const (
	DurationMinutes = 30
	SlotDuration    = 30 * time.Minute
)

// Status — состояние назначенного собеседования.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
	StatusCanceled  Status = "CANCELED"
)

// Decision — решение по итогам собеседования.
type Decision string

const (
	DecisionPending Decision = "PENDING"
	DecisionAdvance Decision = "ADVANCE"
	DecisionReject  Decision = "REJECT"
)

// Interview описывает один забронированный слот.
type Interview struct {
	ID              uuid.UUID
	CandidateID     uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Interviewer     string
	Location        string
	Status          Status
	Decision        Decision
	ReminderSentAt  *time.Time
	CreatedAt       time.Time
}

// Repository — порт хранения собеседований.
type Repository interface {
	// Create вставляет запись; при занятом слоте возвращает ErrSlotTaken
	// (уникальный ключ по нормализованному началу слота).
	Create(ctx context.Context, iv Interview) error
	// ExistsScheduledBetween: есть ли SCHEDULED-собеседование, начинающееся
	// строго внутри открытого интервала (from, to).
	ExistsScheduledBetween(ctx context.Context, from, to time.Time) (bool, error)
	ExistsScheduledForCandidateBetween(ctx context.Context, candidateID uuid.UUID, from, to time.Time) (bool, error)
}
