package onboarding

import (
	"context"

	"github.com/google/uuid"
)

// Task — одна задача чек-листа онбординга конкретного кандидата.
// Создаётся и чинится реконсайлером; IsCompleted отмечает кандидатский
// кабинет вне этого ядра.
type Task struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Type        TaskType
	Title       string
	Description string
	Link        string
	SortOrder   int
	IsCompleted bool
}

// Repository — порт хранения задач чек-листа.
type Repository interface {
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Task, error)
	Insert(ctx context.Context, t Task) error
	// Update правит содержимое и порядок задачи, не трогая IsCompleted.
	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
