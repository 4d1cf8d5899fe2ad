package candidate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Candidate описывает кандидата в найме. Ядро владеет только полями
// Status и SchedulingToken; остальной профиль ведётся CRUD-слоем.
type Candidate struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Phone    string
	Status   Status
	// SchedulingToken — одноразовая способность самостоятельно записаться
	// на собеседование. Перевыпуск токена мгновенно гасит предыдущий.
	SchedulingToken *uuid.UUID
	// CourseCompleted — вход политики онбординга: прошёл ли кандидат
	// обязательный вводный курс заранее.
	CourseCompleted bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

var ErrNotFound = errors.New("candidate not found")

// Repository — порт хранения кандидатов.
type Repository interface {
	Create(ctx context.Context, c Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	// GetByIDAndToken ищет по точному совпадению пары (id, token).
	// Отсутствие совпадения неотличимо от неверного токена.
	GetByIDAndToken(ctx context.Context, id, token uuid.UUID) (Candidate, error)
	List(ctx context.Context, limit, offset int) ([]Candidate, error)
	ListByStatus(ctx context.Context, st Status) ([]Candidate, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, st Status) error
	UpdateSchedulingToken(ctx context.Context, id uuid.UUID, token uuid.UUID) error
}
