package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry — неизменяемая запись о смене статуса кандидата. Только добавление.
type Entry struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	PriorStatus string
	NewStatus   string
	Actor       string
	Note        string
	CreatedAt   time.Time
}

// Repository — порт журнала переходов. Записи не изменяются и не удаляются.
type Repository interface {
	Append(ctx context.Context, e Entry) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Entry, error)
}
