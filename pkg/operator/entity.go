package operator

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a domain entity representing a back-office administrator.
type Operator struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	// Неактивные операторы не получают уведомления о самозаписи кандидатов.
	IsActive  bool
	CreatedAt time.Time
}
