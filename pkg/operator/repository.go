package operator

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("operator already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository abstracts persistence concerns from the domain layer.
type Repository interface {
	Create(ctx context.Context, op Operator) error
	GetByEmail(ctx context.Context, email string) (Operator, error)
	// ListActive возвращает операторов, которым рассылаются уведомления.
	ListActive(ctx context.Context) ([]Operator, error)
}
