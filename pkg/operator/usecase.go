package operator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UseCase describes authentication/registration behavior for operators.
type UseCase interface {
	Register(ctx context.Context, email, name, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	Operator Operator
	Token    string
}

type service struct {
	repo   Repository
	tokens TokenGenerator
}

// NewService returns default implementation of UseCase.
func NewService(repo Repository, tokens TokenGenerator) UseCase {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, email, name, password string) (AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	// If operator exists, fail fast (best-effort check)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	op := Operator{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(passwordHash),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, op); err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, op)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Operator: op, Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	op, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, op)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Operator: op, Token: token}, nil
}
