package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/staffing/pkg/operator"
)

// OperatorRepository implements operator.Repository backed by PostgreSQL (pgx).
type OperatorRepository struct {
	pool *pgxpool.Pool
}

func NewOperatorRepository(pool *pgxpool.Pool) (*OperatorRepository, error) {
	repo := &OperatorRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *OperatorRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS operators (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *OperatorRepository) Create(ctx context.Context, op operator.Operator) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO operators (id, email, name, password_hash, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, op.ID, strings.ToLower(op.Email), op.Name, op.PasswordHash, op.IsActive, op.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return operator.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *OperatorRepository) GetByEmail(ctx context.Context, email string) (operator.Operator, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, email, name, password_hash, is_active, created_at
FROM operators WHERE email = $1
`, strings.ToLower(email))
	var op operator.Operator
	var createdAt time.Time
	if err := row.Scan(&op.ID, &op.Email, &op.Name, &op.PasswordHash, &op.IsActive, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return operator.Operator{}, operator.ErrNotFound
		}
		return operator.Operator{}, err
	}
	op.CreatedAt = createdAt.UTC()
	return op, nil
}

func (r *OperatorRepository) ListActive(ctx context.Context) ([]operator.Operator, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, email, name, password_hash, is_active, created_at
FROM operators WHERE is_active ORDER BY created_at
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []operator.Operator
	for rows.Next() {
		var op operator.Operator
		var createdAt time.Time
		if err := rows.Scan(&op.ID, &op.Email, &op.Name, &op.PasswordHash, &op.IsActive, &createdAt); err != nil {
			return nil, err
		}
		op.CreatedAt = createdAt.UTC()
		res = append(res, op)
	}
	return res, rows.Err()
}
