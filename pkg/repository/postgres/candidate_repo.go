package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/staffing/pkg/candidate"
)

// CandidateRepository implements candidate.Repository backed by PostgreSQL (pgx).
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) (*CandidateRepository, error) {
	r := &CandidateRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CandidateRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS candidates (
	id UUID PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	scheduling_token UUID,
	course_completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates(status);
`)
	return err
}

func (r *CandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO candidates (id, full_name, email, phone, status, scheduling_token, course_completed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, c.ID, c.FullName, strings.ToLower(c.Email), c.Phone, string(c.Status), c.SchedulingToken, c.CourseCompleted, c.CreatedAt, c.UpdatedAt)
	return err
}

const candidateColumns = `id, full_name, email, phone, status, scheduling_token, course_completed, created_at, updated_at`

func (r *CandidateRepository) scanOne(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	var status string
	var created, updated time.Time
	if err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &status, &c.SchedulingToken, &c.CourseCompleted, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	c.Status = candidate.Status(status)
	c.CreatedAt = created.UTC()
	c.UpdatedAt = updated.UTC()
	return c, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	return r.scanOne(row)
}

// GetByIDAndToken: точное совпадение пары; любое несовпадение выглядит
// одинаково (ErrNotFound), чтобы ответ не подсказывал, что именно неверно.
func (r *CandidateRepository) GetByIDAndToken(ctx context.Context, id, token uuid.UUID) (candidate.Candidate, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+candidateColumns+` FROM candidates WHERE id = $1 AND scheduling_token = $2
`, id, token)
	return r.scanOne(row)
}

func (r *CandidateRepository) List(ctx context.Context, limit, offset int) ([]candidate.Candidate, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+candidateColumns+` FROM candidates ORDER BY created_at DESC LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *CandidateRepository) ListByStatus(ctx context.Context, st candidate.Status) ([]candidate.Candidate, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+candidateColumns+` FROM candidates WHERE status = $1 ORDER BY created_at
`, string(st))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *CandidateRepository) collect(rows pgx.Rows) ([]candidate.Candidate, error) {
	var res []candidate.Candidate
	for rows.Next() {
		var c candidate.Candidate
		var status string
		var created, updated time.Time
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &status, &c.SchedulingToken, &c.CourseCompleted, &created, &updated); err != nil {
			return nil, err
		}
		c.Status = candidate.Status(status)
		c.CreatedAt = created.UTC()
		c.UpdatedAt = updated.UTC()
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *CandidateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, st candidate.Status) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE candidates SET status = $2, updated_at = $3 WHERE id = $1
`, id, string(st), time.Now().UTC())
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func (r *CandidateRepository) UpdateSchedulingToken(ctx context.Context, id uuid.UUID, token uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE candidates SET scheduling_token = $2, updated_at = $3 WHERE id = $1
`, id, token, time.Now().UTC())
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return candidate.ErrNotFound
	}
	return nil
}
