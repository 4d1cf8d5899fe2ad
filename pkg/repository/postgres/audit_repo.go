package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/staffing/pkg/audit"
)

// AuditRepository — журнал переходов статусов. Только вставка и чтение.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) (*AuditRepository, error) {
	r := &AuditRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AuditRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS status_audit (
	id UUID PRIMARY KEY,
	candidate_id UUID NOT NULL,
	prior_status TEXT NOT NULL,
	new_status TEXT NOT NULL,
	actor TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_status_audit_candidate ON status_audit(candidate_id, created_at);
`)
	return err
}

func (r *AuditRepository) Append(ctx context.Context, e audit.Entry) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO status_audit (id, candidate_id, prior_status, new_status, actor, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, e.ID, e.CandidateID, e.PriorStatus, e.NewStatus, e.Actor, e.Note, e.CreatedAt)
	return err
}

func (r *AuditRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]audit.Entry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, candidate_id, prior_status, new_status, actor, note, created_at
FROM status_audit WHERE candidate_id = $1 ORDER BY created_at
`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []audit.Entry
	for rows.Next() {
		var e audit.Entry
		var created time.Time
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.PriorStatus, &e.NewStatus, &e.Actor, &e.Note, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = created.UTC()
		res = append(res, e)
	}
	return res, rows.Err()
}
