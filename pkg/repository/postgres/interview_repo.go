package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/staffing/pkg/interview"
)

// InterviewRepository хранит забронированные слоты собеседований.
type InterviewRepository struct {
	pool *pgxpool.Pool
}

func NewInterviewRepository(pool *pgxpool.Pool) (*InterviewRepository, error) {
	r := &InterviewRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *InterviewRepository) ensureSchema(ctx context.Context) error {
	// Частичный уникальный индекс по нормализованному началу слота закрывает
	// гонку "проверили-вставили": второй конкурентный insert падает с 23505.
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS interviews (
	id UUID PRIMARY KEY,
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	scheduled_at TIMESTAMPTZ NOT NULL,
	duration_minutes INT NOT NULL DEFAULT 30,
	interviewer TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	decision TEXT NOT NULL,
	reminder_sent_at TIMESTAMPTZ,
	slot_key TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS uq_interviews_slot
	ON interviews(slot_key) WHERE status = 'SCHEDULED';
CREATE INDEX IF NOT EXISTS idx_interviews_candidate ON interviews(candidate_id);
`)
	return err
}

func (r *InterviewRepository) Create(ctx context.Context, iv interview.Interview) error {
	slotKey := iv.ScheduledAt.UTC().Truncate(interview.SlotDuration)
	_, err := r.pool.Exec(ctx, `
INSERT INTO interviews (id, candidate_id, scheduled_at, duration_minutes, interviewer, location, status, decision, reminder_sent_at, slot_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, iv.ID, iv.CandidateID, iv.ScheduledAt.UTC(), iv.DurationMinutes, iv.Interviewer, iv.Location,
		string(iv.Status), string(iv.Decision), iv.ReminderSentAt, slotKey, iv.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return interview.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *InterviewRepository) ExistsScheduledBetween(ctx context.Context, from, to time.Time) (bool, error) {
	row := r.pool.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1 FROM interviews
	WHERE status = $1 AND scheduled_at > $2 AND scheduled_at < $3
)`, string(interview.StatusScheduled), from.UTC(), to.UTC())
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *InterviewRepository) ExistsScheduledForCandidateBetween(ctx context.Context, candidateID uuid.UUID, from, to time.Time) (bool, error) {
	row := r.pool.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1 FROM interviews
	WHERE candidate_id = $1 AND status = $2 AND scheduled_at > $3 AND scheduled_at < $4
)`, candidateID, string(interview.StatusScheduled), from.UTC(), to.UTC())
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
