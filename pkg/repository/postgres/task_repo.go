package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/staffing/pkg/onboarding"
)

// TaskRepository хранит задачи чек-листа онбординга.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) (*TaskRepository, error) {
	r := &TaskRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TaskRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS onboarding_tasks (
	id UUID PRIMARY KEY,
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	task_type TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	link TEXT NOT NULL DEFAULT '',
	sort_order INT NOT NULL,
	is_completed BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_onboarding_tasks_candidate ON onboarding_tasks(candidate_id);
`)
	return err
}

func (r *TaskRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]onboarding.Task, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, candidate_id, task_type, title, description, link, sort_order, is_completed
FROM onboarding_tasks WHERE candidate_id = $1 ORDER BY sort_order
`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []onboarding.Task
	for rows.Next() {
		var t onboarding.Task
		var taskType string
		if err := rows.Scan(&t.ID, &t.CandidateID, &taskType, &t.Title, &t.Description, &t.Link, &t.SortOrder, &t.IsCompleted); err != nil {
			return nil, err
		}
		t.Type = onboarding.TaskType(taskType)
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Insert(ctx context.Context, t onboarding.Task) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO onboarding_tasks (id, candidate_id, task_type, title, description, link, sort_order, is_completed)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, t.ID, t.CandidateID, string(t.Type), t.Title, t.Description, t.Link, t.SortOrder, t.IsCompleted)
	return err
}

// Update не трогает is_completed: прогресс кандидата переживает ремонт.
func (r *TaskRepository) Update(ctx context.Context, t onboarding.Task) error {
	_, err := r.pool.Exec(ctx, `
UPDATE onboarding_tasks SET task_type = $2, description = $3, link = $4, sort_order = $5
WHERE id = $1
`, t.ID, string(t.Type), t.Description, t.Link, t.SortOrder)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM onboarding_tasks WHERE id = $1`, id)
	return err
}
