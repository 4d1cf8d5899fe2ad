package onboarding

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/staffing/pkg/candidate"
)

// RepairResult — итог реконсиляции одного кандидата.
type RepairResult struct {
	Changed  bool
	Inserted int
	Updated  int
	Deleted  int
}

// SweepResult — итог массовой проверки по всем нанятым кандидатам.
type SweepResult struct {
	Repaired       int `json:"repairedCount"`
	AlreadyCorrect int `json:"alreadyCorrectCount"`
	Total          int `json:"totalCount"`
}

// UseCase — сценарии сверки чек-листа с канонической политикой.
type UseCase interface {
	// Reconcile приводит сохранённый чек-лист кандидата к каноническому.
	// Идемпотентен: повторный вызов без изменения входов ничего не меняет.
	Reconcile(ctx context.Context, cand candidate.Candidate) (RepairResult, error)
	// EnsureChecklist создаёт чек-лист при первом переходе в HIRED,
	// если задач у кандидата ещё нет.
	EnsureChecklist(ctx context.Context, cand candidate.Candidate) error
	// RepairAll — ремонтный проход по всем нанятым кандидатам.
	RepairAll(ctx context.Context) (SweepResult, error)
}

type service struct {
	tasks      Repository
	candidates candidate.Repository
}

func NewService(tasks Repository, candidates candidate.Repository) UseCase {
	return &service{tasks: tasks, candidates: candidates}
}

// Reconcile сверяет сохранённые задачи с каноническим списком по заголовку:
// лишние удаляются, недостающие вставляются, разъехавшиеся порядок и
// содержимое правятся. IsCompleted у совпавших задач сохраняется — ремонт
// не сбрасывает прогресс кандидата.
func (s *service) Reconcile(ctx context.Context, cand candidate.Candidate) (RepairResult, error) {
	specs := CanonicalTasks(cand.CourseCompleted)
	stored, err := s.tasks.ListByCandidate(ctx, cand.ID)
	if err != nil {
		return RepairResult{}, err
	}

	var res RepairResult
	byTitle := make(map[string]Task, len(stored))
	for _, t := range stored {
		if _, dup := byTitle[t.Title]; dup {
			// Дубликат заголовка: оставляем первый, дубль удаляем.
			if err := s.tasks.Delete(ctx, t.ID); err != nil {
				return res, err
			}
			res.Deleted++
			continue
		}
		byTitle[t.Title] = t
	}

	for _, spec := range specs {
		t, ok := byTitle[spec.Title]
		if !ok {
			nt := Task{
				ID:          uuid.New(),
				CandidateID: cand.ID,
				Type:        spec.Type,
				Title:       spec.Title,
				Description: spec.Description,
				Link:        spec.Link,
				SortOrder:   spec.SortOrder,
			}
			if err := s.tasks.Insert(ctx, nt); err != nil {
				return res, err
			}
			res.Inserted++
			continue
		}
		delete(byTitle, spec.Title)
		if t.Type != spec.Type || t.Description != spec.Description || t.Link != spec.Link || t.SortOrder != spec.SortOrder {
			t.Type = spec.Type
			t.Description = spec.Description
			t.Link = spec.Link
			t.SortOrder = spec.SortOrder
			if err := s.tasks.Update(ctx, t); err != nil {
				return res, err
			}
			res.Updated++
		}
	}

	// Всё, что не сматчилось с каноном — лишнее.
	for _, t := range byTitle {
		if err := s.tasks.Delete(ctx, t.ID); err != nil {
			return res, err
		}
		res.Deleted++
	}

	res.Changed = res.Inserted+res.Updated+res.Deleted > 0
	return res, nil
}

func (s *service) EnsureChecklist(ctx context.Context, cand candidate.Candidate) error {
	stored, err := s.tasks.ListByCandidate(ctx, cand.ID)
	if err != nil {
		return err
	}
	if len(stored) > 0 {
		return nil
	}
	_, err = s.Reconcile(ctx, cand)
	return err
}

// RepairAll обходит нанятых кандидатов независимо друг от друга: падение на
// середине оставляет уже починенных починенными, повторный запуск безопасен.
func (s *service) RepairAll(ctx context.Context) (SweepResult, error) {
	hired, err := s.candidates.ListByStatus(ctx, candidate.StatusHired)
	if err != nil {
		return SweepResult{}, err
	}
	res := SweepResult{Total: len(hired)}
	for _, cand := range hired {
		rr, err := s.Reconcile(ctx, cand)
		if err != nil {
			return res, err
		}
		if rr.Changed {
			res.Repaired++
		} else {
			res.AlreadyCorrect++
		}
	}
	return res, nil
}
