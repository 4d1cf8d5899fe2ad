package interview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/staffing/pkg/audit"
	"github.com/artem13815/staffing/pkg/candidate"
	"github.com/artem13815/staffing/pkg/notify"
	"github.com/artem13815/staffing/pkg/operator"
)

// UseCase — сценарии бронирования слота собеседования.
// Два вызывающих контекста: администратор (любой день и время) и кандидат
// по токену самозаписи (окно воскресенье–четверг, 11:00–14:00).
type UseCase interface {
	BookByAdmin(ctx context.Context, candidateID uuid.UUID, at time.Time, interviewer string, durationMinutes int, actor string) (Interview, error)
	BookPublic(ctx context.Context, candidateID, token uuid.UUID, at time.Time) (Interview, error)
}

type service struct {
	interviews Repository
	candidates candidate.Repository
	operators  operator.Repository
	journal    audit.Repository
	mailer     notify.Mailer
	window     *WindowValidator
	checker    *Checker
	loc        *time.Location
	location   string
	now        func() time.Time
}

func NewService(
	interviews Repository,
	candidates candidate.Repository,
	operators operator.Repository,
	journal audit.Repository,
	mailer notify.Mailer,
	loc *time.Location,
	location string,
	now func() time.Time,
) UseCase {
	return &service{
		interviews: interviews,
		candidates: candidates,
		operators:  operators,
		journal:    journal,
		mailer:     mailer,
		window:     NewWindowValidator(loc, now),
		checker:    NewChecker(interviews),
		loc:        loc,
		location:   location,
		now:        now,
	}
}

// BookByAdmin бронирует слот от имени оператора. Окно самозаписи не
// проверяется, но длительность фиксирована и общий ресурс один.
func (s *service) BookByAdmin(ctx context.Context, candidateID uuid.UUID, at time.Time, interviewer string, durationMinutes int, actor string) (Interview, error) {
	if durationMinutes != DurationMinutes {
		return Interview{}, ErrInvalidDuration
	}
	cand, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return Interview{}, err
	}
	busy, err := s.checker.Global(ctx, at)
	if err != nil {
		return Interview{}, err
	}
	if busy {
		return Interview{}, ErrSlotConflict
	}
	iv := s.newInterview(cand.ID, at, interviewer)
	if err := s.interviews.Create(ctx, iv); err != nil {
		// Проигравший конкурентной вставки получает тот же типизированный отказ.
		if errors.Is(err, ErrSlotTaken) {
			return Interview{}, ErrSlotConflict
		}
		return Interview{}, err
	}
	if err := s.markScheduled(ctx, cand, actor, "слот назначен оператором"); err != nil {
		return Interview{}, err
	}
	s.sendConfirmation(cand, iv)
	return iv, nil
}

// BookPublic бронирует слот по паре (кандидат, токен). Несовпадение пары
// даёт единый отказ ErrInvalidToken без уточнения, что именно не совпало.
func (s *service) BookPublic(ctx context.Context, candidateID, token uuid.UUID, at time.Time) (Interview, error) {
	cand, err := s.candidates.GetByIDAndToken(ctx, candidateID, token)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return Interview{}, ErrInvalidToken
		}
		return Interview{}, err
	}
	if err := s.window.Validate(at); err != nil {
		return Interview{}, err
	}
	busy, err := s.checker.Global(ctx, at)
	if err != nil {
		return Interview{}, err
	}
	if busy {
		return Interview{}, ErrSlotConflict
	}
	self, err := s.checker.ForCandidate(ctx, cand.ID, at)
	if err != nil {
		return Interview{}, err
	}
	if self {
		return Interview{}, ErrSelfConflict
	}
	iv := s.newInterview(cand.ID, at, "")
	if err := s.interviews.Create(ctx, iv); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return Interview{}, ErrSlotConflict
		}
		return Interview{}, err
	}
	if err := s.markScheduled(ctx, cand, "candidate", "кандидат выбрал слот по ссылке самозаписи"); err != nil {
		return Interview{}, err
	}
	s.sendConfirmation(cand, iv)
	s.notifyOperators(cand, iv)
	return iv, nil
}

func (s *service) newInterview(candidateID uuid.UUID, at time.Time, interviewer string) Interview {
	return Interview{
		ID:              uuid.New(),
		CandidateID:     candidateID,
		ScheduledAt:     at.UTC(),
		DurationMinutes: DurationMinutes,
		Interviewer:     interviewer,
		Location:        s.location,
		Status:          StatusScheduled,
		Decision:        DecisionPending,
		CreatedAt:       s.now().UTC(),
	}
}

func (s *service) markScheduled(ctx context.Context, cand candidate.Candidate, actor, note string) error {
	prior, err := candidate.Transition(&cand, candidate.StatusInterviewScheduled)
	if err != nil {
		return err
	}
	if err := s.candidates.UpdateStatus(ctx, cand.ID, cand.Status); err != nil {
		return err
	}
	return s.journal.Append(ctx, audit.Entry{
		ID:          uuid.New(),
		CandidateID: cand.ID,
		PriorStatus: string(prior),
		NewStatus:   string(cand.Status),
		Actor:       actor,
		Note:        note,
		CreatedAt:   s.now().UTC(),
	})
}

// Письма — fire-and-forget: сбой доставки логируется и не откатывает бронь.
func (s *service) sendConfirmation(cand candidate.Candidate, iv Interview) {
	when := iv.ScheduledAt.In(s.loc).Format("02.01.2006 в 15:04")
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nВаше собеседование назначено на %s (длительность %d минут).\nМесто встречи: %s\n\nЕсли время не подходит, ответьте на это письмо.",
		cand.FullName, when, iv.DurationMinutes, iv.Location,
	)
	if err := s.mailer.Send(context.Background(), cand.Email, "Собеседование назначено", body); err != nil {
		log.Printf("send booking confirmation to %s: %v", cand.Email, err)
	}
}

func (s *service) notifyOperators(cand candidate.Candidate, iv Interview) {
	ops, err := s.operators.ListActive(context.Background())
	if err != nil {
		log.Printf("list active operators: %v", err)
		return
	}
	when := iv.ScheduledAt.In(s.loc).Format("02.01.2006 в 15:04")
	body := fmt.Sprintf("Кандидат %s самостоятельно записался на собеседование: %s.", cand.FullName, when)
	for _, op := range ops {
		if err := s.mailer.Send(context.Background(), op.Email, "Новая самозапись на собеседование", body); err != nil {
			log.Printf("notify operator %s: %v", op.Email, err)
		}
	}
}
