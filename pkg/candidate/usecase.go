package candidate

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/staffing/pkg/audit"
	"github.com/artem13815/staffing/pkg/notify"
)

// ChecklistReconciler запускает сверку чек-листа онбординга при найме.
// Интерфейс объявлен здесь, чтобы не тянуть пакет onboarding в домен кандидата.
type ChecklistReconciler interface {
	EnsureChecklist(ctx context.Context, c Candidate) error
}

// UseCase — сценарии ведения кандидата по конвейеру найма.
type UseCase interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	List(ctx context.Context, limit, offset int) ([]Candidate, error)
	// SendReachOut выпускает свежий токен самозаписи (старый гаснет),
	// переводит кандидата в REACH_OUT_EMAIL_SENT и шлёт ссылку на запись.
	SendReachOut(ctx context.Context, id uuid.UUID, actor string) (Candidate, error)
	// Hire переводит кандидата в HIRED и создаёт чек-лист онбординга,
	// если задач ещё нет.
	Hire(ctx context.Context, id uuid.UUID, actor string) (Candidate, error)
	// UpdateStatus — произвольный переход между известными состояниями;
	// корректность бизнес-последовательности контролирует админка.
	UpdateStatus(ctx context.Context, id uuid.UUID, to Status, actor, note string) (Candidate, error)
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo       Repository
	journal    audit.Repository
	mailer     notify.Mailer
	reconciler ChecklistReconciler
	baseURL    string
	now        func() time.Time
}

func NewService(repo Repository, journal audit.Repository, mailer notify.Mailer, reconciler ChecklistReconciler, baseURL string, now func() time.Time) UseCase {
	return &service{
		repo:       repo,
		journal:    journal,
		mailer:     mailer,
		reconciler: reconciler,
		baseURL:    strings.TrimRight(baseURL, "/"),
		now:        now,
	}
}

func (s *service) Create(ctx context.Context, c Candidate) (Candidate, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
	if c.FullName == "" || c.Email == "" {
		return Candidate{}, ErrValidation("fullName и email обязательны")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = StatusNew
	}
	if !KnownStatus(c.Status) {
		return Candidate{}, &ErrUnknownStatus{Status: c.Status}
	}
	c.CreatedAt = s.now().UTC()
	c.UpdatedAt = c.CreatedAt
	if err := s.repo.Create(ctx, c); err != nil {
		return Candidate{}, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Candidate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Candidate, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) SendReachOut(ctx context.Context, id uuid.UUID, actor string) (Candidate, error) {
	cand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, err
	}
	// Перевыпуск: lookup идёт по точному значению, поэтому прежний токен
	// перестаёт работать сразу после записи нового.
	token := uuid.New()
	if err := s.repo.UpdateSchedulingToken(ctx, cand.ID, token); err != nil {
		return Candidate{}, err
	}
	cand.SchedulingToken = &token

	if err := s.transition(ctx, &cand, StatusReachOutEmailSent, actor, "отправлено приглашение на самозапись"); err != nil {
		return Candidate{}, err
	}

	link := fmt.Sprintf("%s/schedule?candidateId=%s&token=%s", s.baseURL, cand.ID, token)
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nПриглашаем вас на собеседование. Выберите удобный слот по ссылке:\n%s\n\nЗапись открыта с воскресенья по четверг, с 11:00 до 14:00.",
		cand.FullName, link,
	)
	if err := s.mailer.Send(context.Background(), cand.Email, "Приглашение на собеседование", body); err != nil {
		log.Printf("send reach-out to %s: %v", cand.Email, err)
	}
	return cand, nil
}

func (s *service) Hire(ctx context.Context, id uuid.UUID, actor string) (Candidate, error) {
	cand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, err
	}
	if err := s.transition(ctx, &cand, StatusHired, actor, "кандидат принят"); err != nil {
		return Candidate{}, err
	}
	if err := s.reconciler.EnsureChecklist(ctx, cand); err != nil {
		return Candidate{}, err
	}
	return cand, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, to Status, actor, note string) (Candidate, error) {
	cand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, err
	}
	if err := s.transition(ctx, &cand, to, actor, note); err != nil {
		return Candidate{}, err
	}
	return cand, nil
}

// transition выполняет переход машины состояний и пишет одну запись аудита.
func (s *service) transition(ctx context.Context, cand *Candidate, to Status, actor, note string) error {
	prior, err := Transition(cand, to)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, cand.ID, cand.Status); err != nil {
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
