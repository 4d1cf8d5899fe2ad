package candidate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/staffing/pkg/audit"
)

type fakeRepo struct {
	byID map[uuid.UUID]Candidate
}

func newFakeRepo(cands ...Candidate) *fakeRepo {
	r := &fakeRepo{byID: map[uuid.UUID]Candidate{}}
	for _, c := range cands {
		r.byID[c.ID] = c
	}
	return r
}

func (f *fakeRepo) Create(ctx context.Context, c Candidate) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (Candidate, error) {
	c, ok := f.byID[id]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetByIDAndToken(ctx context.Context, id, token uuid.UUID) (Candidate, error) {
	c, ok := f.byID[id]
	if !ok || c.SchedulingToken == nil || *c.SchedulingToken != token {
		return Candidate{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) List(ctx context.Context, limit, offset int) ([]Candidate, error) {
	var res []Candidate
	for _, c := range f.byID {
		res = append(res, c)
	}
	return res, nil
}

func (f *fakeRepo) ListByStatus(ctx context.Context, st Status) ([]Candidate, error) {
	var res []Candidate
	for _, c := range f.byID {
		if c.Status == st {
			res = append(res, c)
		}
	}
	return res, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, st Status) error {
	c, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = st
	f.byID[id] = c
	return nil
}

func (f *fakeRepo) UpdateSchedulingToken(ctx context.Context, id uuid.UUID, token uuid.UUID) error {
	c, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	c.SchedulingToken = &token
	f.byID[id] = c
	return nil
}

type fakeAudit struct {
	entries []audit.Entry
}

func (f *fakeAudit) Append(ctx context.Context, e audit.Entry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeAudit) ListByCandidate(ctx context.Context, id uuid.UUID) ([]audit.Entry, error) {
	return f.entries, nil
}

type fakeMailer struct {
	sent []string // to + body через перевод строки
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	f.sent = append(f.sent, to+"\n"+body)
	return nil
}

type fakeReconciler struct {
	calls []uuid.UUID
}

func (f *fakeReconciler) EnsureChecklist(ctx context.Context, c Candidate) error {
	f.calls = append(f.calls, c.ID)
	return nil
}

type env struct {
	svc        UseCase
	repo       *fakeRepo
	journal    *fakeAudit
	mailer     *fakeMailer
	reconciler *fakeReconciler
}

func newEnv(cands ...Candidate) *env {
	e := &env{
		repo:       newFakeRepo(cands...),
		journal:    &fakeAudit{},
		mailer:     &fakeMailer{},
		reconciler: &fakeReconciler{},
	}
	now := func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	e.svc = NewService(e.repo, e.journal, e.mailer, e.reconciler, "https://jobs.example.com/", now)
	return e
}

func TestCreate_Validation(t *testing.T) {
	e := newEnv()
	_, err := e.svc.Create(context.Background(), Candidate{FullName: " ", Email: "a@b.c"})
	assert.Error(t, err)
	_, err = e.svc.Create(context.Background(), Candidate{FullName: "Мария", Email: ""})
	assert.Error(t, err)

	cand, err := e.svc.Create(context.Background(), Candidate{FullName: "Мария", Email: "maria@example.com"})
	require.NoError(t, err)
	assert.Equal(t, StatusNew, cand.Status)
	assert.NotEqual(t, uuid.Nil, cand.ID)
}

func TestSendReachOut_MintsFreshToken(t *testing.T) {
	old := uuid.New()
	cand := Candidate{ID: uuid.New(), FullName: "Мария", Email: "maria@example.com", Status: StatusReachOut, SchedulingToken: &old}
	e := newEnv(cand)

	got, err := e.svc.SendReachOut(context.Background(), cand.ID, "hr-lead")
	require.NoError(t, err)

	require.NotNil(t, got.SchedulingToken)
	assert.NotEqual(t, old, *got.SchedulingToken, "прежний токен должен быть перезаписан")
	assert.Equal(t, StatusReachOutEmailSent, got.Status)

	stored, _ := e.repo.GetByID(context.Background(), cand.ID)
	require.NotNil(t, stored.SchedulingToken)
	assert.Equal(t, *got.SchedulingToken, *stored.SchedulingToken)

	require.Len(t, e.journal.entries, 1)
	assert.Equal(t, string(StatusReachOut), e.journal.entries[0].PriorStatus)
	assert.Equal(t, string(StatusReachOutEmailSent), e.journal.entries[0].NewStatus)
	assert.Equal(t, "hr-lead", e.journal.entries[0].Actor)

	require.Len(t, e.mailer.sent, 1)
	assert.True(t, strings.HasPrefix(e.mailer.sent[0], cand.Email))
	assert.Contains(t, e.mailer.sent[0], got.SchedulingToken.String(), "письмо содержит ссылку с новым токеном")
	assert.Contains(t, e.mailer.sent[0], "https://jobs.example.com/schedule")
}

func TestHire_TriggersChecklist(t *testing.T) {
	cand := Candidate{ID: uuid.New(), FullName: "Мария", Email: "maria@example.com", Status: StatusInterviewCompleted}
	e := newEnv(cand)

	got, err := e.svc.Hire(context.Background(), cand.ID, "hr-lead")
	require.NoError(t, err)
	assert.Equal(t, StatusHired, got.Status)

	require.Len(t, e.reconciler.calls, 1)
	assert.Equal(t, cand.ID, e.reconciler.calls[0])

	require.Len(t, e.journal.entries, 1)
	assert.Equal(t, string(StatusHired), e.journal.entries[0].NewStatus)
}

func TestUpdateStatus_UnknownTarget(t *testing.T) {
	cand := Candidate{ID: uuid.New(), FullName: "Мария", Email: "maria@example.com", Status: StatusNew}
	e := newEnv(cand)

	_, err := e.svc.UpdateStatus(context.Background(), cand.ID, "ARCHIVED", "hr-lead", "")
	var unknown *ErrUnknownStatus
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, e.journal.entries, "неудачный переход не попадает в журнал")
}

func TestUpdateStatus_WritesAuditNote(t *testing.T) {
	cand := Candidate{ID: uuid.New(), FullName: "Мария", Email: "maria@example.com", Status: StatusNew}
	e := newEnv(cand)

	got, err := e.svc.UpdateStatus(context.Background(), cand.ID, StatusStalled, "hr-lead", "кандидат перестал отвечать")
	require.NoError(t, err)
	assert.Equal(t, StatusStalled, got.Status)

	require.Len(t, e.journal.entries, 1)
	assert.Equal(t, "кандидат перестал отвечать", e.journal.entries[0].Note)
}
