package interview

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/staffing/pkg/candidate"
	"github.com/artem13815/staffing/pkg/operator"
)

type bookingEnv struct {
	svc        UseCase
	interviews *fakeInterviewRepo
	candidates *fakeCandidateRepo
	operators  *fakeOperatorRepo
	journal    *fakeAuditRepo
	mailer     *fakeMailer
}

func newBookingEnv(t *testing.T, cands ...candidate.Candidate) *bookingEnv {
	t.Helper()
	env := &bookingEnv{
		interviews: &fakeInterviewRepo{},
		candidates: newFakeCandidateRepo(cands...),
		operators:  &fakeOperatorRepo{},
		journal:    &fakeAuditRepo{},
		mailer:     &fakeMailer{},
	}
	env.svc = NewService(
		env.interviews, env.candidates, env.operators, env.journal, env.mailer,
		time.UTC, "https://meet.example.com/room-1",
		func() time.Time { return testNow },
	)
	return env
}

func testCandidate() candidate.Candidate {
	return candidate.Candidate{
		ID:       uuid.New(),
		FullName: "Анна Смирнова",
		Email:    "anna@example.com",
		Status:   candidate.StatusToInterview,
	}
}

func TestBookByAdmin_RejectsWrongDuration(t *testing.T) {
	cand := testCandidate()
	env := newBookingEnv(t, cand)

	for _, minutes := range []int{15, 45, 60} {
		_, err := env.svc.BookByAdmin(context.Background(), cand.ID, testNow.Add(24*time.Hour), "Игорь", minutes, "admin")
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
	assert.Empty(t, env.interviews.interviews, "ничего не должно быть создано")
}

func TestBookByAdmin_UnknownCandidate(t *testing.T) {
	env := newBookingEnv(t)
	_, err := env.svc.BookByAdmin(context.Background(), uuid.New(), testNow.Add(24*time.Hour), "Игорь", 30, "admin")
	assert.ErrorIs(t, err, candidate.ErrNotFound)
}

func TestBookByAdmin_Success(t *testing.T) {
	cand := testCandidate()
	env := newBookingEnv(t, cand)

	// Админ не ограничен окном: суббота, 19:45.
	at := time.Date(2025, 6, 7, 19, 45, 0, 0, time.UTC)
	iv, err := env.svc.BookByAdmin(context.Background(), cand.ID, at, "Игорь", 30, "admin")
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, iv.Status)
	assert.Equal(t, DecisionPending, iv.Decision)
	assert.Equal(t, DurationMinutes, iv.DurationMinutes)
	assert.Equal(t, "Игорь", iv.Interviewer)

	got, err := env.candidates.GetByID(context.Background(), cand.ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusInterviewScheduled, got.Status)

	require.Len(t, env.journal.entries, 1)
	entry := env.journal.entries[0]
	assert.Equal(t, string(candidate.StatusToInterview), entry.PriorStatus)
	assert.Equal(t, string(candidate.StatusInterviewScheduled), entry.NewStatus)
	assert.Equal(t, "admin", entry.Actor)

	// Письмо только кандидату; операторов при админской брони не уведомляем.
	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, cand.Email, env.mailer.sent[0].To)
}

func TestBookByAdmin_SlotConflict(t *testing.T) {
	cand := testCandidate()
	other := testCandidate()
	env := newBookingEnv(t, cand, other)

	base := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	_, err := env.svc.BookByAdmin(context.Background(), other.ID, base, "Игорь", 30, "admin")
	require.NoError(t, err)

	// Ближе 30 минут — отказ.
	for _, delta := range []time.Duration{0, 15 * time.Minute, 29 * time.Minute, -15 * time.Minute} {
		_, err := env.svc.BookByAdmin(context.Background(), cand.ID, base.Add(delta), "Игорь", 30, "admin")
		assert.ErrorIs(t, err, ErrSlotConflict, "delta=%s", delta)
	}

	// Ровно 30 минут — свободно.
	_, err = env.svc.BookByAdmin(context.Background(), cand.ID, base.Add(30*time.Minute), "Игорь", 30, "admin")
	assert.NoError(t, err)
}

func TestBookByAdmin_MapsSlotTakenToConflict(t *testing.T) {
	cand := testCandidate()
	env := newBookingEnv(t, cand)
	env.interviews.createErr = ErrSlotTaken

	_, err := env.svc.BookByAdmin(context.Background(), cand.ID, testNow.Add(24*time.Hour), "Игорь", 30, "admin")
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, env.journal.entries, "при отказе вставки статус не меняется")
}

func TestBookPublic_InvalidToken(t *testing.T) {
	token := uuid.New()
	cand := testCandidate()
	cand.SchedulingToken = &token
	env := newBookingEnv(t, cand)

	at := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	_, err := env.svc.BookPublic(context.Background(), cand.ID, uuid.New(), at)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = env.svc.BookPublic(context.Background(), uuid.New(), token, at)
	assert.ErrorIs(t, err, ErrInvalidToken, "чужой кандидат и неверный токен неразличимы")
}

func TestBookPublic_ReissuedTokenInvalidatesOld(t *testing.T) {
	oldToken := uuid.New()
	cand := testCandidate()
	cand.SchedulingToken = &oldToken
	env := newBookingEnv(t, cand)

	// Перевыпуск токена: старый мгновенно перестаёт действовать.
	newToken := uuid.New()
	require.NoError(t, env.candidates.UpdateSchedulingToken(context.Background(), cand.ID, newToken))

	at := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	_, err := env.svc.BookPublic(context.Background(), cand.ID, oldToken, at)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = env.svc.BookPublic(context.Background(), cand.ID, newToken, at)
	assert.NoError(t, err)
}

func TestBookPublic_WindowViolationPassesThrough(t *testing.T) {
	token := uuid.New()
	cand := testCandidate()
	cand.SchedulingToken = &token
	env := newBookingEnv(t, cand)

	// Пятница — вне окна самозаписи.
	_, err := env.svc.BookPublic(context.Background(), cand.ID, token, time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC))
	var windowErr *WindowError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, ErrDayNotAllowed, windowErr)
}

func TestBookPublic_SuccessNotifiesOperators(t *testing.T) {
	token := uuid.New()
	cand := testCandidate()
	cand.SchedulingToken = &token
	env := newBookingEnv(t, cand)
	env.operators.active = []operator.Operator{
		{ID: uuid.New(), Email: "hr1@example.com", IsActive: true},
		{ID: uuid.New(), Email: "hr2@example.com", IsActive: true},
	}

	at := time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC)
	iv, err := env.svc.BookPublic(context.Background(), cand.ID, token, at)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, iv.Status)

	got, err := env.candidates.GetByID(context.Background(), cand.ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusInterviewScheduled, got.Status)

	// Кандидат + оба активных оператора.
	require.Len(t, env.mailer.sent, 3)
	recipients := map[string]bool{}
	for _, m := range env.mailer.sent {
		recipients[m.To] = true
	}
	assert.True(t, recipients[cand.Email])
	assert.True(t, recipients["hr1@example.com"])
	assert.True(t, recipients["hr2@example.com"])
}

func TestBookPublic_SelfConflictWithFreeGlobalResource(t *testing.T) {
	// Экзотический случай: глобальная проверка по какой-то причине слот не
	// видит, но собственная запись кандидата в окне есть — сработает
	// защитная проверка самозаписи на уровне Checker.
	base := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	candID := uuid.New()
	repo := &fakeInterviewRepo{interviews: []Interview{scheduled(candID, base)}}
	checker := NewChecker(repo)

	self, err := checker.ForCandidate(context.Background(), candID, base.Add(15*time.Minute))
	require.NoError(t, err)
	assert.True(t, self)
}

func TestBooking_CheckThenActRaceIsDocumented(t *testing.T) {
	// Две почти одновременные брони на 11:00 и 11:15 обе проходят проверку
	// конфликтов до того, как первая вставка видна. Без уникального ключа
	// слота в хранилище обе записи создаются — текущее поведение, а не
	// гарантия; ключ slot_key в Postgres-репозитории закрывает эту гонку.
	cand1 := testCandidate()
	cand2 := testCandidate()
	env := newBookingEnv(t, cand1, cand2)
	env.interviews.frozenFree = true // проверка всегда видит пустой календарь

	base := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	_, err1 := env.svc.BookByAdmin(context.Background(), cand1.ID, base, "Игорь", 30, "admin")
	_, err2 := env.svc.BookByAdmin(context.Background(), cand2.ID, base.Add(15*time.Minute), "Игорь", 30, "admin")

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Len(t, env.interviews.interviews, 2, "обе вставки успели до фиксации первой")
}
