package interview

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/staffing/pkg/audit"
	"github.com/artem13815/staffing/pkg/candidate"
	"github.com/artem13815/staffing/pkg/operator"
)

type fakeInterviewRepo struct {
	mu         sync.Mutex
	interviews []Interview
	createErr  error
	// frozenFree имитирует устаревшее чтение в гонке "проверили-вставили":
	// проверки конфликтов всегда видят свободный календарь.
	frozenFree bool
}

func (f *fakeInterviewRepo) Create(ctx context.Context, iv Interview) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interviews = append(f.interviews, iv)
	return nil
}

func (f *fakeInterviewRepo) ExistsScheduledBetween(ctx context.Context, from, to time.Time) (bool, error) {
	if f.frozenFree {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, iv := range f.interviews {
		if iv.Status == StatusScheduled && iv.ScheduledAt.After(from) && iv.ScheduledAt.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInterviewRepo) ExistsScheduledForCandidateBetween(ctx context.Context, candidateID uuid.UUID, from, to time.Time) (bool, error) {
	if f.frozenFree {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, iv := range f.interviews {
		if iv.CandidateID == candidateID && iv.Status == StatusScheduled && iv.ScheduledAt.After(from) && iv.ScheduledAt.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

type fakeCandidateRepo struct {
	byID map[uuid.UUID]candidate.Candidate
}

func newFakeCandidateRepo(cands ...candidate.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{byID: map[uuid.UUID]candidate.Candidate{}}
	for _, c := range cands {
		r.byID[c.ID] = c
	}
	return r
}

func (f *fakeCandidateRepo) Create(ctx context.Context, c candidate.Candidate) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	c, ok := f.byID[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (f *fakeCandidateRepo) GetByIDAndToken(ctx context.Context, id, token uuid.UUID) (candidate.Candidate, error) {
	c, ok := f.byID[id]
	if !ok || c.SchedulingToken == nil || *c.SchedulingToken != token {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (f *fakeCandidateRepo) List(ctx context.Context, limit, offset int) ([]candidate.Candidate, error) {
	var res []candidate.Candidate
	for _, c := range f.byID {
		res = append(res, c)
	}
	return res, nil
}

func (f *fakeCandidateRepo) ListByStatus(ctx context.Context, st candidate.Status) ([]candidate.Candidate, error) {
	var res []candidate.Candidate
	for _, c := range f.byID {
		if c.Status == st {
			res = append(res, c)
		}
	}
	return res, nil
}

func (f *fakeCandidateRepo) UpdateStatus(ctx context.Context, id uuid.UUID, st candidate.Status) error {
	c, ok := f.byID[id]
	if !ok {
		return candidate.ErrNotFound
	}
	c.Status = st
	f.byID[id] = c
	return nil
}

func (f *fakeCandidateRepo) UpdateSchedulingToken(ctx context.Context, id uuid.UUID, token uuid.UUID) error {
	c, ok := f.byID[id]
	if !ok {
		return candidate.ErrNotFound
	}
	c.SchedulingToken = &token
	f.byID[id] = c
	return nil
}

type fakeOperatorRepo struct {
	active []operator.Operator
}

func (f *fakeOperatorRepo) Create(ctx context.Context, op operator.Operator) error { return nil }

func (f *fakeOperatorRepo) GetByEmail(ctx context.Context, email string) (operator.Operator, error) {
	return operator.Operator{}, operator.ErrNotFound
}

func (f *fakeOperatorRepo) ListActive(ctx context.Context) ([]operator.Operator, error) {
	return f.active, nil
}

type fakeAuditRepo struct {
	entries []audit.Entry
}

func (f *fakeAuditRepo) Append(ctx context.Context, e audit.Entry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeAuditRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]audit.Entry, error) {
	var res []audit.Entry
	for _, e := range f.entries {
		if e.CandidateID == candidateID {
			res = append(res, e)
		}
	}
	return res, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}
