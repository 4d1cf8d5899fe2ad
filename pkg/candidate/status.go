package candidate

import "fmt"

// Status — состояние кандидата в конвейере найма.
type Status string

const (
	StatusNew                Status = "NEW"
	StatusReachOut           Status = "REACH_OUT"
	StatusReachOutEmailSent  Status = "REACH_OUT_EMAIL_SENT"
	StatusToInterview        Status = "TO_INTERVIEW"
	StatusInterviewScheduled Status = "INTERVIEW_SCHEDULED"
	StatusInterviewCompleted Status = "INTERVIEW_COMPLETED"
	StatusHired              Status = "HIRED"
	StatusRejected           Status = "REJECTED"
	StatusStalled            Status = "STALLED"
)

// knownStatuses — явная таблица состояний машины. Переходы между любыми
// известными состояниями допускаются: бизнес-последовательность контролирует
// админка, а не ядро. Ужесточение таблицы отложено до уточнения продукта.
var knownStatuses = map[Status]struct{}{
	StatusNew:                {},
	StatusReachOut:           {},
	StatusReachOutEmailSent:  {},
	StatusToInterview:        {},
	StatusInterviewScheduled: {},
	StatusInterviewCompleted: {},
	StatusHired:              {},
	StatusRejected:           {},
	StatusStalled:            {},
}

// KnownStatus reports whether s belongs to the machine's state set.
func KnownStatus(s Status) bool {
	_, ok := knownStatuses[s]
	return ok
}

// ErrUnknownStatus возвращается при попытке перехода в состояние вне таблицы.
type ErrUnknownStatus struct {
	Status Status
}

func (e *ErrUnknownStatus) Error() string {
	return fmt.Sprintf("unknown pipeline status: %q", e.Status)
}

// Transition validates the target state and mutates the candidate in place,
// returning the prior status for the audit entry.
func Transition(c *Candidate, to Status) (prior Status, err error) {
	if !KnownStatus(to) {
		return c.Status, &ErrUnknownStatus{Status: to}
	}
	prior = c.Status
	c.Status = to
	return prior, nil
}
