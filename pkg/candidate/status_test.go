package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownStatus(t *testing.T) {
	for _, st := range []Status{
		StatusNew, StatusReachOut, StatusReachOutEmailSent, StatusToInterview,
		StatusInterviewScheduled, StatusInterviewCompleted, StatusHired,
		StatusRejected, StatusStalled,
	} {
		assert.True(t, KnownStatus(st), "статус %s должен быть известен машине", st)
	}
	assert.False(t, KnownStatus("FIRED"))
	assert.False(t, KnownStatus(""))
}

func TestTransition_ReturnsPriorStatus(t *testing.T) {
	c := Candidate{Status: StatusNew}
	prior, err := Transition(&c, StatusReachOutEmailSent)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, prior)
	assert.Equal(t, StatusReachOutEmailSent, c.Status)
}

func TestTransition_AnyKnownToAnyKnown(t *testing.T) {
	// Машина намеренно не ограничивает направление переходов: порядок
	// контролирует админка. Даже HIRED → NEW сейчас допустим.
	c := Candidate{Status: StatusHired}
	prior, err := Transition(&c, StatusNew)
	require.NoError(t, err)
	assert.Equal(t, StatusHired, prior)
	assert.Equal(t, StatusNew, c.Status)
}

func TestTransition_RejectsUnknownTarget(t *testing.T) {
	c := Candidate{Status: StatusNew}
	_, err := Transition(&c, "ON_VACATION")
	var unknown *ErrUnknownStatus
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Status("ON_VACATION"), unknown.Status)
	assert.Equal(t, StatusNew, c.Status, "неудачный переход не меняет состояние")
}
