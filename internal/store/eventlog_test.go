package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/snazarov/aclsim/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(n int) models.Event {
	return models.Event{
		Timestamp: time.Date(2026, 8, 29, 12, 0, n, 0, time.UTC),
		Kind:      models.EventDecryptAttempt,
		SubjectID: "ct-1",
		Actor:     models.IdentityGenericUser,
		Message:   fmt.Sprintf("event %d", n),
	}
}

func TestEventLog_NewestFirst(t *testing.T) {
	l := NewEventLog(20)

	l.Prepend(newEvent(1))
	l.Prepend(newEvent(2))
	l.Prepend(newEvent(3))

	listed := l.List()
	require.Len(t, listed, 3)
	assert.Equal(t, "event 3", listed[0].Message)
	assert.Equal(t, "event 1", listed[2].Message)
}

// TestEventLog_BatchKeepsProductionOrder verifies that events passed in a
// single call land with the last-produced one newest, e.g. a decrypt
// outcome ends up at a more recent position than its attempt.
func TestEventLog_BatchKeepsProductionOrder(t *testing.T) {
	l := NewEventLog(20)

	l.Prepend(newEvent(1), newEvent(2))

	listed := l.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "event 2", listed[0].Message)
	assert.Equal(t, "event 1", listed[1].Message)
}

func TestEventLog_CapsAtCapacity(t *testing.T) {
	l := NewEventLog(20)

	for i := 1; i <= 25; i++ {
		l.Prepend(newEvent(i))
	}

	listed := l.List()
	require.Len(t, listed, 20, "only the most recent entries survive")
	assert.Equal(t, "event 25", listed[0].Message)
	assert.Equal(t, "event 6", listed[19].Message, "oldest retained is 25-20+1")
}

func TestEventLog_SmallCapacity(t *testing.T) {
	l := NewEventLog(2)

	l.Prepend(newEvent(1), newEvent(2), newEvent(3))

	listed := l.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "event 3", listed[0].Message)
	assert.Equal(t, "event 2", listed[1].Message)
}

func TestEventLog_NonPositiveCapacity_Panics(t *testing.T) {
	assert.Panics(t, func() { NewEventLog(0) })
	assert.Panics(t, func() { NewEventLog(-1) })
}

func TestEventLog_ListReturnsCopy(t *testing.T) {
	l := NewEventLog(20)
	l.Prepend(newEvent(1))

	listed := l.List()
	listed[0].Message = "mutated"

	assert.Equal(t, "event 1", l.List()[0].Message)
}

func TestEventLog_LenAndCap(t *testing.T) {
	l := NewEventLog(5)
	assert.Zero(t, l.Len())
	assert.Equal(t, 5, l.Cap())

	l.Prepend(newEvent(1))
	assert.Equal(t, 1, l.Len())
}
