package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparators_TieBreakOnArrivalThenPID(t *testing.T) {
	a := NewProcess(desc(2, 1, 3, 5))
	b := NewProcess(desc(1, 1, 3, 5))
	c := NewProcess(desc(3, 0, 3, 5))

	for name, less := range map[string]lessFunc{
		"burst":     byBurst,
		"remaining": byRemaining,
		"priority":  byPriority,
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, less(&c, &a), "earlier arrival wins")
			assert.True(t, less(&b, &a), "same arrival: lower pid wins")
			assert.False(t, less(&a, &a))
		})
	}
}

func TestByRemaining_UsesRemainingNotBurst(t *testing.T) {
	// GIVEN a long job that has mostly run and a fresh shorter job
	long := NewProcess(desc(1, 0, 0, 10))
	long.RemainingTime = 2
	short := NewProcess(desc(2, 3, 0, 3))

	assert.True(t, byRemaining(&long, &short))
	assert.False(t, byBurst(&long, &short))
}

func TestByPriority_LowerValueWins(t *testing.T) {
	urgent := NewProcess(desc(2, 5, 0, 9))
	lazy := NewProcess(desc(1, 0, 4, 1))
	assert.True(t, byPriority(&urgent, &lazy))
}

func TestSelectMin(t *testing.T) {
	arena := []Process{
		NewProcess(desc(1, 0, 2, 7)),
		NewProcess(desc(2, 1, 1, 4)),
		NewProcess(desc(3, 2, 1, 4)),
	}
	rq := NewReadyQueue(arena)
	assert.Equal(t, -1, selectMin(rq, byBurst))

	rq.Enqueue(0)
	rq.Enqueue(2)
	rq.Enqueue(1)

	// burst tie between pid 2 and 3 resolves by arrival: pid 2 at position 2
	assert.Equal(t, 2, selectMin(rq, byBurst))
	assert.Equal(t, 2, selectMin(rq, byPriority))
}
