package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testArena() []Process {
	return []Process{
		NewProcess(desc(1, 0, 0, 1)),
		NewProcess(desc(2, 0, 0, 1)),
		NewProcess(desc(3, 0, 0, 1)),
	}
}

func TestReadyQueue_Enqueue_MarksReadyAndKeepsFIFO(t *testing.T) {
	// GIVEN an arena of three processes
	arena := testArena()
	rq := NewReadyQueue(arena)

	// WHEN they are enqueued out of arena order
	rq.Enqueue(2)
	rq.Enqueue(0)

	// THEN FIFO order is kept and state is ready
	assert.Equal(t, 2, rq.Len())
	assert.Equal(t, int64(3), rq.Peek().PID)
	assert.Equal(t, int64(1), rq.At(1).PID)
	assert.Equal(t, StateReady, arena[2].State)
	assert.Equal(t, "[3 1]", rq.String())
}

func TestReadyQueue_Peek_Empty_ReturnsNil(t *testing.T) {
	rq := NewReadyQueue(testArena())
	assert.Nil(t, rq.Peek())
}

func TestReadyQueue_At_AliasesArena(t *testing.T) {
	// GIVEN a queued process
	arena := testArena()
	rq := NewReadyQueue(arena)
	rq.Enqueue(1)

	// WHEN mutated through the queue
	rq.At(0).RemainingTime = 0

	// THEN the arena record changes; there is no copy
	assert.Equal(t, int64(0), arena[1].RemainingTime)
}

func TestReadyQueue_Remove_PreservesOrder(t *testing.T) {
	// GIVEN [1 2 3]
	rq := NewReadyQueue(testArena())
	rq.Enqueue(0)
	rq.Enqueue(1)
	rq.Enqueue(2)

	// WHEN the middle entry is removed
	idx := rq.Remove(1)

	// THEN its arena index is returned and [1 3] remains
	assert.Equal(t, 1, idx)
	assert.Equal(t, []int{0, 2}, rq.Items())
}

func TestReadyQueue_OutOfRangePanics(t *testing.T) {
	rq := NewReadyQueue(testArena())
	assert.Panics(t, func() { rq.Enqueue(3) })
	assert.Panics(t, func() { rq.Remove(0) })
}
