// Implements the ReadyQueue, which holds every admitted process that is not on the CPU.
// Processes are enqueued on admission and when preempted or when their quantum expires.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO of indices into the simulator's process arena.
// Policies pick from it by position; the queue itself never reorders.
type ReadyQueue struct {
	arena []Process
	queue []int // arena indices in enqueue order
}

// NewReadyQueue creates an empty queue over arena.
func NewReadyQueue(arena []Process) *ReadyQueue {
	return &ReadyQueue{arena: arena}
}

// Enqueue adds the process at arena index idx to the back of the queue.
func (rq *ReadyQueue) Enqueue(idx int) {
	if idx < 0 || idx >= len(rq.arena) {
		panic(fmt.Sprintf("Enqueue: index %d out of arena range [0,%d)", idx, len(rq.arena)))
	}
	rq.arena[idx].State = StateReady
	rq.queue = append(rq.queue, idx)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, idx := range rq.queue {
		sb.WriteString(fmt.Sprint(rq.arena[idx].PID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// At returns the process at queue position i.
func (rq *ReadyQueue) At(i int) *Process {
	return &rq.arena[rq.queue[i]]
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.At(0)
}

// Remove deletes queue position i and returns its arena index.
// Order of the remaining entries is preserved.
func (rq *ReadyQueue) Remove(i int) int {
	if i < 0 || i >= len(rq.queue) {
		panic(fmt.Sprintf("Remove: position %d out of range [0,%d)", i, len(rq.queue)))
	}
	idx := rq.queue[i]
	rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
	return idx
}

// Items returns the queued arena indices for iteration.
// Callers MUST NOT append to or reslice the returned slice.
func (rq *ReadyQueue) Items() []int {
	return rq.queue
}
