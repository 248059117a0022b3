package sim

// lessFunc reports whether a should be dispatched before b.
type lessFunc func(a, b *Process) bool

// arrivalThenPID breaks ties by earliest arrival, then lowest PID.
// PIDs are assigned in arrival order by the generator, so this matches batch order.
func arrivalThenPID(a, b *Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}

// byBurst orders by total burst ascending.
func byBurst(a, b *Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return arrivalThenPID(a, b)
}

// byRemaining orders by remaining burst ascending. For a process that has
// never run this equals its burst, so it agrees with byBurst on fresh arrivals.
func byRemaining(a, b *Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return arrivalThenPID(a, b)
}

// byPriority orders by priority value ascending (lower value wins).
func byPriority(a, b *Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return arrivalThenPID(a, b)
}

// selectMin returns the queue position of the process that sorts first under less.
// Returns -1 for an empty queue.
func selectMin(ready *ReadyQueue, less lessFunc) int {
	best := -1
	for i := 0; i < ready.Len(); i++ {
		if best < 0 || less(ready.At(i), ready.At(best)) {
			best = i
		}
	}
	return best
}
