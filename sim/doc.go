// Package sim provides the scheduling simulation kernel for schedsim.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - process.go: Process lifecycle (new → ready → running → executed) and timing fields
//   - event.go: the logical clock and how it advances (event-jump vs tick)
//   - simulator.go: admission, dispatch, preemption and the run loop
//
// # Architecture
//
// A Simulator owns one arena of Process records for the duration of a run.
// The pending pool, the ready queue, the running slot and the executed list
// hold indices into that arena, so a process is never copied while it moves
// between them.
//
// The six dispatch disciplines share the same loop and differ only in the
// Policy they plug in:
//   - FCFS: run in arrival order, never reorder
//   - NonPreemptiveSFJ / PreemptiveSFJ: shortest (remaining) burst first
//   - NonPreemptivePriority / PreemptivePriority: lowest priority value first
//   - RoundRobin: FIFO with a fixed quantum
//
// Sub-packages:
//   - sim/trace/: dispatch trace recording (Gantt slices, preemptions)
//   - sim/workload/: batch ingestion (CSV, YAML) and seeded batch generation
//
// The kernel is single-threaded and deterministic. Two runs over equal
// batches produce identical timing fields.
package sim
