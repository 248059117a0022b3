package sim

import "errors"

var (
	// ErrEmptyBatch is returned when a run is requested with zero processes.
	ErrEmptyBatch = errors.New("empty process batch")

	// ErrUnknownPolicy is returned when a policy name is not one of the supported disciplines.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")

	// ErrInvalidQuantum is returned when round-robin is configured with a quantum below 1.
	ErrInvalidQuantum = errors.New("invalid round-robin quantum")

	// ErrInvalidDescriptor is returned for negative timing inputs or duplicate PIDs.
	ErrInvalidDescriptor = errors.New("invalid process descriptor")
)
