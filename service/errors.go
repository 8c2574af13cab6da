package service

import "errors"

// Error kinds surfaced by the engine. Callers match with errors.Is; the
// wrapped message carries the detail.
var (
	// ErrInvalidConfiguration means the request can never simulate: the
	// budget does not cover the active minimum payments, a custom order is
	// not a permutation of the active debt ids, or an input is out of range.
	// No partial result accompanies it.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNonConvergence means the safety bound was reached before every
	// balance hit zero. Simulate still returns the partial trace so callers
	// can report "effectively never pays off".
	ErrNonConvergence = errors.New("simulation did not converge")
)
