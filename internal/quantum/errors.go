package quantum

import "errors"

// Error kinds for operator construction and fidelity evaluation.
// All errors surfaced by this package (and the modules built on it)
// wrap one of these values, so callers can classify failures with
// errors.Is regardless of how much context was added along the way.
var (
	// ErrInvalidParameter marks an input outside its mathematically
	// valid domain: a non-finite angle, or a depolarizing probability
	// outside [0, 1].
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDimensionMismatch marks a fidelity evaluation between
	// operators of incompatible Hilbert dimension.
	ErrDimensionMismatch = errors.New("operator dimension mismatch")

	// ErrComputation marks a computed fidelity outside [0, 1] beyond
	// numerical tolerance. It indicates a defect in the process
	// fidelity computation and is never recovered from.
	ErrComputation = errors.New("fidelity computation error")
)
