package quantum

import (
	"fmt"
	"math/cmplx"
)

// boundsTolerance absorbs floating point overshoot at the [0,1] boundaries.
// Anything further out is a computation defect, not roundoff.
const boundsTolerance = 1e-9

// AverageGateFidelity computes the average gate fidelity of candidate
// against ideal, for Hilbert dimension d = ideal.Dim().
//
// The direction matters and is fixed: the first argument is the ideal
// reference operation and must be a pure unitary; the second is the
// candidate channel being characterized. The metric is not symmetric in
// general and callers must not assume commutativity.
//
// For a candidate in mixed unitary + depolarizing form (unitary U,
// probability p) against a pure unitary ideal V, the process fidelity is
//
//	F_pro = (1-p)·|Tr(V†U)|²/d² + p/d²
//
// (the completely depolarizing part has process fidelity 1/d² against any
// unitary), and the average gate fidelity follows as
//
//	F_avg = (d·F_pro + 1) / (d + 1).
//
// Properties guaranteed by this form: F_avg(U, U) = 1; F_avg is monotone
// non-increasing in p; at p = 1 it equals 1/d (1/2 for a single qubit)
// independent of the unitary parts.
//
// Errors: ErrInvalidParameter if ideal is not a pure unitary,
// ErrDimensionMismatch if the dimensions differ, ErrComputation if the
// result lands outside [0, 1] by more than numerical tolerance. Overshoot
// within tolerance is snapped to the boundary so that exact identity cases
// report exactly 1.
func AverageGateFidelity(ideal, candidate Operator) (float64, error) {
	if !ideal.IsPure() {
		return 0, fmt.Errorf("%w: ideal operator must be a pure unitary, has depolarization %v",
			ErrInvalidParameter, ideal.Depolarization())
	}
	if ideal.Dim() != candidate.Dim() {
		return 0, fmt.Errorf("%w: ideal is %d-dimensional, candidate is %d-dimensional",
			ErrDimensionMismatch, ideal.Dim(), candidate.Dim())
	}

	d := float64(ideal.Dim())
	p := candidate.Depolarization()

	overlap := cmplx.Abs(traceInner(ideal, candidate))
	fPro := (1-p)*(overlap*overlap)/(d*d) + p/(d*d)
	fAvg := (d*fPro + 1) / (d + 1)

	switch {
	case fAvg > 1 && fAvg <= 1+boundsTolerance:
		fAvg = 1
	case fAvg < 0 && fAvg >= -boundsTolerance:
		fAvg = 0
	case fAvg > 1 || fAvg < 0:
		return 0, fmt.Errorf("%w: average gate fidelity %v outside [0,1]", ErrComputation, fAvg)
	}

	return fAvg, nil
}
