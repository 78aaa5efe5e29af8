// Package quantum provides the operator primitives the experiment modules
// are built on: single-qubit rotation unitaries, the depolarizing channel,
// and average gate fidelity.
//
// This is the narrow seam between the experiment logic and the underlying
// linear algebra (gonum). Everything above this package treats an Operator
// as an opaque value that can be depolarized and compared for fidelity;
// nothing above it touches matrices directly.
//
// An Operator represents a quantum channel in mixed unitary + depolarizing
// form:
//
//	Φ(ρ) = (1-p)·UρU† + p·I/d
//
// where U is a d×d unitary and p is the depolarizing probability. A pure
// unitary is the p = 0 case. This is the standard single-qubit depolarizing
// channel: with probability 1-p the unitary acts, with probability p the
// state is replaced by the maximally mixed state.
package quantum

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Operator is a quantum channel in mixed unitary + depolarizing form.
// The zero value is not usable; construct via RX, RZ or Identity.
type Operator struct {
	u     *mat.CDense
	depol float64
}

// RX returns the single-qubit rotation about the X axis by theta radians:
//
//	RX(θ) = [ cos(θ/2)    -i·sin(θ/2) ]
//	        [ -i·sin(θ/2)  cos(θ/2)   ]
//
// Returns ErrInvalidParameter for non-finite theta.
func RX(theta float64) (Operator, error) {
	if !isFinite(theta) {
		return Operator{}, fmt.Errorf("%w: RX angle must be finite, got %v", ErrInvalidParameter, theta)
	}

	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))

	return Operator{
		u: mat.NewCDense(2, 2, []complex128{
			c, s,
			s, c,
		}),
	}, nil
}

// RZ returns the single-qubit rotation about the Z axis by phi radians:
//
//	RZ(φ) = [ e^{-iφ/2}  0        ]
//	        [ 0          e^{iφ/2} ]
//
// Returns ErrInvalidParameter for non-finite phi.
func RZ(phi float64) (Operator, error) {
	if !isFinite(phi) {
		return Operator{}, fmt.Errorf("%w: RZ angle must be finite, got %v", ErrInvalidParameter, phi)
	}

	return Operator{
		u: mat.NewCDense(2, 2, []complex128{
			cmplx.Exp(complex(0, -phi/2)), 0,
			0, cmplx.Exp(complex(0, phi/2)),
		}),
	}, nil
}

// Identity returns the identity operator of the given Hilbert dimension.
func Identity(dim int) (Operator, error) {
	if dim < 2 {
		return Operator{}, fmt.Errorf("%w: dimension must be at least 2, got %d", ErrInvalidParameter, dim)
	}

	data := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		data[i*dim+i] = 1
	}

	return Operator{u: mat.NewCDense(dim, dim, data)}, nil
}

// Dim returns the Hilbert dimension of the operator (2 for a single qubit).
func (o Operator) Dim() int {
	r, _ := o.u.Dims()
	return r
}

// Depolarization returns the depolarizing probability p of the channel.
func (o Operator) Depolarization() float64 {
	return o.depol
}

// IsPure reports whether the operator is a pure unitary (p = 0).
func (o Operator) IsPure() bool {
	return o.depol == 0
}

// Depolarize returns the channel with depolarizing probability p applied on
// top of the unitary part: Φ(ρ) = (1-p)·UρU† + p·I/d. The probability must
// lie in [0, 1]; anything else returns ErrInvalidParameter.
//
// Depolarize(0) is the identity transformation on the channel, so a
// depolarized operator with p = 0 compares at fidelity exactly 1 against
// the unitary it was built from.
func (o Operator) Depolarize(p float64) (Operator, error) {
	if !isFinite(p) || p < 0 || p > 1 {
		return Operator{}, fmt.Errorf("%w: depolarizing probability must be in [0,1], got %v", ErrInvalidParameter, p)
	}

	return Operator{u: o.u, depol: p}, nil
}

// At returns the (i, j) entry of the unitary part. Exposed for tests and
// for rendering; the experiment modules never inspect entries.
func (o Operator) At(i, j int) complex128 {
	return o.u.At(i, j)
}

// traceInner computes Tr(V†·U) for the unitary parts of v and u.
func traceInner(v, u Operator) complex128 {
	d := v.Dim()
	var tr complex128
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			tr += cmplx.Conj(v.u.At(i, j)) * u.u.At(i, j)
		}
	}
	return tr
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
