// SPDX-License-Identifier: MIT

// Package dual - first-order dual value (value + gradient).
//
// Purpose:
//   - Hold a primal value and its N partial derivatives.
//   - Construct constants (zero gradient) and seeded inputs (unit gradient).
//
// Storage:
//   - grad is nil (all zeros) or a slice of length N. It is never mutated
//     after construction, so values may share it freely.
package dual

import (
	"github.com/katalvlaran/tin/internal/linalg"
)

// Dual is a value together with its gradient with respect to N = D.Len()
// independent variables. It carries no Hessian storage; see HyperDual.
//
// The zero value is the constant 0.
type Dual[T Scalar, D Dim] struct {
	value T
	grad  []T // nil ⇒ zero gradient; else len == N
}

// New returns the constant value with a materialized zero gradient.
// Complexity: O(N).
func New[T Scalar, D Dim](value T) Dual[T, D] {
	return Dual[T, D]{value: value, grad: linalg.Zeros[T](dimOf[D]())}
}

// NewConst returns the constant value without allocating: the gradient is
// implicitly zero. Semantically identical to New.
// Complexity: O(1).
func NewConst[T Scalar, D Dim](value T) Dual[T, D] {
	return Dual[T, D]{value: value}
}

// FromParts builds a dual with an explicit gradient. grad is copied.
//
// Errors:
//   - ErrDimensionMismatch if len(grad) != N.
func FromParts[T Scalar, D Dim](value T, grad []T) (Dual[T, D], error) {
	n := dimOf[D]()
	if err := linalg.ValidateLen(grad, n); err != nil {
		return Dual[T, D]{}, dualErrorf("FromParts", ErrDimensionMismatch)
	}

	return Dual[T, D]{value: value, grad: linalg.Clone(n, grad)}, nil
}

// Variables seeds values[i] as independent variable i: the result's i-th
// element has gradient e_i. len(values) must equal N (panics otherwise).
func Variables[T Scalar, D Dim](values ...T) []Dual[T, D] {
	n := dimOf[D]()
	if len(values) != n {
		preconditionf("Variables", len(values), ErrDimensionMismatch)
	}
	out := make([]Dual[T, D], n)
	for i, v := range values {
		out[i] = NewConst[T, D](v).Active(i)
	}

	return out
}

// Active returns a copy of d marking it as independent variable index:
// grad[index] becomes 1, value is unchanged.
// Panics with ErrIndexOutOfRange unless 0 <= index < N.
func (d Dual[T, D]) Active(index int) Dual[T, D] {
	n := dimOf[D]()
	if index < 0 || index >= n {
		preconditionf("Active", index, ErrIndexOutOfRange)
	}
	d.grad = linalg.WithUnit(n, d.grad, index)

	return d
}

// Value returns the primal value.
func (d Dual[T, D]) Value() T { return d.value }

// Grad returns a fresh copy of the gradient (length N).
func (d Dual[T, D]) Grad() []T { return linalg.Clone(dimOf[D](), d.grad) }

// GradAt returns ∂value/∂x_i without copying.
// Panics with ErrIndexOutOfRange unless 0 <= i < N.
func (d Dual[T, D]) GradAt(i int) T {
	if i < 0 || i >= dimOf[D]() {
		preconditionf("GradAt", i, ErrIndexOutOfRange)
	}
	if d.grad == nil {
		return 0
	}

	return d.grad[i]
}

// Dim returns N.
func (d Dual[T, D]) Dim() int { return dimOf[D]() }
