// SPDX-License-Identifier: MIT

package dual

import (
	"github.com/katalvlaran/tin/internal/linalg"
)

// HyperDual is a value together with its gradient and Hessian with respect
// to N = D.Len() independent variables.
//
// The Hessian is stored row-major (offset i*N + j) and is exactly symmetric:
// every operation builds it from symmetric terms and mirrors the upper
// triangle. The zero value is the constant 0.
type HyperDual[T Scalar, D Dim] struct {
	value T
	grad  []T // nil ⇒ zero; else len == N
	hess  []T // nil ⇒ zero; else len == N*N, symmetric
}

// NewHyper returns the constant value with materialized zero gradient and
// Hessian. Complexity: O(N²).
func NewHyper[T Scalar, D Dim](value T) HyperDual[T, D] {
	n := dimOf[D]()
	return HyperDual[T, D]{
		value: value,
		grad:  linalg.Zeros[T](n),
		hess:  linalg.Zeros[T](n * n),
	}
}

// NewHyperConst returns the constant value without allocating.
// Semantically identical to NewHyper. Complexity: O(1).
func NewHyperConst[T Scalar, D Dim](value T) HyperDual[T, D] {
	return HyperDual[T, D]{value: value}
}

// HyperFromParts builds a hyper-dual with explicit derivatives; grad and
// hess (given as N rows of N) are copied.
//
// Errors:
//   - ErrDimensionMismatch if grad is not length N or hess is not N×N.
//   - ErrAsymmetry if hess[i][j] != hess[j][i] for some i, j.
func HyperFromParts[T Scalar, D Dim](value T, grad []T, hess [][]T) (HyperDual[T, D], error) {
	const tag = "HyperFromParts"
	n := dimOf[D]()
	if err := linalg.ValidateLen(grad, n); err != nil {
		return HyperDual[T, D]{}, dualErrorf(tag, ErrDimensionMismatch)
	}
	flat, err := linalg.Flatten(n, hess)
	if err != nil {
		return HyperDual[T, D]{}, dualErrorf(tag, ErrDimensionMismatch)
	}
	if err = linalg.ValidateSymmetric(n, flat); err != nil {
		return HyperDual[T, D]{}, dualErrorf(tag, ErrAsymmetry)
	}

	return HyperDual[T, D]{value: value, grad: linalg.Clone(n, grad), hess: flat}, nil
}

// HyperVariables seeds values[i] as independent variable i.
// len(values) must equal N (panics otherwise).
func HyperVariables[T Scalar, D Dim](values ...T) []HyperDual[T, D] {
	n := dimOf[D]()
	if len(values) != n {
		preconditionf("HyperVariables", len(values), ErrDimensionMismatch)
	}
	out := make([]HyperDual[T, D], n)
	for i, v := range values {
		out[i] = NewHyperConst[T, D](v).Active(i)
	}

	return out
}

// Active returns a copy of h with grad[index] = 1; value and Hessian are
// unchanged. Panics with ErrIndexOutOfRange unless 0 <= index < N.
func (h HyperDual[T, D]) Active(index int) HyperDual[T, D] {
	n := dimOf[D]()
	if index < 0 || index >= n {
		preconditionf("Active", index, ErrIndexOutOfRange)
	}
	h.grad = linalg.WithUnit(n, h.grad, index)

	return h
}

// Value returns the primal value.
func (h HyperDual[T, D]) Value() T { return h.value }

// Grad returns a fresh copy of the gradient (length N).
func (h HyperDual[T, D]) Grad() []T { return linalg.Clone(dimOf[D](), h.grad) }

// GradAt returns ∂value/∂x_i. Panics with ErrIndexOutOfRange when out of range.
func (h HyperDual[T, D]) GradAt(i int) T {
	if i < 0 || i >= dimOf[D]() {
		preconditionf("GradAt", i, ErrIndexOutOfRange)
	}
	if h.grad == nil {
		return 0
	}

	return h.grad[i]
}

// Hess returns a fresh N×N copy of the Hessian.
func (h HyperDual[T, D]) Hess() [][]T { return linalg.Rows(dimOf[D](), h.hess) }

// HessAt returns ∂²value/∂x_i∂x_j. Panics with ErrIndexOutOfRange when
// either index is out of range.
func (h HyperDual[T, D]) HessAt(i, j int) T {
	n := dimOf[D]()
	if i < 0 || i >= n {
		preconditionf("HessAt", i, ErrIndexOutOfRange)
	}
	if j < 0 || j >= n {
		preconditionf("HessAt", j, ErrIndexOutOfRange)
	}
	if h.hess == nil {
		return 0
	}

	return h.hess[i*n+j]
}

// Dim returns N.
func (h HyperDual[T, D]) Dim() int { return dimOf[D]() }

// Lower drops the Hessian, keeping value and gradient.
func (h HyperDual[T, D]) Lower() Dual[T, D] {
	return Dual[T, D]{value: h.value, grad: h.grad}
}
