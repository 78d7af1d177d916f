// SPDX-License-Identifier: MIT
// Package linalg - vector kernels.
//
// Purpose:
//   - Linear combinations, scaling and negation of length-n vectors.
//   - Basis seeding (unit entry at one index) for independent variables.
//
// Determinism & Performance:
//   - Single flat loop 0..n-1 per kernel; one allocation for the result.
//   - nil inputs read as zeros; nil output when the result is all-zero by construction.

package linalg

import "golang.org/x/exp/constraints"

// Float is the element constraint shared by every kernel.
type Float interface {
	constraints.Float
}

// Zeros returns a new zero vector of length n.
// Complexity: O(n).
func Zeros[T Float](n int) []T {
	return make([]T, n)
}

// Clone returns a copy of x materialized to length n (nil becomes zeros).
// Complexity: O(n).
func Clone[T Float](n int, x []T) []T {
	mustLen("Clone", x, n)
	out := make([]T, n)
	copy(out, x) // copy from nil is a no-op, leaving zeros
	return out
}

// WithUnit returns a copy of x (length n) whose k-th entry is one.
// Other entries are copied unchanged.
//
// Errors (panic):
//   - ErrOutOfRange when k is outside [0, n).
//   - ErrDimensionMismatch when x is non-nil and len(x) != n.
//
// Complexity: O(n).
func WithUnit[T Float](n int, x []T, k int) []T {
	if k < 0 || k >= n {
		panic(linalgErrorf("WithUnit", ErrOutOfRange))
	}
	out := Clone(n, x)
	out[k] = 1

	return out
}

// Combine computes out[k] = (x[k]*ca + y[k]*cb) / den.
//
// Implementation:
//   - Stage 1: validate lengths; nil x/y read as zeros.
//   - Stage 2: if both inputs are nil and the rule maps zero to zero, return nil.
//   - Stage 3: single flat loop writing a fresh result.
//
// Behavior highlights:
//   - Products are rounded before the sum (explicit conversions block FMA fusion),
//     so every platform produces the same bits.
//   - Non-finite coefficients are honored even for nil inputs (0*Inf = NaN).
//
// Complexity:
//   - Time O(n), Space O(n) (or O(1) for the nil fast path).
func Combine[T Float](n int, x, y []T, ca, cb, den T) []T {
	mustLen("Combine", x, n)
	mustLen("Combine", y, n)
	if x == nil && y == nil && combinePreservesZero(ca, cb, den) {
		return nil
	}

	out := make([]T, n)
	var xv, yv T
	for k := 0; k < n; k++ {
		xv, yv = at(x, k), at(y, k)
		out[k] = (T(xv*ca) + T(yv*cb)) / den
	}

	return out
}

// Scale computes out[k] = x[k] * c.
// Complexity: O(n).
func Scale[T Float](n int, x []T, c T) []T {
	mustLen("Scale", x, n)
	var zero T
	if x == nil && zero*c == 0 {
		return nil
	}
	out := make([]T, n)
	for k := 0; k < n; k++ {
		out[k] = at(x, k) * c
	}

	return out
}

// Neg computes out[k] = -x[k]. A nil input stays nil.
// Complexity: O(n).
func Neg[T Float](n int, x []T) []T {
	mustLen("Neg", x, n)
	if x == nil {
		return nil
	}
	out := make([]T, n)
	for k := 0; k < n; k++ {
		out[k] = -x[k]
	}

	return out
}

// AllZero reports whether every entry of x is zero (nil is all-zero).
// NaN entries are not zero.
// Complexity: O(len(x)).
func AllZero[T Float](x []T) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}

	return true
}

// ToFloat64 widens x (length n) into a fresh []float64.
// Complexity: O(n).
func ToFloat64[T Float](n int, x []T) []float64 {
	mustLen("ToFloat64", x, n)
	out := make([]float64, n)
	for k := range x {
		out[k] = float64(x[k])
	}

	return out
}

// at reads x[k], treating nil as the zero vector.
func at[T Float](x []T, k int) T {
	if x == nil {
		return 0
	}
	return x[k]
}

// combinePreservesZero reports whether (0*ca + 0*cb)/den evaluates to zero.
func combinePreservesZero[T Float](ca, cb, den T) bool {
	var zero T
	return (T(zero*ca)+T(zero*cb))/den == 0
}
