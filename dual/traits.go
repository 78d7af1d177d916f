// SPDX-License-Identifier: MIT
// Package dual - numeric-trait conformance.
//
// Identities, sign operations and the multiplicative inverse, defined so a
// dual value behaves like a plain scalar inside generic numeric code:
//   - Zero/One carry zero derivatives (constants).
//   - IsZero inspects value and every derivative; IsOne inspects the value only.
//   - Abs negates the whole dual when the value's sign bit is set, which
//     propagates d|x|/dx = sign(x).
//   - Signum is a constant (its derivative vanishes off the origin).
//   - Inv is One()/x, so its derivatives come from the quotient rule.
//
// Sign predicates follow IEEE sign bits: +0 is positive, -0 is negative.

package dual

import (
	"math"

	"github.com/katalvlaran/tin/internal/linalg"
)

// Zero returns the additive identity (no allocation).
func Zero[T Scalar, D Dim]() Dual[T, D] { return NewConst[T, D](0) }

// One returns the multiplicative identity (no allocation).
func One[T Scalar, D Dim]() Dual[T, D] { return NewConst[T, D](1) }

// ZeroHyper returns the additive identity (no allocation).
func ZeroHyper[T Scalar, D Dim]() HyperDual[T, D] { return NewHyperConst[T, D](0) }

// OneHyper returns the multiplicative identity (no allocation).
func OneHyper[T Scalar, D Dim]() HyperDual[T, D] { return NewHyperConst[T, D](1) }

// IsZero reports whether the value and every gradient entry are zero.
func (d Dual[T, D]) IsZero() bool {
	return d.value == 0 && linalg.AllZero(d.grad)
}

// IsOne reports whether the value equals one; derivatives are ignored,
// consistent with Equal.
func (d Dual[T, D]) IsOne() bool { return d.value == 1 }

// IsPositive reports whether the value's sign bit is clear (+0 included).
func (d Dual[T, D]) IsPositive() bool { return isPositive(d.value) }

// IsNegative reports whether the value's sign bit is set (-0 included).
func (d Dual[T, D]) IsNegative() bool { return isNegative(d.value) }

// Abs returns -d if d is negative, d otherwise.
func (d Dual[T, D]) Abs() Dual[T, D] {
	if d.IsNegative() {
		return d.Neg()
	}

	return d
}

// Signum returns the constant ±1 by the value's sign (NaN for NaN).
func (d Dual[T, D]) Signum() Dual[T, D] { return NewConst[T, D](signum(d.value)) }

// AbsSub returns d - b when that difference is positive, Zero otherwise.
func (d Dual[T, D]) AbsSub(b Dual[T, D]) Dual[T, D] {
	r := d.Sub(b)
	if r.IsPositive() {
		return r
	}

	return Zero[T, D]()
}

// Inv returns 1/d.
func (d Dual[T, D]) Inv() Dual[T, D] { return One[T, D]().Div(d) }

// IsZero reports whether the value, every gradient entry and every Hessian
// entry are zero.
func (h HyperDual[T, D]) IsZero() bool {
	return h.value == 0 && linalg.AllZero(h.grad) && linalg.AllZero(h.hess)
}

// IsOne reports whether the value equals one.
func (h HyperDual[T, D]) IsOne() bool { return h.value == 1 }

// IsPositive reports whether the value's sign bit is clear.
func (h HyperDual[T, D]) IsPositive() bool { return isPositive(h.value) }

// IsNegative reports whether the value's sign bit is set.
func (h HyperDual[T, D]) IsNegative() bool { return isNegative(h.value) }

// Abs returns -h if h is negative, h otherwise (Hessian included).
func (h HyperDual[T, D]) Abs() HyperDual[T, D] {
	if h.IsNegative() {
		return h.Neg()
	}

	return h
}

// Signum returns the constant ±1 by the value's sign (NaN for NaN).
func (h HyperDual[T, D]) Signum() HyperDual[T, D] {
	return NewHyperConst[T, D](signum(h.value))
}

// AbsSub returns h - b when that difference is positive, Zero otherwise.
func (h HyperDual[T, D]) AbsSub(b HyperDual[T, D]) HyperDual[T, D] {
	r := h.Sub(b)
	if r.IsPositive() {
		return r
	}

	return ZeroHyper[T, D]()
}

// Inv returns 1/h.
func (h HyperDual[T, D]) Inv() HyperDual[T, D] { return OneHyper[T, D]().Div(h) }

func isNegative[T Scalar](v T) bool { return math.Signbit(float64(v)) }

func isPositive[T Scalar](v T) bool { return !isNegative(v) }

func signum[T Scalar](v T) T {
	switch {
	case v != v:
		return v
	case isNegative(v):
		return -1
	default:
		return 1
	}
}
