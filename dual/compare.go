// SPDX-License-Identifier: MIT
// Package dual - comparison and equality.
//
// Every comparison reads the primal value only. Two duals with equal values
// and different derivatives are equal; this is what lets duals stand in for
// scalars in root finding, sorting and branching.
//
// Cmp is a total order and panics with ErrUnordered on NaN; PartialCmp is the
// non-panicking form.

package dual

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Compare is a comparison function for slices.SortFunc and friends.
func Compare[X interface{ Cmp(X) int }](a, b X) int { return a.Cmp(b) }

func (d Dual[T, D]) Equal(b Dual[T, D]) bool     { return d.value == b.value }
func (d Dual[T, D]) Less(b Dual[T, D]) bool      { return d.value < b.value }
func (d Dual[T, D]) LessEq(b Dual[T, D]) bool    { return d.value <= b.value }
func (d Dual[T, D]) Greater(b Dual[T, D]) bool   { return d.value > b.value }
func (d Dual[T, D]) GreaterEq(b Dual[T, D]) bool { return d.value >= b.value }

// PartialCmp returns -1, 0 or +1 and true, or (0, false) if either value is NaN.
func (d Dual[T, D]) PartialCmp(b Dual[T, D]) (int, bool) { return partialCmp(d.value, b.value) }

// Cmp returns -1, 0 or +1. Panics with ErrUnordered if either value is NaN.
func (d Dual[T, D]) Cmp(b Dual[T, D]) int { return totalCmp(d.value, b.value) }

// AbsDiffEq reports |d - b| <= epsilon on the values.
func (d Dual[T, D]) AbsDiffEq(b Dual[T, D], opts ...ApproxOption) bool {
	return absDiffEq(d.value, b.value, gatherApprox[T](opts))
}

// RelativeEq reports whether the values are within epsilon absolutely or
// within the relative tolerance of the larger magnitude.
func (d Dual[T, D]) RelativeEq(b Dual[T, D], opts ...ApproxOption) bool {
	return relativeEq(d.value, b.value, gatherApprox[T](opts))
}

// UlpsEq reports whether the values are within epsilon absolutely or within
// the configured number of representable steps of T.
func (d Dual[T, D]) UlpsEq(b Dual[T, D], opts ...ApproxOption) bool {
	return ulpsEq(d.value, b.value, gatherApprox[T](opts))
}

func (h HyperDual[T, D]) Equal(b HyperDual[T, D]) bool     { return h.value == b.value }
func (h HyperDual[T, D]) Less(b HyperDual[T, D]) bool      { return h.value < b.value }
func (h HyperDual[T, D]) LessEq(b HyperDual[T, D]) bool    { return h.value <= b.value }
func (h HyperDual[T, D]) Greater(b HyperDual[T, D]) bool   { return h.value > b.value }
func (h HyperDual[T, D]) GreaterEq(b HyperDual[T, D]) bool { return h.value >= b.value }

// PartialCmp returns -1, 0 or +1 and true, or (0, false) if either value is NaN.
func (h HyperDual[T, D]) PartialCmp(b HyperDual[T, D]) (int, bool) {
	return partialCmp(h.value, b.value)
}

// Cmp returns -1, 0 or +1. Panics with ErrUnordered if either value is NaN.
func (h HyperDual[T, D]) Cmp(b HyperDual[T, D]) int { return totalCmp(h.value, b.value) }

func (h HyperDual[T, D]) AbsDiffEq(b HyperDual[T, D], opts ...ApproxOption) bool {
	return absDiffEq(h.value, b.value, gatherApprox[T](opts))
}

func (h HyperDual[T, D]) RelativeEq(b HyperDual[T, D], opts ...ApproxOption) bool {
	return relativeEq(h.value, b.value, gatherApprox[T](opts))
}

func (h HyperDual[T, D]) UlpsEq(b HyperDual[T, D], opts ...ApproxOption) bool {
	return ulpsEq(h.value, b.value, gatherApprox[T](opts))
}

func partialCmp[T Scalar](a, b T) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	default:
		return 0, false
	}
}

func totalCmp[T Scalar](a, b T) int {
	c, ok := partialCmp(a, b)
	if !ok {
		panic(dualErrorf("Cmp", ErrUnordered))
	}

	return c
}

// absDiffEq is false for any infinite operand: |Inf - Inf| is NaN, which is
// within no tolerance.
func absDiffEq[T Scalar](a, b T, o approxOptions) bool {
	x, y := float64(a), float64(b)
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return scalar.EqualWithinAbs(x, y, o.eps)
}

func relativeEq[T Scalar](a, b T, o approxOptions) bool {
	x, y := float64(a), float64(b)
	if x == y {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return scalar.EqualWithinAbsOrRel(x, y, o.eps, o.maxRel)
}

func ulpsEq[T Scalar](a, b T, o approxOptions) bool {
	if absDiffEq(a, b, o) {
		return true
	}
	if bitSize[T]() == 32 {
		return equalWithinULP32(float32(a), float32(b), o.maxULPs)
	}

	return scalar.EqualWithinULP(float64(a), float64(b), o.maxULPs)
}

// equalWithinULP32 is the float32 counterpart of scalar.EqualWithinULP:
// ULP distance is measured in float32 steps, not in the widened float64 ones.
func equalWithinULP32(a, b float32, ulp uint) bool {
	if a == b {
		return true
	}
	if a != a || b != b {
		return false
	}
	if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
		return math.Float32bits(abs32(a))+math.Float32bits(abs32(b)) <= uint32(ulp)
	}

	return ulpDiff32(math.Float32bits(a), math.Float32bits(b)) <= uint32(ulp)
}

func abs32(v float32) float32 { return math.Float32frombits(math.Float32bits(v) &^ (1 << 31)) }

func ulpDiff32(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
