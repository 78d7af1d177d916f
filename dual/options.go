// SPDX-License-Identifier: MIT

// Package dual: functional configuration for approximate equality.
//
// Defaults (resolved per scalar type T):
//   - epsilon      = machine epsilon of T (2^-52 for float64, 2^-23 for float32)
//   - max relative = machine epsilon of T
//   - max ULPs     = DefaultMaxULPs
//
// Option constructors panic on nonsensical values (programmer error).
package dual

import "math"

// DefaultMaxULPs is the default units-in-last-place tolerance of UlpsEq.
const DefaultMaxULPs uint = 4

const (
	panicEpsilonInvalid     = "dual: WithEpsilon: eps must be finite, non-negative"
	panicMaxRelativeInvalid = "dual: WithMaxRelative: tolerance must be finite, non-negative"
)

// ApproxOption adjusts the tolerances of AbsDiffEq, RelativeEq and UlpsEq.
type ApproxOption func(*approxOptions)

type approxOptions struct {
	eps     float64 // absolute tolerance; NaN ⇒ default for T
	maxRel  float64 // relative tolerance; NaN ⇒ default for T
	maxULPs uint
}

// WithEpsilon sets the absolute tolerance. Panics unless eps is finite and >= 0.
func WithEpsilon(eps float64) ApproxOption {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *approxOptions) { o.eps = eps }
}

// WithMaxRelative sets the relative tolerance. Panics unless rel is finite and >= 0.
func WithMaxRelative(rel float64) ApproxOption {
	if math.IsNaN(rel) || math.IsInf(rel, 0) || rel < 0 {
		panic(panicMaxRelativeInvalid)
	}
	return func(o *approxOptions) { o.maxRel = rel }
}

// WithMaxULPs sets the units-in-last-place tolerance.
func WithMaxULPs(ulps uint) ApproxOption {
	return func(o *approxOptions) { o.maxULPs = ulps }
}

// gatherApprox applies opts over the defaults for T.
func gatherApprox[T Scalar](opts []ApproxOption) approxOptions {
	o := approxOptions{eps: math.NaN(), maxRel: math.NaN(), maxULPs: DefaultMaxULPs}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.eps) {
		o.eps = machineEpsilon[T]()
	}
	if math.IsNaN(o.maxRel) {
		o.maxRel = machineEpsilon[T]()
	}

	return o
}

// machineEpsilon is the gap between 1 and the next representable T.
func machineEpsilon[T Scalar]() float64 {
	if bitSize[T]() == 32 {
		return 0x1p-23
	}
	return 0x1p-52
}
