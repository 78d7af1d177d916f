// SPDX-License-Identifier: MIT

// Package dual: shared type contracts.
// This file holds the scalar constraint and the Number contract that both
// dual variants satisfy, plus compile-time conformance assertions.
package dual

import (
	"unsafe"

	"github.com/katalvlaran/tin/internal/linalg"
)

// Scalar is the primal element type: any floating-point type.
type Scalar interface {
	linalg.Float
}

// Number is the contract shared by Dual and HyperDual. Generic code written
// against Number runs unchanged under either variant (and therefore under
// either setting of the hessian build tag, see Value).
//
// X is the implementing type itself, e.g. Number[float64, Dual[float64, N2]].
type Number[T Scalar, X any] interface {
	Value() T
	Grad() []T
	GradAt(i int) T
	Dim() int
	Active(index int) X

	Add(b X) X
	Sub(b X) X
	Mul(b X) X
	Div(b X) X
	Rem(b X) X
	Neg() X
	AddScalar(c T) X
	SubScalar(c T) X
	MulScalar(c T) X
	DivScalar(c T) X
	ChainFull(value, d1, d2 T) X

	Abs() X
	Signum() X
	AbsSub(b X) X
	Inv() X
	IsZero() bool
	IsOne() bool
	IsPositive() bool
	IsNegative() bool

	Equal(b X) bool
	Less(b X) bool
	LessEq(b X) bool
	Greater(b X) bool
	GreaterEq(b X) bool
	PartialCmp(b X) (int, bool)
	Cmp(b X) int

	String() string
}

var (
	_ Number[float64, Dual[float64, N2]]      = Dual[float64, N2]{}
	_ Number[float32, Dual[float32, N1]]      = Dual[float32, N1]{}
	_ Number[float64, HyperDual[float64, N2]] = HyperDual[float64, N2]{}
	_ Number[float32, HyperDual[float32, N1]] = HyperDual[float32, N1]{}
)

// bitSize returns 32 or 64 for the concrete float type behind T.
func bitSize[T Scalar]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}
