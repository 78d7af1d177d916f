// SPDX-License-Identifier: MIT

//go:build hessian

package dual

// TracksHessian reports whether Value carries second derivatives.
const TracksHessian = true

// Value is the dual type selected for this build: HyperDual under the
// hessian build tag.
type Value[T Scalar, D Dim] = HyperDual[T, D]

// NewValue returns the constant v as a Value.
func NewValue[T Scalar, D Dim](v T) Value[T, D] { return NewHyper[T, D](v) }

// ConstValue returns the constant v as a Value without allocating.
func ConstValue[T Scalar, D Dim](v T) Value[T, D] { return NewHyperConst[T, D](v) }

// ValueVariables seeds values[i] as independent variable i.
func ValueVariables[T Scalar, D Dim](values ...T) []Value[T, D] {
	return HyperVariables[T, D](values...)
}

// ParseValue parses the primal of a constant Value; see Parse.
func ParseValue[T Scalar, D Dim](s string, radix int) (Value[T, D], error) {
	return ParseHyper[T, D](s, radix)
}
