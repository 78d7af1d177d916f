// SPDX-License-Identifier: MIT

//go:build !hessian

package dual

// TracksHessian reports whether Value carries second derivatives. It is set
// by the hessian build tag.
const TracksHessian = false

// Value is the dual type selected for this build: Dual, or HyperDual when
// built with -tags hessian. Code that needs Hess must be built with the tag.
type Value[T Scalar, D Dim] = Dual[T, D]

// NewValue returns the constant v as a Value.
func NewValue[T Scalar, D Dim](v T) Value[T, D] { return New[T, D](v) }

// ConstValue returns the constant v as a Value without allocating.
func ConstValue[T Scalar, D Dim](v T) Value[T, D] { return NewConst[T, D](v) }

// ValueVariables seeds values[i] as independent variable i.
func ValueVariables[T Scalar, D Dim](values ...T) []Value[T, D] { return Variables[T, D](values...) }

// ParseValue parses the primal of a constant Value; see Parse.
func ParseValue[T Scalar, D Dim](s string, radix int) (Value[T, D], error) {
	return Parse[T, D](s, radix)
}
