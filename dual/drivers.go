// SPDX-License-Identifier: MIT
// Package dual - generic helpers over Number and derivative drivers.
//
// The helpers are written once against Number, the way generic numeric code
// written for scalars would be, and run on either variant. The drivers seed
// inputs, evaluate a caller's function once, and unpack the derivatives.

package dual

// Sum returns the sum of xs (the constant 0 for no arguments).
func Sum[T Scalar, X Number[T, X]](xs ...X) X {
	var acc X // zero value of both variants is the constant 0
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Product returns the product of xs (the constant 1 for no arguments).
func Product[T Scalar, X Number[T, X]](xs ...X) X {
	var zero X
	acc := zero.AddScalar(1)
	for _, x := range xs {
		acc = acc.Mul(x)
	}

	return acc
}

// Horner evaluates the polynomial coeffs[0] + coeffs[1]*x + ... at x.
func Horner[T Scalar, X Number[T, X]](coeffs []T, x X) X {
	var acc X
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).AddScalar(coeffs[i])
	}

	return acc
}

// Derivative evaluates f at x and returns f(x) and f′(x).
func Derivative[T Scalar](f func(Dual[T, N1]) Dual[T, N1], x T) (value, slope T) {
	y := f(NewConst[T, N1](x).Active(0))
	return y.Value(), y.GradAt(0)
}

// SecondDerivative evaluates f at x and returns f(x), f′(x) and f″(x).
func SecondDerivative[T Scalar](f func(HyperDual[T, N1]) HyperDual[T, N1], x T) (value, slope, curvature T) {
	y := f(NewHyperConst[T, N1](x).Active(0))
	return y.Value(), y.GradAt(0), y.HessAt(0, 0)
}

// Gradient evaluates f at the point x and returns f(x) and ∇f(x).
// len(x) must equal N (panics with ErrDimensionMismatch otherwise).
func Gradient[T Scalar, D Dim](f func([]Dual[T, D]) Dual[T, D], x []T) (T, []T) {
	y := f(Variables[T, D](x...))
	return y.Value(), y.Grad()
}

// Hessian evaluates f at the point x and returns f(x), ∇f(x) and ∇²f(x).
// len(x) must equal N (panics with ErrDimensionMismatch otherwise).
func Hessian[T Scalar, D Dim](f func([]HyperDual[T, D]) HyperDual[T, D], x []T) (T, []T, [][]T) {
	y := f(HyperVariables[T, D](x...))
	return y.Value(), y.Grad(), y.Hess()
}
