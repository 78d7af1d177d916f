// SPDX-License-Identifier: MIT

// Package dual implements forward-mode automatic differentiation with dual
// numbers: a value carried together with its first (and optionally second)
// partial derivatives with respect to N independent variables.
//
// What & Why:
//
//	Write an expression once over dual values and get, alongside the
//	result, its exact gradient (and Hessian) - no symbolic work, no finite
//	differences, no tape.
//
// Types:
//
//	Dual[T, D]       value + gradient                  (first order)
//	HyperDual[T, D]  value + gradient + Hessian        (second order)
//	Value[T, D]      alias of one of the two, chosen by the "hessian" build tag
//
// T is float32 or float64 (or a type derived from them); D fixes the number
// of variables at compile time (N1..N8, or any empty type with a Len method).
//
// Quick example (N=2):
//
//	xs := dual.Variables[float64, dual.N2](3, 4)
//	x, y := xs[0], xs[1]
//	z := x.Mul(y).Add(x)        // z = x*y + x
//	z.Value()                   // 15
//	z.Grad()                    // [5 3]
//
// Rules:
//
//	a+b, a-b   linear in value, gradient and Hessian
//	a*b        product rule; Hessian ah*bv + bg⊗ag + ag⊗bg + bh*av
//	a/b        quotient rule; Hessian (ah - g⊗bg - bg⊗g - bh*q)/bv
//	a%b        value math.Mod(a, b); derivatives of a, unchanged
//	Chain      outer function with f, f′, f″: grad g*f′, hess (g⊗g)f″ + H f′
//
// Elementary functions live outside this package; they call Chain (or
// ChainFull) with the function's value and derivatives at x.Value():
//
//	func Sin[X dual.Number[float64, X]](x X) X {
//		v := x.Value()
//		return x.ChainFull(math.Sin(v), math.Cos(v), -math.Sin(v))
//	}
//
// Comparison and equality look at the value only, so duals can drive
// sorting, branching and root finding exactly like scalars.
//
// Errors & panics:
//
//	Recoverable: Parse (strconv errors unchanged, ErrInvalidRadix),
//	FromParts/HyperFromParts (ErrDimensionMismatch, ErrAsymmetry).
//	Fatal preconditions panic with a wrapped sentinel: Active/GradAt/HessAt
//	out of range (ErrIndexOutOfRange), Cmp on NaN (ErrUnordered).
//	Division by zero follows IEEE-754.
//
// Concurrency:
//
//	Values are immutable once built (derivative storage is never written
//	after allocation); they may be copied and shared across goroutines
//	freely. The *Assign methods replace their receiver and need the usual
//	exclusive access to that variable.
package dual
