// SPDX-License-Identifier: MIT
// Package dual - arithmetic on Dual.
//
// Operands are passed and returned by value and are never mutated, so
// "owned" and "borrowed" operands are the same thing in Go: a.Add(b) and
// b's later use observe identical data. The *Assign forms replace the
// receiver as a whole.

package dual

import "github.com/katalvlaran/tin/internal/linalg"

// binary applies op to (d, b) through the shared rule table.
func (d Dual[T, D]) binary(op binaryOp, b Dual[T, D]) Dual[T, D] {
	v, g := applyFirst(dimOf[D](), op, d.value, d.grad, b.value, b.grad)
	return Dual[T, D]{value: v, grad: g}
}

// Add returns d + b.
func (d Dual[T, D]) Add(b Dual[T, D]) Dual[T, D] { return d.binary(opAdd, b) }

// Sub returns d - b.
func (d Dual[T, D]) Sub(b Dual[T, D]) Dual[T, D] { return d.binary(opSub, b) }

// Mul returns d * b (product rule).
func (d Dual[T, D]) Mul(b Dual[T, D]) Dual[T, D] { return d.binary(opMul, b) }

// Div returns d / b (quotient rule). A zero primal divisor yields IEEE
// Inf/NaN exactly as T's division does.
func (d Dual[T, D]) Div(b Dual[T, D]) Dual[T, D] { return d.binary(opDiv, b) }

// Rem returns d % b: the value is math.Mod(d, b) and the gradient is d's,
// unchanged. b's derivatives do not contribute.
func (d Dual[T, D]) Rem(b Dual[T, D]) Dual[T, D] { return d.binary(opRem, b) }

// Neg returns -d.
func (d Dual[T, D]) Neg() Dual[T, D] {
	return Dual[T, D]{value: -d.value, grad: linalg.Neg(dimOf[D](), d.grad)}
}

// AddScalar returns d + c, c being a constant.
func (d Dual[T, D]) AddScalar(c T) Dual[T, D] { return d.Add(NewConst[T, D](c)) }

// SubScalar returns d - c, c being a constant.
func (d Dual[T, D]) SubScalar(c T) Dual[T, D] { return d.Sub(NewConst[T, D](c)) }

// MulScalar returns d * c, c being a constant.
func (d Dual[T, D]) MulScalar(c T) Dual[T, D] { return d.Mul(NewConst[T, D](c)) }

// DivScalar returns d / c, c being a constant.
func (d Dual[T, D]) DivScalar(c T) Dual[T, D] { return d.Div(NewConst[T, D](c)) }

// AddAssign sets *d = *d + b.
func (d *Dual[T, D]) AddAssign(b Dual[T, D]) { d.assign(opAdd, b) }

// SubAssign sets *d = *d - b.
func (d *Dual[T, D]) SubAssign(b Dual[T, D]) { d.assign(opSub, b) }

// MulAssign sets *d = *d * b.
func (d *Dual[T, D]) MulAssign(b Dual[T, D]) { d.assign(opMul, b) }

// DivAssign sets *d = *d / b.
func (d *Dual[T, D]) DivAssign(b Dual[T, D]) { d.assign(opDiv, b) }

// RemAssign sets *d = *d % b.
func (d *Dual[T, D]) RemAssign(b Dual[T, D]) { d.assign(opRem, b) }

// assign moves the old receiver into a local, then stores the full result
// in one write. d may alias b (x.MulAssign(x)).
func (d *Dual[T, D]) assign(op binaryOp, b Dual[T, D]) {
	lhs := *d
	*d = lhs.binary(op, b)
}

// Chain applies an outer scalar function f to d given f(x), f′(x) at
// x = d.Value(): the result has value `value` and gradient grad*d1.
func (d Dual[T, D]) Chain(value, d1 T) Dual[T, D] {
	return Dual[T, D]{value: value, grad: linalg.Scale(dimOf[D](), d.grad, d1)}
}

// ChainFull is Chain with the second derivative accepted and ignored, so
// elementary functions can be written once for both variants.
func (d Dual[T, D]) ChainFull(value, d1, _ T) Dual[T, D] { return d.Chain(value, d1) }
