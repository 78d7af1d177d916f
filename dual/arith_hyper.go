// SPDX-License-Identifier: MIT

package dual

import "github.com/katalvlaran/tin/internal/linalg"

// binary applies op to (h, b): gradient first, then the Hessian, which for
// the quotient rule reads the freshly computed quotient gradient.
func (h HyperDual[T, D]) binary(op binaryOp, b HyperDual[T, D]) HyperDual[T, D] {
	n := dimOf[D]()
	v, g := applyFirst(n, op, h.value, h.grad, b.value, b.grad)
	hs := applySecond(n, op, h.value, h.grad, h.hess, b.value, b.grad, b.hess, v, g)

	return HyperDual[T, D]{value: v, grad: g, hess: hs}
}

// Add returns h + b.
func (h HyperDual[T, D]) Add(b HyperDual[T, D]) HyperDual[T, D] { return h.binary(opAdd, b) }

// Sub returns h - b.
func (h HyperDual[T, D]) Sub(b HyperDual[T, D]) HyperDual[T, D] { return h.binary(opSub, b) }

// Mul returns h * b; the Hessian follows the second-order product rule
// ah*bv + bg⊗ag + ag⊗bg + bh*av.
func (h HyperDual[T, D]) Mul(b HyperDual[T, D]) HyperDual[T, D] { return h.binary(opMul, b) }

// Div returns h / b; with q = h/b the Hessian is (ah - g⊗bg - bg⊗g - bh*q)/bv.
func (h HyperDual[T, D]) Div(b HyperDual[T, D]) HyperDual[T, D] { return h.binary(opDiv, b) }

// Rem returns h % b. Gradient and Hessian are h's, unchanged.
func (h HyperDual[T, D]) Rem(b HyperDual[T, D]) HyperDual[T, D] { return h.binary(opRem, b) }

// Neg returns -h.
func (h HyperDual[T, D]) Neg() HyperDual[T, D] {
	n := dimOf[D]()
	return HyperDual[T, D]{
		value: -h.value,
		grad:  linalg.Neg(n, h.grad),
		hess:  linalg.SymNeg(n, h.hess),
	}
}

func (h HyperDual[T, D]) AddScalar(c T) HyperDual[T, D] { return h.Add(NewHyperConst[T, D](c)) }
func (h HyperDual[T, D]) SubScalar(c T) HyperDual[T, D] { return h.Sub(NewHyperConst[T, D](c)) }
func (h HyperDual[T, D]) MulScalar(c T) HyperDual[T, D] { return h.Mul(NewHyperConst[T, D](c)) }
func (h HyperDual[T, D]) DivScalar(c T) HyperDual[T, D] { return h.Div(NewHyperConst[T, D](c)) }

func (h *HyperDual[T, D]) AddAssign(b HyperDual[T, D]) { h.assign(opAdd, b) }
func (h *HyperDual[T, D]) SubAssign(b HyperDual[T, D]) { h.assign(opSub, b) }
func (h *HyperDual[T, D]) MulAssign(b HyperDual[T, D]) { h.assign(opMul, b) }
func (h *HyperDual[T, D]) DivAssign(b HyperDual[T, D]) { h.assign(opDiv, b) }
func (h *HyperDual[T, D]) RemAssign(b HyperDual[T, D]) { h.assign(opRem, b) }

// assign computes from a local copy of the old receiver and writes once.
func (h *HyperDual[T, D]) assign(op binaryOp, b HyperDual[T, D]) {
	lhs := *h
	*h = lhs.binary(op, b)
}

// Chain applies an outer scalar function f given f(x), f′(x), f″(x) at
// x = h.Value():
//
//	value = value
//	grad  = g*d1
//	hess  = (g⊗g)*d2 + H*d1
func (h HyperDual[T, D]) Chain(value, d1, d2 T) HyperDual[T, D] {
	n := dimOf[D]()
	return HyperDual[T, D]{
		value: value,
		grad:  linalg.Scale(n, h.grad, d1),
		hess:  linalg.SymChain(n, h.grad, d2, h.hess, d1),
	}
}

// ChainFull is Chain; it exists so both variants share one signature.
func (h HyperDual[T, D]) ChainFull(value, d1, d2 T) HyperDual[T, D] {
	return h.Chain(value, d1, d2)
}
