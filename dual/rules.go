// SPDX-License-Identifier: MIT
// Package dual - derivative rules of the binary operators.
//
// Every binary operator is described by a rule evaluated at the two primal
// values:
//
//	first order:   grad = (ag*ca + bg*cb) / den
//	second order:  hess = (ah*ha + cross*(w⊗u) + cross*(u⊗w) + bh*hb) / hden
//
// Dual and HyperDual both route through applyFirst; HyperDual additionally
// routes through applySecond. No operator has its own loop.
//
// Rule table (q = av/bv, g = quotient gradient):
//
//	op   value        ca   cb    den    ha   hb   u    w    cross  hden
//	add  av+bv        1    1     1      1    1    -    -    0      1
//	sub  av-bv        1    -1    1      1    -1   -    -    0      1
//	mul  av*bv        bv   av    1      bv   av   ag   bg   1      1
//	div  q            bv   -av   bv*bv  1    -q   bg   g    -1     bv
//	rem  Mod(av,bv)   derivatives of the left operand, unchanged

package dual

import (
	"math"

	"github.com/katalvlaran/tin/internal/linalg"
)

type binaryOp uint8

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
	opRem
)

// firstOrder is the value and gradient rule of one operator application.
type firstOrder[T Scalar] struct {
	value       T
	ca, cb, den T
	keepLeft    bool // derivatives pass through from the left operand
}

// secondOrder is the Hessian rule of one operator application.
type secondOrder[T Scalar] struct {
	ha, hb      T
	u, w        []T
	cross, hden T
}

// firstOrderRule evaluates the value/gradient rule of op at (av, bv).
func firstOrderRule[T Scalar](op binaryOp, av, bv T) firstOrder[T] {
	switch op {
	case opAdd:
		return firstOrder[T]{value: av + bv, ca: 1, cb: 1, den: 1}
	case opSub:
		return firstOrder[T]{value: av - bv, ca: 1, cb: -1, den: 1}
	case opMul:
		return firstOrder[T]{value: av * bv, ca: bv, cb: av, den: 1}
	case opDiv:
		return firstOrder[T]{value: av / bv, ca: bv, cb: -av, den: bv * bv}
	default:
		return firstOrder[T]{value: rem(av, bv), keepLeft: true}
	}
}

// secondOrderRule evaluates the Hessian rule of op. q and qg are the value
// and gradient already computed by the first-order rule.
func secondOrderRule[T Scalar](op binaryOp, av T, ag []T, bv T, bg []T, q T, qg []T) secondOrder[T] {
	switch op {
	case opAdd:
		return secondOrder[T]{ha: 1, hb: 1, hden: 1}
	case opSub:
		return secondOrder[T]{ha: 1, hb: -1, hden: 1}
	case opMul:
		return secondOrder[T]{ha: bv, hb: av, u: ag, w: bg, cross: 1, hden: 1}
	default: // opDiv
		return secondOrder[T]{ha: 1, hb: -q, u: bg, w: qg, cross: -1, hden: bv}
	}
}

// applyFirst combines value and gradient of two operands under op.
func applyFirst[T Scalar](n int, op binaryOp, av T, ag []T, bv T, bg []T) (T, []T) {
	r := firstOrderRule(op, av, bv)
	if r.keepLeft {
		return r.value, ag
	}

	return r.value, linalg.Combine(n, ag, bg, r.ca, r.cb, r.den)
}

// applySecond combines two Hessians under op; it needs the first-order
// result (q, qg) for the quotient rule.
func applySecond[T Scalar](n int, op binaryOp, av T, ag, ah []T, bv T, bg, bh []T, q T, qg []T) []T {
	if op == opRem {
		return ah
	}
	s := secondOrderRule(op, av, ag, bv, bg, q, qg)

	return linalg.SymCombine(n, ah, bh, s.ha, s.hb, s.u, s.w, s.cross, s.hden)
}

// rem is the floating-point remainder with the sign of the dividend.
func rem[T Scalar](a, b T) T {
	return T(math.Mod(float64(a), float64(b)))
}
