// SPDX-License-Identifier: MIT

// Package tin is a small forward-mode automatic-differentiation toolkit:
// exact first and second derivatives of ordinary Go numeric code, with no
// tape, no symbolic algebra and no finite differences.
//
// 🚀 What is in the box?
//
//	dual/             Dual (value + gradient) and HyperDual (value + gradient
//	                  + Hessian) over float32/float64 with N variables fixed at
//	                  compile time; arithmetic with exact derivative rules, a
//	                  chain-rule hook for elementary functions, value-only
//	                  comparison, parsing, formatting and gonum interop.
//	internal/linalg/  flat row-major vector and symmetric-matrix kernels the
//	                  dual types are built on.
//
// ✨ Guarantees
//
//   - Exact rules: sum, product, quotient and chain rules, applied in floating
//     point with no fused multiply-add, so results are bit-reproducible.
//   - Symmetric Hessians: every Hessian produced is symmetric bit for bit.
//   - Cheap constants: constants carry no derivative storage at all.
//   - Compile-time shape: mixing dimensions is a type error, not a panic.
//
// Quick example:
//
//	xs := dual.HyperVariables[float64, dual.N2](2, 4)
//	f := xs[0].Div(xs[1])     // f = x / y
//	f.Value()                 // 0.5
//	f.Grad()                  // [0.25 -0.125]
//	f.Hess()                  // [[0 -0.0625] [-0.0625 0.0625]]
//
// Build with -tags hessian to make dual.Value carry second derivatives.
//
//	go get github.com/katalvlaran/tin/dual
package tin
