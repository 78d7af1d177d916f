// SPDX-License-Identifier: MIT

// Package linalg is the fixed-dimension vector and symmetric-matrix substrate
// behind the dual types.
//
// Layout:
//
//	vector of length n        → []T, index k
//	n×n matrix (row-major)    → []T of length n*n, offset i*n + j
//
// A nil slice stands for the all-zero vector/matrix of the requested size.
// Every kernel reads nil operands as zeros and may return nil when the result
// is provably all-zero, which keeps constants allocation-free.
//
// Kernels never mutate their inputs and always allocate a fresh result, so
// callers may share slices between immutable values. Loop orders are fixed
// (flat 0..n-1 for vectors, i→j over the upper triangle for matrices).
//
// Symmetric kernels compute the upper triangle and mirror it into the lower
// one: the output is bit-for-bit symmetric regardless of rounding.
//
// Length mismatches are programmer errors inside this module and panic with
// an error wrapping ErrDimensionMismatch. Validators return plain sentinels
// for the public surface to wrap.
package linalg
