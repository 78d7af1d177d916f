// SPDX-License-Identifier: MIT
// Package linalg - symmetric n×n kernels over flat row-major storage.
//
// Purpose:
//   - Second-order product/quotient rule: scaled sums of two symmetric
//     matrices plus a symmetrized rank-1 cross term (u⊗w + w⊗u).
//   - Second-order chain rule: (g⊗g)*d2 + H*d1.
//
// Determinism & Performance:
//   - Fixed i→j loops over the upper triangle (j >= i); the lower triangle is
//     a copy, so out[i*n+j] == out[j*n+i] holds exactly.
//   - One allocation of n*n per call; inputs remain immutable.

package linalg

// SymCombine computes the symmetric matrix
//
//	out = (A*ha + cross*(w⊗u) + cross*(u⊗w) + B*hb) / den
//
// where (w⊗u)[i,j] = w[i]*u[j].
//
// Implementation:
//   - Stage 1: validate lengths (vectors n, matrices n*n); nil reads as zero.
//   - Stage 2: nil fast path when every input is nil/absent and the rule maps zero to zero.
//   - Stage 3: accumulate the upper triangle term by term, divide, mirror.
//
// Inputs:
//   - A, B: symmetric n×n operands (row-major, may be nil).
//   - ha, hb: their scale factors.
//   - u, w: vectors forming the cross term (may be nil).
//   - cross: cross-term scale (+1 for products, -1 for quotients).
//   - den: final divisor (1 when no division is wanted).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func SymCombine[T Float](n int, A, B []T, ha, hb T, u, w []T, cross, den T) []T {
	mustLen("SymCombine", A, n*n)
	mustLen("SymCombine", B, n*n)
	mustLen("SymCombine", u, n)
	mustLen("SymCombine", w, n)
	if A == nil && B == nil && (u == nil || w == nil) && symCombinePreservesZero(ha, hb, cross, den) {
		return nil
	}

	out := make([]T, n*n)
	var (
		i, j int
		acc  T
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			acc = T(at(A, i*n+j) * ha)
			acc += T(cross * T(at(w, i)*at(u, j)))
			acc += T(cross * T(at(u, i)*at(w, j)))
			acc += T(at(B, i*n+j) * hb)
			out[i*n+j] = acc / den
			out[j*n+i] = out[i*n+j]
		}
	}

	return out
}

// SymChain computes out = (g⊗g)*d2 + H*d1, the second-order chain rule for
// an outer scalar function with slope d1 and curvature d2.
//
// Complexity: O(n²).
func SymChain[T Float](n int, g []T, d2 T, H []T, d1 T) []T {
	mustLen("SymChain", g, n)
	mustLen("SymChain", H, n*n)
	var zero T
	if g == nil && H == nil && T(zero*d2)+T(zero*d1) == 0 {
		return nil
	}

	out := make([]T, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			out[i*n+j] = T(T(at(g, i)*at(g, j))*d2) + T(at(H, i*n+j)*d1)
			out[j*n+i] = out[i*n+j]
		}
	}

	return out
}

// SymNeg computes out = -H. A nil input stays nil.
// Complexity: O(n²).
func SymNeg[T Float](n int, H []T) []T {
	mustLen("SymNeg", H, n*n)
	return Neg(n*n, H)
}

// Rows copies the flat n×n matrix H into a fresh [][]T (nil becomes zeros).
// Complexity: O(n²).
func Rows[T Float](n int, H []T) [][]T {
	mustLen("Rows", H, n*n)
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		out[i] = make([]T, n)
		if H != nil {
			copy(out[i], H[i*n:(i+1)*n])
		}
	}

	return out
}

// Flatten copies rows into a fresh flat row-major slice after checking that
// rows is n×n.
//
// Errors:
//   - ErrDimensionMismatch when rows is not n×n.
//
// Complexity: O(n²).
func Flatten[T Float](n int, rows [][]T) ([]T, error) {
	if len(rows) != n {
		return nil, linalgErrorf("Flatten", ErrDimensionMismatch)
	}
	out := make([]T, n*n)
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, linalgErrorf("Flatten", ErrDimensionMismatch)
		}
		copy(out[i*n:(i+1)*n], rows[i])
	}

	return out, nil
}

// symCombinePreservesZero reports whether SymCombine maps all-zero inputs to zero.
func symCombinePreservesZero[T Float](ha, hb, cross, den T) bool {
	var zero T
	acc := T(zero * ha)
	acc += T(cross * zero)
	acc += T(cross * zero)
	acc += T(zero * hb)

	return acc/den == 0
}
