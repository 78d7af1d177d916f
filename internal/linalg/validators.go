// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//  - Single source of truth for shape and symmetry checks on the public surface.
//  - Return plain sentinels (tagged) so callers can match with errors.Is.
//
// Determinism & Performance:
//  - Pure, allocation-free; symmetry scans the strict upper triangle only.

package linalg

// ValidateLen checks that x has exactly n elements.
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func ValidateLen[T any](x []T, n int) error {
	if len(x) != n {
		return linalgErrorf("ValidateLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks that the flat n×n matrix H is exactly symmetric.
//
// Errors:
//   - ErrDimensionMismatch if len(H) != n*n.
//   - ErrAsymmetry on the first (i<j) pair with H[i,j] != H[j,i].
//
// Notes:
//   - Exact comparison: derivative matrices built by this module are mirrored,
//     so any deviation comes from caller-supplied data.
//   - A pair that is NaN on both sides counts as symmetric.
//
// Complexity: O(n²).
func ValidateSymmetric[T Float](n int, H []T) error {
	if len(H) != n*n {
		return linalgErrorf("ValidateSymmetric", ErrDimensionMismatch)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b := H[i*n+j], H[j*n+i]
			if a != b && (a == a || b == b) {
				return linalgErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
