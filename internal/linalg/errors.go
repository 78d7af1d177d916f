// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a slice whose length differs from the
	// dimension (n for vectors, n*n for matrices) it was used with.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrAsymmetry signals a matrix expected to be symmetric that is not
	// bit-for-bit symmetric.
	ErrAsymmetry = errors.New("linalg: matrix is not symmetric")

	// ErrOutOfRange indicates an element index outside [0, n).
	ErrOutOfRange = errors.New("linalg: index out of range")
)

// linalgErrorf tags err with the kernel or validator name.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustLen panics unless x is nil or has exactly want elements.
func mustLen[T any](tag string, x []T, want int) {
	if x != nil && len(x) != want {
		panic(linalgErrorf(tag, fmt.Errorf("len %d, want %d: %w", len(x), want, ErrDimensionMismatch)))
	}
}
