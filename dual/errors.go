// SPDX-License-Identifier: MIT
// Package dual: sentinel error set.
// Recoverable failures (parsing, FromParts validation) return these sentinels,
// tagged with the call site; tests match them via errors.Is.
// Precondition violations (seed index out of range, total ordering on
// unordered values, invalid dimension) panic with an error value wrapping
// the matching sentinel, so recover()+errors.Is works as well.

package dual

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a variable index outside [0, N).
	ErrIndexOutOfRange = errors.New("dual: index out of range")

	// ErrDimensionMismatch indicates derivative data whose length does not
	// match the dimension N of the dual type.
	ErrDimensionMismatch = errors.New("dual: dimension mismatch")

	// ErrAsymmetry signals a caller-supplied Hessian that is not symmetric.
	ErrAsymmetry = errors.New("dual: hessian is not symmetric")

	// ErrUnordered is the panic cause of Cmp when the primal values have no
	// ordering (either one is NaN).
	ErrUnordered = errors.New("dual: values are not ordered")

	// ErrBadDimension indicates a Dim whose Len() is not positive.
	ErrBadDimension = errors.New("dual: dimension must be > 0")

	// ErrInvalidRadix indicates a parse radix outside [2, 36].
	ErrInvalidRadix = errors.New("dual: radix must be in [2, 36]")
)

// dualErrorf tags err with the operation name.
func dualErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// preconditionf panics with err tagged by the operation and its argument.
func preconditionf(tag string, arg int, err error) {
	panic(fmt.Errorf("%s(%d): %w", tag, arg, err))
}
