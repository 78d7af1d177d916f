// SPDX-License-Identifier: MIT

package dual

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tin/internal/linalg"
)

// GradVec returns the gradient as a new gonum column vector (widened to
// float64), ready for mat-based solvers.
func (d Dual[T, D]) GradVec() *mat.VecDense {
	n := dimOf[D]()
	return mat.NewVecDense(n, linalg.ToFloat64(n, d.grad))
}

// GradVec returns the gradient as a new gonum column vector.
func (h HyperDual[T, D]) GradVec() *mat.VecDense {
	n := dimOf[D]()
	return mat.NewVecDense(n, linalg.ToFloat64(n, h.grad))
}

// HessSym returns the Hessian as a new gonum symmetric matrix, e.g. for a
// Newton step via mat.Cholesky.
func (h HyperDual[T, D]) HessSym() *mat.SymDense {
	n := dimOf[D]()
	return mat.NewSymDense(n, linalg.ToFloat64(n*n, h.hess))
}
