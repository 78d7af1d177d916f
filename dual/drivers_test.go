// SPDX-License-Identifier: MIT

package dual_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tin/dual"
)

func TestSumProduct(t *testing.T) {
	t.Parallel()

	xs := dual.Variables[float64, dual.N3](1, 2, 3)
	s := dual.Sum[float64](xs...)
	require.Equal(t, 6.0, s.Value())
	require.Equal(t, []float64{1, 1, 1}, s.Grad())

	p := dual.Product[float64](xs...)
	require.Equal(t, 6.0, p.Value())
	require.Equal(t, []float64{6, 3, 2}, p.Grad())

	require.True(t, dual.Sum[float64, dual.Dual[float64, dual.N3]]().IsZero())
	require.True(t, dual.Product[float64, dual.HyperDual[float64, dual.N3]]().IsOne())
}

func TestHorner(t *testing.T) {
	t.Parallel()

	// 1 + 2x + 3x² at x = 2
	x := dual.NewHyper[float64, dual.N1](2).Active(0)
	y := dual.Horner([]float64{1, 2, 3}, x)
	require.Equal(t, 17.0, y.Value())
	require.Equal(t, []float64{14}, y.Grad())
	require.Equal(t, [][]float64{{6}}, y.Hess())

	require.True(t, dual.Horner[float64](nil, x).IsZero())
}

func TestDerivative(t *testing.T) {
	t.Parallel()

	cube := func(x dual.Dual[float64, dual.N1]) dual.Dual[float64, dual.N1] { return x.Mul(x).Mul(x) }
	v, slope := dual.Derivative(cube, 2)
	require.Equal(t, 8.0, v)
	require.Equal(t, 12.0, slope)

	hcube := func(x dual.HyperDual[float64, dual.N1]) dual.HyperDual[float64, dual.N1] { return x.Mul(x).Mul(x) }
	v, slope, curv := dual.SecondDerivative(hcube, 2)
	require.Equal(t, 8.0, v)
	require.Equal(t, 12.0, slope)
	require.Equal(t, 12.0, curv)
}

// bumpy is a smooth test function of three variables:
// x0*sin(x1) + exp(x0*x2) / (1 + x1²).
func bumpy[X dual.Number[float64, X]](x []X) X {
	den := x[1].Mul(x[1]).AddScalar(1)
	return x[0].Mul(sinX(x[1])).Add(expX(x[0].Mul(x[2])).Div(den))
}

func bumpyFloat(x []float64) float64 {
	return x[0]*math.Sin(x[1]) + math.Exp(x[0]*x[2])/(1+x[1]*x[1])
}

func TestGradient_MatchesFiniteDifferences(t *testing.T) {
	t.Parallel()

	x := []float64{0.5, 1.2, -0.3}
	v, grad := dual.Gradient(bumpy[dual.Dual[float64, dual.N3]], x)
	want := fd.Gradient(nil, bumpyFloat, x, &fd.Settings{Formula: fd.Central, Step: 1e-4})

	require.InDelta(t, bumpyFloat(x), v, 1e-15)
	requireInDeltaSlice(t, want, grad, 1e-6)
}

func TestHessian_Analytic(t *testing.T) {
	t.Parallel()

	// f = x²y + y³ at (1, 2): grad [2xy, x² + 3y²], H [[2y, 2x], [2x, 6y]]
	f := func(v []dual.HyperDual[float64, dual.N2]) dual.HyperDual[float64, dual.N2] {
		x, y := v[0], v[1]
		return x.Mul(x).Mul(y).Add(y.Mul(y).Mul(y))
	}
	v, grad, hess := dual.Hessian(f, []float64{1, 2})
	require.Equal(t, 10.0, v)
	require.Equal(t, []float64{4, 13}, grad)
	require.Equal(t, [][]float64{{4, 2}, {2, 12}}, hess)
}

func TestHessian_MatchesFiniteDifferences(t *testing.T) {
	t.Parallel()

	x := []float64{0.5, 1.2, -0.3}
	_, grad, hess := dual.Hessian(bumpy[dual.HyperDual[float64, dual.N3]], x)
	requireSymmetric(t, hess)

	var want mat.SymDense
	fd.Hessian(&want, bumpyFloat, x, &fd.Settings{Formula: fd.Central, Step: 1e-3})
	for i := range hess {
		for j := range hess[i] {
			require.InDelta(t, want.At(i, j), hess[i][j], 1e-4, "hess[%d][%d]", i, j)
		}
	}

	// the gradient agrees with the first-order driver
	_, g1 := dual.Gradient(bumpy[dual.Dual[float64, dual.N3]], x)
	requireInDeltaSlice(t, g1, grad, 1e-15)
}

func TestDrivers_PointLengthMismatch_Panics(t *testing.T) {
	t.Parallel()

	requirePanicIs(t, dual.ErrDimensionMismatch, func() {
		dual.Gradient(bumpy[dual.Dual[float64, dual.N3]], []float64{1, 2})
	})
	requirePanicIs(t, dual.ErrDimensionMismatch, func() {
		dual.Hessian(bumpy[dual.HyperDual[float64, dual.N3]], []float64{1, 2, 3, 4})
	})
}
