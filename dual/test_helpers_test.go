// SPDX-License-Identifier: MIT

package dual_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tin/dual"
)

// dim3 is a caller-declared dimension, exercising the Dim extension point.
type dim3 struct{}

func (dim3) Len() int { return 3 }

// badDim has a non-positive length.
type badDim struct{}

func (badDim) Len() int { return 0 }

// Elementary-function collaborators: each supplies f, f′, f″ at x.Value().

func sinX[X dual.Number[float64, X]](x X) X {
	v := x.Value()
	return x.ChainFull(math.Sin(v), math.Cos(v), -math.Sin(v))
}

func expX[X dual.Number[float64, X]](x X) X {
	e := math.Exp(x.Value())
	return x.ChainFull(e, e, e)
}

func logX[X dual.Number[float64, X]](x X) X {
	v := x.Value()
	return x.ChainFull(math.Log(v), 1/v, -1/(v*v))
}

func sqrtX[X dual.Number[float64, X]](x X) X {
	s := math.Sqrt(x.Value())
	return x.ChainFull(s, 0.5/s, -0.25/(s*s*s))
}

// requirePanicIs runs fn and asserts it panics with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

// randHyper builds a HyperDual[float64, N3] with random value, gradient and
// a random symmetric Hessian.
func randHyper(t *testing.T, rng *rand.Rand) dual.HyperDual[float64, dim3] {
	t.Helper()
	g := []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	h := make([][]float64, 3)
	for i := range h {
		h[i] = make([]float64, 3)
	}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			h[i][j] = rng.NormFloat64()
			h[j][i] = h[i][j]
		}
	}
	// keep values away from zero so quotients stay well conditioned
	v := 0.5 + 2*rng.Float64()
	if rng.Intn(2) == 0 {
		v = -v
	}
	x, err := dual.HyperFromParts[float64, dim3](v, g, h)
	require.NoError(t, err)

	return x
}

// randDual is randHyper without the Hessian.
func randDual(t *testing.T, rng *rand.Rand) dual.Dual[float64, dim3] {
	t.Helper()
	return randHyper(t, rng).Lower()
}

// requireSymmetric asserts h[i][j] == h[j][i] bit for bit.
func requireSymmetric(t *testing.T, h [][]float64) {
	t.Helper()
	for i := range h {
		for j := range h {
			require.Equal(t, math.Float64bits(h[i][j]), math.Float64bits(h[j][i]), "hess[%d][%d] != hess[%d][%d]", i, j, j, i)
		}
	}
}

// requireInDeltaSlice asserts element-wise closeness with a relative bound.
func requireInDeltaSlice(t *testing.T, want, got []float64, rel float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		tol := rel * math.Max(1, math.Abs(want[i]))
		require.InDelta(t, want[i], got[i], tol, "index %d", i)
	}
}
