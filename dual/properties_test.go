// SPDX-License-Identifier: MIT

package dual_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/tin/dual"
)

const samples = 64

// PropertySuite checks calculus identities on randomly sampled operands.
type PropertySuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *PropertySuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(1337))
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

func (s *PropertySuite) TestLinearity() {
	for k := 0; k < samples; k++ {
		a, b := randDual(s.T(), s.rng), randDual(s.T(), s.rng)
		ga, gb := a.Grad(), b.Grad()

		sum := a.Add(b).Grad()
		for i := range sum {
			s.Equal(ga[i]+gb[i], sum[i])
		}

		c := s.rng.NormFloat64()
		scaled := dual.NewConst[float64, dim3](c).Mul(a).Grad()
		for i := range scaled {
			s.InDelta(c*ga[i], scaled[i], 1e-15*math.Max(1, math.Abs(c*ga[i])))
		}
	}
}

func (s *PropertySuite) TestProductRule() {
	for k := 0; k < samples; k++ {
		a, b := randDual(s.T(), s.rng), randDual(s.T(), s.rng)
		p := a.Mul(b)
		s.Equal(a.Value()*b.Value(), p.Value())

		ga, gb, gp := a.Grad(), b.Grad(), p.Grad()
		want := make([]float64, len(gp))
		for i := range want {
			want[i] = ga[i]*b.Value() + gb[i]*a.Value()
		}
		requireInDeltaSlice(s.T(), want, gp, 1e-15)
	}
}

func (s *PropertySuite) TestQuotientRule() {
	for k := 0; k < samples; k++ {
		a, b := randDual(s.T(), s.rng), randDual(s.T(), s.rng)
		q := a.Div(b)
		av, bv := a.Value(), b.Value()
		s.Equal(av/bv, q.Value())

		ga, gb := a.Grad(), b.Grad()
		want := make([]float64, len(ga))
		for i := range want {
			want[i] = ga[i]/bv - av*gb[i]/(bv*bv)
		}
		requireInDeltaSlice(s.T(), want, q.Grad(), 1e-9)
	}
}

func (s *PropertySuite) TestIdentityLaws() {
	zero := dual.ZeroHyper[float64, dim3]()
	one := dual.OneHyper[float64, dim3]()
	for k := 0; k < samples; k++ {
		a := randHyper(s.T(), s.rng)

		sum := a.Add(zero)
		s.Equal(a.Value(), sum.Value())
		s.Equal(a.Grad(), sum.Grad())
		s.Equal(a.Hess(), sum.Hess())

		prod := a.Mul(one)
		s.Equal(a.Value(), prod.Value())
		s.Equal(a.Grad(), prod.Grad())
		s.Equal(a.Hess(), prod.Hess())
	}
}

func (s *PropertySuite) TestHessianSymmetry() {
	for k := 0; k < samples; k++ {
		a, b, c := randHyper(s.T(), s.rng), randHyper(s.T(), s.rng), randHyper(s.T(), s.rng)
		f := a.Mul(b).Div(c).Sub(b.Mul(b)).Add(a.Div(b.Neg()))
		f = sinX(f).Mul(expX(a.MulScalar(0.1))).Inv()
		f.MulAssign(c)
		f.DivAssign(a.Abs())
		requireSymmetric(s.T(), f.Hess())
	}
}

func (s *PropertySuite) TestChainMatchesFiniteDifferences() {
	type elem struct {
		name string
		d    func(dual.Dual[float64, dual.N1]) dual.Dual[float64, dual.N1]
		f    func(float64) float64
	}
	elems := []elem{
		{"sin", sinX[dual.Dual[float64, dual.N1]], math.Sin},
		{"exp", expX[dual.Dual[float64, dual.N1]], math.Exp},
		{"log", logX[dual.Dual[float64, dual.N1]], math.Log},
		{"sqrt", sqrtX[dual.Dual[float64, dual.N1]], math.Sqrt},
	}
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-4}

	for _, e := range elems {
		for k := 0; k < 8; k++ {
			x := 0.2 + 2*s.rng.Float64()
			// compose with a polynomial so the inner gradient is not trivial
			inner := func(v float64) float64 { return v*v + 0.5*v }
			v, slope := dual.Derivative(func(d dual.Dual[float64, dual.N1]) dual.Dual[float64, dual.N1] {
				return e.d(d.Mul(d).Add(d.MulScalar(0.5)))
			}, x)
			want := fd.Derivative(func(v float64) float64 { return e.f(inner(v)) }, x, settings)

			s.Equal(e.f(inner(x)), v, e.name)
			s.InDelta(want, slope, 1e-6*math.Max(1, math.Abs(want)), "%s at %v", e.name, x)
		}
	}
}

func (s *PropertySuite) TestEqualityIgnoresDerivatives() {
	for k := 0; k < samples; k++ {
		a := randHyper(s.T(), s.rng)
		b := dual.NewHyperConst[float64, dim3](a.Value())

		s.True(a.Equal(b))
		s.Equal(0, a.Cmp(b))
		s.False(a.Less(b))
		s.True(a.LessEq(b))
		s.True(a.GreaterEq(b))
		s.False(a.Greater(b))
	}
}
