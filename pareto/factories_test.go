// SPDX-License-Identifier: MIT

package pareto_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/pareto"
	"github.com/katalvlaran/lvstat/specfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestPDF_Boundaries checks zero density below the scale and the peak a/b at x = b.
func TestPDF_Boundaries(t *testing.T) {
	for _, p := range paramGrid {
		pdf := pareto.NewPDF(p.a, p.b)
		assert.Equal(t, 0.0, pdf.Evaluate(p.b/2), "a=%v b=%v", p.a, p.b)
		assert.Equal(t, 0.0, pdf.Evaluate(math.Inf(-1)))
		assert.InEpsilon(t, p.a/p.b, pdf.Evaluate(p.b), tight, "a=%v b=%v", p.a, p.b)
		assert.Equal(t, 0.0, pdf.Evaluate(math.Inf(1)))
	}
}

// TestCDF_Boundaries checks 0 on and below the scale, monotonicity and the limit 1.
func TestCDF_Boundaries(t *testing.T) {
	for _, p := range paramGrid {
		cdf := pareto.NewCDF(p.a, p.b)
		assert.Equal(t, 0.0, cdf.Evaluate(p.b))
		assert.Equal(t, 0.0, cdf.Evaluate(p.b*0.999))
		assert.Equal(t, 1.0, cdf.Evaluate(math.Inf(1)))

		prev := 0.0
		for x := p.b; x < p.b*1e3; x *= 1.7 {
			v := cdf.Evaluate(x)
			require.GreaterOrEqual(t, v, prev, "cdf must be non-decreasing at x=%v", x)
			require.LessOrEqual(t, v, 1.0)
			prev = v
		}
	}
}

// TestNaNPolicy pins the NaN handling of every evaluator.
func TestNaNPolicy(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 0.0, pareto.NewPDF(2, 3).Evaluate(nan))
	assert.Equal(t, 0.0, pareto.NewCDF(2, 3).Evaluate(nan))
	requireNaN(t, pareto.NewQuantile(2, 3).Evaluate(nan))
	requireNaN(t, pareto.NewMGF(2, 3).Evaluate(nan))
}

// TestQuantile_Domain checks the [0, 1) domain.
func TestQuantile_Domain(t *testing.T) {
	q := pareto.NewQuantile(2, 3)
	assert.Equal(t, 3.0, q.Evaluate(0))
	for _, p := range []float64{-0.1, 1, 1.5, math.Inf(1), math.Inf(-1)} {
		requireNaN(t, q.Evaluate(p), "p=%v", p)
	}
}

// TestQuantile_RoundTrip checks cdf(quantile(p)) == p.
func TestQuantile_RoundTrip(t *testing.T) {
	for _, p := range paramGrid {
		cdf, q := pareto.NewCDF(p.a, p.b), pareto.NewQuantile(p.a, p.b)
		for _, prob := range []float64{0, 0.01, 0.25, 0.5, 0.75, 0.9, 0.999} {
			assert.InDelta(t, prob, cdf.Evaluate(q.Evaluate(prob)), loose, "a=%v b=%v p=%v", p.a, p.b, prob)
		}
	}
}

// TestScenario_TwoThree walks through Pareto(2, 3) by hand.
func TestScenario_TwoThree(t *testing.T) {
	d := mustNew(t, 2, 3)

	assert.InDelta(t, 2.0/3.0, d.PDF().Evaluate(3), tight)
	assert.Equal(t, 0.0, d.PDF().Evaluate(2.9))
	assert.InDelta(t, 0.75, d.CDF().Evaluate(6), tight)
	assert.InDelta(t, 6.0, d.Quantile().Evaluate(0.75), loose)
	assert.InDelta(t, 6.0, d.Mean(), tight)
	assert.Equal(t, math.Inf(1), d.Variance())
	assert.InDelta(t, 3*math.Sqrt2, d.Median(), tight)
	assert.Equal(t, 3.0, d.Mode())
	requireNaN(t, d.Skewness())
	requireNaN(t, d.ExKurtosis())
	assert.InDelta(t, math.Log(1.5)+1.5, d.Entropy(), tight)
}

// TestScenario_OneOne covers the heavy-tailed corner where every moment diverges.
func TestScenario_OneOne(t *testing.T) {
	d := mustNew(t, 1, 1)

	assert.Equal(t, math.Inf(1), d.Mean())
	assert.Equal(t, math.Inf(1), d.Variance())
	assert.Equal(t, 2.0, d.Median())
	requireNaN(t, d.Skewness())
	assert.InDelta(t, 2.0, d.Entropy(), tight)
	assert.InDelta(t, 0.5, d.CDF().Evaluate(2), tight)
	assert.InDelta(t, 2.0, d.Quantile().Evaluate(0.5), tight)
}

// TestMoments_Thresholds checks the regime changes at a = 0.5, 2, 3, 4.
func TestMoments_Thresholds(t *testing.T) {
	requireNaN(t, mustNew(t, 0.5, 1).Variance())
	assert.Equal(t, math.Inf(1), mustNew(t, 0.51, 1).Variance())
	assert.Equal(t, math.Inf(1), mustNew(t, 2, 1).Variance())
	assert.InEpsilon(t, 3.0/4.0, mustNew(t, 3, 1).Variance(), tight)

	requireNaN(t, mustNew(t, 3, 1).Skewness())
	assert.InEpsilon(t, 2*5*math.Sqrt(0.5), mustNew(t, 4, 1).Skewness(), tight)

	requireNaN(t, mustNew(t, 4, 1).ExKurtosis())
	// a = 5: 6(125+25-30-2)/(5·2·1) = 70.8
	assert.InEpsilon(t, 70.8, mustNew(t, 5, 1).ExKurtosis(), tight)
}

// TestMGF_Domain covers t == 0, t > 0 and t == -Inf.
func TestMGF_Domain(t *testing.T) {
	for _, p := range paramGrid {
		m := pareto.NewMGF(p.a, p.b)
		assert.Equal(t, 1.0, m.Evaluate(0))
		requireNaN(t, m.Evaluate(0.1))
		requireNaN(t, m.Evaluate(math.Inf(1)))
		assert.Equal(t, 0.0, m.Evaluate(math.Inf(-1)))
	}
}

// TestMGF_ClosedForms compares against shapes where Γ(-a, x) is elementary.
func TestMGF_ClosedForms(t *testing.T) {
	// a = 1, b = 1: M(-x) = x·Γ(-1, x) = e^-x - x·E1(x).
	m1 := pareto.NewMGF(1, 1)
	assert.InDelta(t, 0.14849550677592206, m1.Evaluate(-1), loose)
	for _, x := range []float64{0.2, 0.5, 2, 5} {
		want := math.Exp(-x) - x*specfunc.ExpIntE1(x)
		assert.InDelta(t, want, m1.Evaluate(-x), loose, "x=%v", x)
	}

	// a = 1/2, b = 1: M(-x) = e^-x - √(πx)·erfc(√x).
	mh := pareto.NewMGF(0.5, 1)
	for _, x := range []float64{0.5, 1, 3} {
		want := math.Exp(-x) - math.Sqrt(math.Pi*x)*math.Erfc(math.Sqrt(x))
		assert.InDelta(t, want, mh.Evaluate(-x), loose, "x=%v", x)
	}
}

// TestMGF_NegativeAxis checks 0 < M(t) < 1 and monotonic growth toward t = 0.
func TestMGF_NegativeAxis(t *testing.T) {
	for _, p := range paramGrid {
		m := pareto.NewMGF(p.a, p.b)
		prev := 0.0
		for _, tt := range []float64{-50, -10, -3, -1, -0.3, -0.05} {
			v := m.Evaluate(tt / p.b)
			require.Greater(t, v, 0.0, "a=%v b=%v t=%v", p.a, p.b, tt)
			require.Less(t, v, 1.0, "a=%v b=%v t=%v", p.a, p.b, tt)
			require.GreaterOrEqual(t, v, prev, "a=%v b=%v t=%v", p.a, p.b, tt)
			prev = v
		}
	}
}

// TestMGF_LargeShape keeps t < 0 finite for shapes where (-b·t)^a and
// Γ(-a, -b·t) leave the float64 range.
func TestMGF_LargeShape(t *testing.T) {
	// Values from numerical integration of E[e^(tX)].
	near := []struct{ a, b, t, want float64 }{
		{40, 0.01, -1e-6, 0.99999998974},
		{120, 1, -1e-3, 0.99899210494},
	}
	for _, c := range near {
		got := pareto.NewMGF(c.a, c.b).Evaluate(c.t)
		assert.InDelta(t, c.want, got, 1e-9, "a=%v b=%v t=%v", c.a, c.b, c.t)
	}

	// Second-order expansion M(t) ≈ 1 + t·E[X] + t²·E[X²]/2 for small |t|.
	for _, a := range []float64{40, 120, 250.5} {
		d := mustNew(t, a, 1)
		tt := -1e-4
		ex2 := a / (a - 2)
		want := 1 + tt*d.Mean() + tt*tt*ex2/2
		assert.InDelta(t, want, d.MGF().Evaluate(tt), 1e-11, "a=%v", a)
	}

	// Far tail: tends to 0, never NaN.
	assert.Equal(t, 0.0, pareto.NewMGF(60, 1).Evaluate(-1e6))
	assert.Equal(t, 0.0, pareto.NewMGF(40, 0.01).Evaluate(-1e9))

	for _, a := range []float64{40, 120, 250.5} {
		m := pareto.NewMGF(a, 1)
		prev := 0.0
		for _, tt := range []float64{-1e4, -300, -50, -2, -1, -0.999, -0.5, -1e-2, -1e-6} {
			v := m.Evaluate(tt)
			require.False(t, math.IsNaN(v), "a=%v t=%v", a, tt)
			require.GreaterOrEqual(t, v, prev, "a=%v t=%v", a, tt)
			require.LessOrEqual(t, v, 1.0, "a=%v t=%v", a, tt)
			prev = v
		}
	}
}

// TestAgainstGonum cross-checks the factories and moments with distuv.Pareto.
func TestAgainstGonum(t *testing.T) {
	for _, p := range paramGrid {
		ref := distuv.Pareto{Xm: p.b, Alpha: p.a}
		d := mustNew(t, p.a, p.b)

		for _, k := range []float64{1, 1.01, 1.5, 2, 10, 123.4} {
			x := k * p.b
			assert.InEpsilon(t, ref.Prob(x), d.PDF().Evaluate(x), loose, "pdf a=%v b=%v x=%v", p.a, p.b, x)
			assert.InDelta(t, ref.CDF(x), d.CDF().Evaluate(x), loose, "cdf a=%v b=%v x=%v", p.a, p.b, x)
		}
		for _, prob := range []float64{0.05, 0.5, 0.95} {
			assert.InEpsilon(t, ref.Quantile(prob), d.Quantile().Evaluate(prob), loose)
		}

		assert.Equal(t, math.IsInf(ref.Mean(), 1), math.IsInf(d.Mean(), 1))
		if p.a > 1 {
			assert.InEpsilon(t, ref.Mean(), d.Mean(), loose)
		}
		if p.a > 2 {
			assert.InEpsilon(t, ref.Variance(), d.Variance(), loose)
		}
		assert.InEpsilon(t, ref.Median(), d.Median(), loose)
		assert.InDelta(t, ref.Entropy(), d.Entropy(), loose)
	}
}

// TestFactories_Accessors checks the bound parameters are reported back.
func TestFactories_Accessors(t *testing.T) {
	pdf, cdf := pareto.NewPDF(2, 3), pareto.NewCDF(2, 3)
	q, m := pareto.NewQuantile(2, 3), pareto.NewMGF(2, 3)

	for _, got := range [][2]float64{
		{pdf.Shape(), pdf.Scale()},
		{cdf.Shape(), cdf.Scale()},
		{q.Shape(), q.Scale()},
		{m.Shape(), m.Scale()},
	} {
		assert.Equal(t, [2]float64{2, 3}, got)
	}
}
