// SPDX-License-Identifier: MIT

package pareto

import (
	"math"

	"github.com/katalvlaran/lvstat/specfunc"
)

// MGF is the moment generating function of Pareto(shape, scale).
type MGF struct {
	shape, scale float64
}

// NewMGF binds an MGF evaluator to (shape, scale).
func NewMGF(shape, scale float64) MGF {
	return MGF{shape: shape, scale: scale}
}

// Evaluate returns E[e^(tX)].
//
//   - t == 0:  1
//   - t < 0:   a·(-b·t)^a·Γ(-a, -b·t), Γ the non-regularized upper
//     incomplete gamma function, evaluated as a·G(-a, -b·t) with
//     G(s, x) = x^(-s)·Γ(s, x) so large shapes stay finite
//   - t == -Inf: 0, the limit of the branch above
//   - t > 0 or NaN: NaN, the integral diverges
func (f MGF) Evaluate(t float64) float64 {
	switch {
	case t == 0:
		return 1
	case math.IsInf(t, -1):
		return 0
	case t < 0:
		return f.shape * specfunc.ScaledUpperIncompleteGamma(-f.shape, -f.scale*t)
	default:
		return math.NaN()
	}
}

// Shape returns the bound shape parameter.
func (f MGF) Shape() float64 { return f.shape }

// Scale returns the bound scale parameter.
func (f MGF) Scale() float64 { return f.scale }
