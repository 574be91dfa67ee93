// SPDX-License-Identifier: MIT

package pareto

import "math"

// Quantile is the inverse CDF of Pareto(shape, scale).
type Quantile struct {
	shape, scale float64
}

// NewQuantile binds a quantile evaluator to (shape, scale).
func NewQuantile(shape, scale float64) Quantile {
	return Quantile{shape: shape, scale: scale}
}

// Evaluate returns b / (1-p)^(1/a) for 0 <= p < 1.
//
// Any other p, including p == 1 and NaN, yields NaN: the support is
// unbounded, so the inverse at 1 would be +Inf and is reported as
// undefined instead.
func (f Quantile) Evaluate(p float64) float64 {
	if 0 <= p && p < 1 {
		return f.scale / math.Pow(1-p, 1/f.shape)
	}

	return math.NaN()
}

// Shape returns the bound shape parameter.
func (f Quantile) Shape() float64 { return f.shape }

// Scale returns the bound scale parameter.
func (f Quantile) Scale() float64 { return f.scale }
