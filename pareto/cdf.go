// SPDX-License-Identifier: MIT

package pareto

import "math"

// CDF is the cumulative distribution function of Pareto(shape, scale).
type CDF struct {
	shape, scale float64
}

// NewCDF binds a CDF evaluator to (shape, scale).
func NewCDF(shape, scale float64) CDF {
	return CDF{shape: shape, scale: scale}
}

// Evaluate returns 1 - (b/x)^a for x >= b and 0 below the scale.
// At x == b the result is exactly 0.
func (f CDF) Evaluate(x float64) float64 {
	if x >= f.scale {
		return 1 - math.Pow(f.scale/x, f.shape)
	}

	return 0
}

// Shape returns the bound shape parameter.
func (f CDF) Shape() float64 { return f.shape }

// Scale returns the bound scale parameter.
func (f CDF) Scale() float64 { return f.scale }
