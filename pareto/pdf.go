// SPDX-License-Identifier: MIT

package pareto

import "math"

// PDF is the probability density function of Pareto(shape, scale), bound to
// one parameter snapshot. The zero value is not meaningful; use NewPDF.
type PDF struct {
	shape, scale float64
}

// NewPDF binds a density evaluator to (shape, scale). Parameters are not
// validated here; Distribution does that before calling.
func NewPDF(shape, scale float64) PDF {
	return PDF{shape: shape, scale: scale}
}

// Evaluate returns a·b^a / x^(a+1) for x >= b and 0 below the scale.
// The boundary x == b belongs to the non-zero branch.
func (f PDF) Evaluate(x float64) float64 {
	if x >= f.scale {
		return f.shape * math.Pow(f.scale, f.shape) / math.Pow(x, f.shape+1)
	}

	return 0
}

// Shape returns the bound shape parameter.
func (f PDF) Shape() float64 { return f.shape }

// Scale returns the bound scale parameter.
func (f PDF) Scale() float64 { return f.scale }
