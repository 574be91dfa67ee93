// SPDX-License-Identifier: MIT

package pareto

import (
	"fmt"
	"math"
)

// Interval is the closed-open range [Lower, Upper).
type Interval struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// Contains reports whether Lower <= x < Upper.
func (iv Interval) Contains(x float64) bool {
	return iv.Lower <= x && x < iv.Upper
}

// String renders the interval as "[lower, upper)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g)", iv.Lower, iv.Upper)
}

// Moments is a snapshot of every closed-form summary of one parameter pair.
// Undefined entries are NaN, divergent ones +Inf.
type Moments struct {
	Shape      float64  `yaml:"shape"`
	Scale      float64  `yaml:"scale"`
	Support    Interval `yaml:"support"`
	Mean       float64  `yaml:"mean"`
	Variance   float64  `yaml:"variance"`
	Median     float64  `yaml:"median"`
	Mode       float64  `yaml:"mode"`
	Skewness   float64  `yaml:"skewness"`
	ExKurtosis float64  `yaml:"ekurtosis"`
	Entropy    float64  `yaml:"entropy"`
}

// Summary computes all moments from a single parameter snapshot, so a
// concurrent setter cannot mix two parameter pairs into one report.
func (d *Distribution) Summary() Moments {
	a, b := d.params()

	return Moments{
		Shape:      a,
		Scale:      b,
		Support:    supportOf(b),
		Mean:       meanOf(a, b),
		Variance:   varianceOf(a, b),
		Median:     medianOf(a, b),
		Mode:       b,
		Skewness:   skewnessOf(a),
		ExKurtosis: exKurtosisOf(a),
		Entropy:    entropyOf(a, b),
	}
}

func supportOf(b float64) Interval {
	return Interval{Lower: b, Upper: math.Inf(1)}
}

func meanOf(a, b float64) float64 {
	if a <= 1 {
		return math.Inf(1)
	}

	return a * b / (a - 1)
}

func varianceOf(a, b float64) float64 {
	switch {
	case a > 2:
		r := b / (a - 1)
		return r * r * (a / (a - 2))
	case a > 0.5:
		return math.Inf(1)
	default:
		return math.NaN()
	}
}

func medianOf(a, b float64) float64 {
	return b * math.Pow(2, 1/a)
}

func skewnessOf(a float64) float64 {
	if a <= 3 {
		return math.NaN()
	}

	return (2 * (1 + a) / (a - 3)) * math.Sqrt((a-2)/a)
}

func exKurtosisOf(a float64) float64 {
	if a <= 4 {
		return math.NaN()
	}
	num := 6 * (a*a*a + a*a - 6*a - 2)
	den := a * (a - 3) * (a - 4)

	return num / den
}

func entropyOf(a, b float64) float64 {
	return math.Log(b/a) + 1/a + 1
}
