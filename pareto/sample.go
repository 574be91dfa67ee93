// SPDX-License-Identifier: MIT

package pareto

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample draws n independent variates from the current parameters.
// A nil src uses the global math/rand/v2 source; pass a seeded source
// (rand.NewPCG) for reproducible draws. n <= 0 yields an empty slice.
//
// Complexity: O(n).
func (d *Distribution) Sample(n int, src rand.Source) []float64 {
	if n <= 0 {
		return []float64{}
	}
	a, b := d.params()
	dist := distuv.Pareto{Xm: b, Alpha: a, Src: src}

	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}
