// SPDX-License-Identifier: MIT

// Package specfunc provides the special functions the distribution
// packages lean on: the incomplete gamma function in both tails, with or
// without regularization, and the exponential integral E1.
//
// ✨ Key features:
//   - any real shape s, including s <= 0 (needed by the Pareto MGF, which
//     evaluates Γ(-a, x))
//   - upper or lower tail, regularized or not, chosen with functional options
//   - gonum mathext for the positive-shape kernel; continued fraction and
//     downward recurrence for the rest
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvstat/specfunc"
//
//	g := specfunc.UpperIncompleteGamma(-1.5, 0.25)       // Γ(-1.5, 0.25)
//	q := specfunc.IncompleteGamma(2, 3, specfunc.WithRegularized(true))
//	p := specfunc.IncompleteGamma(2, 3,
//		specfunc.WithRegularized(true), specfunc.WithTail(specfunc.Lower))
//
// Domain policy:
//
//	Undefined evaluations return NaN, never an error: x < 0, NaN arguments,
//	and the lower tail at non-positive integer shapes.
package specfunc
