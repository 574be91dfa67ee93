// Package lvstat is a small statistics toolkit built around the Pareto
// distribution: closed-form density, CDF, quantile and moment generating
// functions, evaluated over scalars, sequences or rectangular grids.
//
// 🚀 What is lvstat?
//
//	A thread-safe library plus a command line tool that brings together:
//		• Pareto evaluators: PDF, CDF, quantile, MGF as immutable values
//		• A mutable, validated Distribution handle with closed-form moments
//		• Shape-preserving element-wise evaluation (scalar / sequence / grid)
//		• Incomplete gamma functions for any real shape, including s <= 0
//		• Seeded sampling through gonum's distuv
//
// ✨ Why choose lvstat?
//
//   - Predictable: invalid calls return sentinel errors, undefined
//     points return NaN
//   - Interoperable: grids convert to and from gonum mat.Dense
//   - Scriptable: cmd/lvstat reads YAML and prints YAML or tables
//
// Under the hood, everything is organized under three subpackages:
//
//	elementwise/: Value (scalar | sequence | grid), Grid, Classify, Apply
//	pareto/:      factories, Distribution, moments, config decoding, sampling
//	specfunc/:    upper/lower incomplete gamma, exponential integral E1
//
// Quick example:
//
//	d, _ := pareto.New(pareto.WithShape(2), pareto.WithScale(3))
//	d.CDF().Evaluate(6) // 0.75
//
//	go install github.com/katalvlaran/lvstat/cmd/lvstat@latest
//	lvstat eval cdf 3 6 12 --shape 2 --scale 3
package lvstat
