// Package pareto implements the Pareto(shape a, scale b) distribution:
// density, CDF, quantile and moment generating function as reusable
// evaluators, plus closed-form moments on a small mutable handle.
//
// 🚀 What is the Pareto distribution?
//
//	A power-law tail anchored at the scale b: P(X > x) = (b/x)^a for x >= b.
//	It models incomes, file sizes, request latencies, city populations:
//	anything where a few observations dominate the total.
//
// ✨ Key features:
//   - Factories NewPDF / NewCDF / NewQuantile / NewMGF return immutable value
//     evaluators bound to one (a, b) snapshot
//   - Distribution: validated, lock-guarded (shape, scale) with chained setters
//   - Apply* methods evaluate over a scalar, a sequence or a grid and keep
//     the input shape (see package elementwise)
//   - Moments: mean, variance, median, mode, skewness, excess kurtosis,
//     entropy, support, or all of them at once with Summary
//   - Sampling through gonum's distuv.Pareto
//
// ⚙️ Usage:
//
//	d, err := pareto.New(pareto.WithShape(2), pareto.WithScale(3))
//	if err != nil {
//	  // errors.Is(err, pareto.ErrInvalidParameter)
//	}
//
//	d.PDF().Evaluate(3)                                     // 0.6667
//	out, _ := d.ApplyCDF(elementwise.Sequence([]float64{3, 6})) // [0 0.75]
//	d.Mean()                                                // 6
//
// Undefined vs invalid:
//
//	Invalid calls (bad parameters, unclassifiable input) return errors.
//	Mathematically undefined points return NaN: quantile outside [0, 1),
//	MGF at t > 0, variance for a <= 0.5, skewness for a <= 3, excess
//	kurtosis for a <= 4.
package pareto
