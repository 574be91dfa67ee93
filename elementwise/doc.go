// SPDX-License-Identifier: MIT

// Package elementwise maps a unary numeric function over a scalar, a flat
// sequence, or a rectangular grid and returns a result of the same shape.
//
// 🚀 What is it for?
//
//	Distribution packages hand out evaluators (PDF, CDF, quantile, ...).
//	Callers rarely have one number: they have a vector of observations or a
//	table of them. Apply lifts any Evaluator over all three shapes without
//	the evaluator knowing about shapes at all.
//
// ✨ Key features:
//   - Value: a tagged union {Scalar, Sequence, Grid} with exhaustive dispatch
//   - Grid: row-major, fixed rows×cols storage in one flat slice
//   - Classify: turns dynamically typed data (decoded YAML, []any, gonum
//     matrices) into a Value, or fails with ErrInvalidInput
//   - gonum interop: FromMatrix(mat.Matrix) and Value.Dense()
//
// ⚙️ Usage:
//
//	square := elementwise.Func(func(x float64) float64 { return x * x })
//
//	out, err := elementwise.Apply(square, elementwise.Sequence([]float64{1, 2, 3}))
//	// out.Slice() == []float64{1, 4, 9}
//
//	out, err = elementwise.Apply(square, elementwise.GridOf([][]float64{{1, 2}, {3, 4}}))
//	// out.Grid().ToRows() == [][]float64{{1, 4}, {9, 16}}
//
// Guarantees:
//   - The input is never mutated; every result is freshly allocated.
//   - Output kind mirrors input kind; lengths and dimensions are preserved.
//   - Deterministic: fixed i→j loop order, no goroutines, no hidden state.
//
// Complexity: O(n) time and space, n = number of elements.
package elementwise
