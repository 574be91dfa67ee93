// SPDX-License-Identifier: MIT
// Package: elementwise
//
// Purpose:
//   - Apply: the one public entry point that maps an Evaluator over a Value.
//   - Private ew* kernels hold the tight loops so each shape has exactly one.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for sequences, row-major for grids).
//   - One output allocation per call; O(n) time and space.

package elementwise

import "fmt"

// Evaluator is a pure unary function over reals.
// Implementations must be safe to call repeatedly with no side effects.
type Evaluator interface {
	Evaluate(x float64) float64
}

// Func adapts an ordinary function to the Evaluator interface.
type Func func(x float64) float64

// Evaluate calls f(x).
func (f Func) Evaluate(x float64) float64 {
	return f(x)
}

// Apply maps f over every element of in and returns a Value of the same
// kind and shape:
//   - scalar   → f(x)
//   - sequence → new sequence of the same length, order preserved
//   - grid     → new grid with identical rows×cols
//
// The input is never modified.
//
// Errors:
//   - ErrNilEvaluator if f is nil.
//   - ErrInvalidInput if in is KindInvalid (zero Value, ragged rows, ...).
//
// Complexity: O(n) time and space.
func Apply(f Evaluator, in Value) (Value, error) {
	if isNilEvaluator(f) {
		return Value{}, elementwiseErrorf("Apply", ErrNilEvaluator)
	}

	switch in.kind {
	case KindScalar:
		return Scalar(f.Evaluate(in.scalar)), nil
	case KindSequence:
		return Value{kind: KindSequence, seq: ewSequence(f, in.seq)}, nil
	case KindGrid:
		return Value{kind: KindGrid, grid: ewGrid(f, in.grid)}, nil
	default:
		return Value{}, elementwiseErrorf("Apply", in.Err())
	}
}

// ApplyAny classifies v and applies f in one step.
func ApplyAny(f Evaluator, v any) (Value, error) {
	in, err := Classify(v)
	if err != nil {
		return Value{}, fmt.Errorf("ApplyAny: %w", err)
	}

	return Apply(f, in)
}

// isNilEvaluator catches both a nil interface and a nil Func.
func isNilEvaluator(f Evaluator) bool {
	if f == nil {
		return true
	}
	fn, ok := f.(Func)

	return ok && fn == nil
}

// ewSequence computes out[i] = f(xs[i]).
// Time: O(n). Space: O(n).
func ewSequence(f Evaluator, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f.Evaluate(x)
	}

	return out
}

// ewGrid computes out[i,j] = f(g[i,j]) over the flat row-major buffer.
// Time: O(r*c). Space: O(r*c).
func ewGrid(f Evaluator, g *Grid) *Grid {
	out := &Grid{r: g.r, c: g.c, data: make([]float64, len(g.data))}
	for i := 0; i < g.r; i++ {
		base := i * g.c // cache the base offset for row i
		for j := 0; j < g.c; j++ {
			out.data[base+j] = f.Evaluate(g.data[base+j])
		}
	}

	return out
}
