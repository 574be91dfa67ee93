// SPDX-License-Identifier: MIT

package elementwise

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Classify turns a dynamically typed value into a Value.
//
// Accepted shapes:
//   - scalar:   any Go integer or float type
//   - sequence: []float64, []float32, []int, []int64, or []any of numbers
//   - grid:     [][]float64, []any of equally long numeric lists, *Grid,
//     or any gonum mat.Matrix
//
// A Value passes through unchanged. Everything else (nil, bool, string,
// maps, ragged or mixed lists) fails with ErrInvalidInput. An empty list is
// an empty sequence.
//
// Complexity: O(n) over the elements inspected.
func Classify(v any) (Value, error) {
	if x, ok := toFloat(v); ok {
		return Scalar(x), nil
	}

	switch t := v.(type) {
	case Value:
		if err := t.Err(); err != nil {
			return Value{}, elementwiseErrorf("Classify", err)
		}
		return t, nil
	case []float64:
		return Sequence(t), nil
	case []float32:
		return Sequence(widen(t)), nil
	case []int:
		return Sequence(widen(t)), nil
	case []int64:
		return Sequence(widen(t)), nil
	case [][]float64:
		out := GridOf(t)
		if err := out.Err(); err != nil {
			return Value{}, elementwiseErrorf("Classify", err)
		}
		return out, nil
	case *Grid:
		out := FromGrid(t)
		if err := out.Err(); err != nil {
			return Value{}, elementwiseErrorf("Classify", err)
		}
		return out, nil
	case []any:
		return classifyList(t)
	case mat.Matrix:
		out := FromMatrix(t)
		if err := out.Err(); err != nil {
			return Value{}, elementwiseErrorf("Classify", err)
		}
		return out, nil
	}

	return Value{}, elementwiseErrorf(fmt.Sprintf("Classify(%T)", v), ErrInvalidInput)
}

// classifyList decides between a sequence (all elements numeric) and a grid
// (all elements numeric lists of one length).
func classifyList(list []any) (Value, error) {
	if len(list) == 0 {
		return Sequence(nil), nil
	}

	// Sequence: every element is a number.
	if _, isNum := toFloat(list[0]); isNum {
		seq := make([]float64, len(list))
		for i, e := range list {
			x, ok := toFloat(e)
			if !ok {
				return Value{}, elementwiseErrorf(fmt.Sprintf("Classify: element %d is %T", i, e), ErrInvalidInput)
			}
			seq[i] = x
		}
		return Sequence(seq), nil
	}

	// Grid: every element is a numeric row.
	rows := make([][]float64, len(list))
	for i, e := range list {
		row, ok := toRow(e)
		if !ok {
			return Value{}, elementwiseErrorf(fmt.Sprintf("Classify: row %d is %T", i, e), ErrInvalidInput)
		}
		rows[i] = row
	}
	out := GridOf(rows)
	if err := out.Err(); err != nil {
		return Value{}, elementwiseErrorf("Classify", err)
	}

	return out, nil
}

// toRow converts one grid row. Nested lists deeper than two levels fail.
func toRow(v any) ([]float64, bool) {
	switch t := v.(type) {
	case []float64:
		return t, true
	case []float32:
		return widen(t), true
	case []int:
		return widen(t), true
	case []int64:
		return widen(t), true
	case []any:
		row := make([]float64, len(t))
		for j, e := range t {
			x, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			row[j] = x
		}
		return row, true
	}

	return nil, false
}

// number lists the element types widen accepts.
type number interface {
	~int | ~int64 | ~float32 | ~float64
}

// widen copies a numeric slice into []float64.
func widen[T number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

// toFloat reports whether v is a Go number and returns it as float64.
// bool is deliberately not a number.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}

	return 0, false
}
