// SPDX-License-Identifier: MIT
// Package elementwise: sentinel error set.
// Every message is prefixed with "elementwise: ..." and callers match with
// errors.Is; context is added with fmt.Errorf("ctx: %w", ErrX).

package elementwise

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a value cannot be classified as a
	// scalar, a flat sequence, or a rectangular grid of numbers (ragged rows,
	// non-numeric elements, nil, or the zero Value).
	ErrInvalidInput = errors.New("elementwise: input is not a scalar, sequence or rectangular grid of numbers")

	// ErrNilEvaluator is returned when Apply receives no evaluator.
	ErrNilEvaluator = errors.New("elementwise: nil evaluator")

	// ErrBadShape is returned when requested grid dimensions are negative or
	// do not match the supplied backing data.
	ErrBadShape = errors.New("elementwise: invalid grid shape")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("elementwise: index out of range")
)

// elementwiseErrorf tags err with the failing operation.
func elementwiseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
