// SPDX-License-Identifier: MIT
// Package pareto: sentinel error set.
// Construction and parameter errors are raised; numerically undefined
// results (quantile at p >= 1, MGF at t > 0, moments outside their shape
// range) are returned as NaN and are never errors.

package pareto

import (
	"errors"

	"github.com/katalvlaran/lvstat/elementwise"
)

var (
	// ErrInvalidConstruction is returned when the configuration handed to
	// NewFromMap is not a plain object (map or Config).
	ErrInvalidConstruction = errors.New("pareto: configuration must be a plain object")

	// ErrInvalidParameter is returned when shape or scale is set, at
	// construction or through a setter, to a value that is not a positive
	// finite number.
	ErrInvalidParameter = errors.New("pareto: parameter must be a positive finite number")

	// ErrInvalidInput is returned by the Apply* methods for input that is not
	// a scalar, a flat sequence, or a rectangular grid of numbers.
	// It is the same sentinel as elementwise.ErrInvalidInput.
	ErrInvalidInput = elementwise.ErrInvalidInput
)
