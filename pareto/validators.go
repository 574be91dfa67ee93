// SPDX-License-Identifier: MIT
// Package: pareto
//
// Purpose:
//   - One place for the parameter checks shared by New, the setters and
//     NewFromMap.
//   - Return plain sentinels wrapped with the parameter name so callers can
//     match with errors.Is.

package pareto

import (
	"fmt"
	"math"
)

// Parameter names used in error messages and configuration keys.
const (
	paramShape = "shape"
	paramScale = "scale"
)

// IsPositiveNumber reports whether v is a finite number strictly above zero.
// NaN, ±Inf, zero and negatives are rejected.
// Complexity: O(1).
func IsPositiveNumber(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// validateParameter returns ErrInvalidParameter tagged with name and value
// when v is not a positive finite number.
func validateParameter(name string, v float64) error {
	if !IsPositiveNumber(v) {
		return fmt.Errorf("%s = %v: %w", name, v, ErrInvalidParameter)
	}

	return nil
}
