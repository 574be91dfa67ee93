// SPDX-License-Identifier: MIT
// Package pareto_test contains shared fixtures.
//
// Purpose:
//   - Name the parameter pairs used across tests (avoid magic numbers).
//   - Provide small NaN-aware assertions on top of testify.

package pareto_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/pareto"
	"github.com/stretchr/testify/require"
)

// Parameter pairs exercised by property tests.
var paramGrid = []struct{ a, b float64 }{
	{0.3, 0.5},
	{0.5, 1},
	{1, 1},
	{1.5, 2},
	{2, 3},
	{3.7, 0.25},
	{5, 10},
	{12.5, 1e-3},
}

// Tolerances.
const (
	tight = 1e-12
	loose = 1e-9
)

// mustNew builds a Distribution or fails the test.
func mustNew(t *testing.T, a, b float64) *pareto.Distribution {
	t.Helper()
	d, err := pareto.New(pareto.WithShape(a), pareto.WithScale(b))
	require.NoError(t, err)

	return d
}

// requireNaN fails unless v is NaN.
func requireNaN(t *testing.T, v float64, msgAndArgs ...any) {
	t.Helper()
	require.True(t, math.IsNaN(v), append([]any{"want NaN, got %v", v}, msgAndArgs...)...)
}
