// SPDX-License-Identifier: MIT

package elementwise_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/elementwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// double is a trivial evaluator used across tests.
var double = elementwise.Func(func(x float64) float64 { return 2 * x })

// TestApply_Scalar verifies scalar in, scalar out.
func TestApply_Scalar(t *testing.T) {
	out, err := elementwise.Apply(double, elementwise.Scalar(3.5))
	require.NoError(t, err)
	assert.Equal(t, elementwise.KindScalar, out.Kind())
	assert.Equal(t, 7.0, out.Float())
	assert.Equal(t, 1, out.Len())
}

// TestApply_SequencePreservesLengthAndOrder checks a length-5 sequence.
func TestApply_SequencePreservesLengthAndOrder(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}
	out, err := elementwise.Apply(double, elementwise.Sequence(in))
	require.NoError(t, err)
	assert.Equal(t, elementwise.KindSequence, out.Kind())
	assert.Equal(t, []float64{2, 4, 6, 8, 10}, out.Slice())
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, in, "input must not be mutated")
}

// TestApply_EmptySequence keeps an empty sequence empty.
func TestApply_EmptySequence(t *testing.T) {
	out, err := elementwise.Apply(double, elementwise.Sequence(nil))
	require.NoError(t, err)
	assert.Equal(t, elementwise.KindSequence, out.Kind())
	assert.Empty(t, out.Slice())
	assert.NotNil(t, out.Slice())
}

// TestApply_GridPreservesDims checks a 3×2 grid.
func TestApply_GridPreservesDims(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	out, err := elementwise.Apply(double, elementwise.GridOf(rows))
	require.NoError(t, err)
	require.Equal(t, elementwise.KindGrid, out.Kind())

	g := out.Grid()
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, [][]float64{{2, 4}, {6, 8}, {10, 12}}, g.ToRows())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, rows, "input must not be mutated")
}

// TestApply_GridDoesNotAliasInput makes sure FromGrid input stays intact.
func TestApply_GridDoesNotAliasInput(t *testing.T) {
	g, err := elementwise.GridFromRows([][]float64{{1, 1}})
	require.NoError(t, err)

	out, err := elementwise.Apply(double, elementwise.FromGrid(g))
	require.NoError(t, err)
	require.NoError(t, out.Grid().Set(0, 0, 100))

	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestApply_RaggedGrid rejects ragged rows with ErrInvalidInput.
func TestApply_RaggedGrid(t *testing.T) {
	in := elementwise.GridOf([][]float64{{1, 2}, {3}})
	assert.Equal(t, elementwise.KindInvalid, in.Kind())

	_, err := elementwise.Apply(double, in)
	assert.ErrorIs(t, err, elementwise.ErrInvalidInput)
}

// TestApply_ZeroValue rejects the zero Value.
func TestApply_ZeroValue(t *testing.T) {
	_, err := elementwise.Apply(double, elementwise.Value{})
	assert.ErrorIs(t, err, elementwise.ErrInvalidInput)
}

// TestApply_NilEvaluator rejects nil interfaces and nil Funcs.
func TestApply_NilEvaluator(t *testing.T) {
	_, err := elementwise.Apply(nil, elementwise.Scalar(1))
	assert.ErrorIs(t, err, elementwise.ErrNilEvaluator)

	var f elementwise.Func
	_, err = elementwise.Apply(f, elementwise.Scalar(1))
	assert.ErrorIs(t, err, elementwise.ErrNilEvaluator)
}

// TestApply_Deterministic runs the same input twice.
func TestApply_Deterministic(t *testing.T) {
	f := elementwise.Func(math.Sqrt)
	in := elementwise.Sequence([]float64{0, 1, 2, -1, math.Inf(1)})

	a, err := elementwise.Apply(f, in)
	require.NoError(t, err)
	b, err := elementwise.Apply(f, in)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	for i := range a.Slice() {
		x, y := a.Slice()[i], b.Slice()[i]
		if math.IsNaN(x) {
			assert.True(t, math.IsNaN(y), "index %d", i)
			continue
		}
		assert.Equal(t, x, y, "index %d", i)
	}
}

// TestApplyAny classifies and applies in one call.
func TestApplyAny(t *testing.T) {
	out, err := elementwise.ApplyAny(double, []any{1, 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, out.Slice())

	_, err = elementwise.ApplyAny(double, "nope")
	assert.ErrorIs(t, err, elementwise.ErrInvalidInput)
}

// TestValue_Interface returns plain Go payloads.
func TestValue_Interface(t *testing.T) {
	assert.Equal(t, 1.5, elementwise.Scalar(1.5).Interface())
	assert.Equal(t, []float64{1}, elementwise.Sequence([]float64{1}).Interface())
	assert.Equal(t, [][]float64{{1, 2}}, elementwise.GridOf([][]float64{{1, 2}}).Interface())
	assert.Nil(t, elementwise.Value{}.Interface())
}

// TestKind_String checks labels.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "scalar", elementwise.KindScalar.String())
	assert.Equal(t, "sequence", elementwise.KindSequence.String())
	assert.Equal(t, "grid", elementwise.KindGrid.String())
	assert.Equal(t, "invalid", elementwise.KindInvalid.String())
}
