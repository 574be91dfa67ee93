// SPDX-License-Identifier: MIT

package elementwise

import (
	"fmt"
)

// Kind tags the shape held by a Value.
type Kind uint8

const (
	// KindInvalid is the zero Kind: the Value could not be classified.
	KindInvalid Kind = iota

	// KindScalar holds a single number.
	KindScalar

	// KindSequence holds a flat ordered sequence of numbers.
	KindSequence

	// KindGrid holds a rectangular, row-major grid of numbers.
	KindGrid
)

// String returns a short lowercase label.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindGrid:
		return "grid"
	default:
		return "invalid"
	}
}

// Value is the tagged union consumed and produced by Apply.
//
// Exactly one payload is meaningful, selected by Kind. The zero Value is
// KindInvalid and Apply rejects it with ErrInvalidInput.
type Value struct {
	kind   Kind
	scalar float64
	seq    []float64
	grid   *Grid
	cause  error // why construction failed, when kind == KindInvalid
}

// Scalar wraps a single number.
func Scalar(x float64) Value {
	return Value{kind: KindScalar, scalar: x}
}

// Sequence wraps a flat sequence. The slice is referenced, not copied;
// Apply never writes to it. A nil slice is an empty sequence.
func Sequence(xs []float64) Value {
	if xs == nil {
		xs = []float64{}
	}

	return Value{kind: KindSequence, seq: xs}
}

// GridOf copies rows into a grid Value. Ragged rows produce a KindInvalid
// Value that Apply rejects with ErrInvalidInput.
func GridOf(rows [][]float64) Value {
	g, err := GridFromRows(rows)
	if err != nil {
		return Value{cause: err}
	}

	return Value{kind: KindGrid, grid: g}
}

// FromGrid wraps an existing Grid without copying. A nil grid is invalid.
func FromGrid(g *Grid) Value {
	if g == nil {
		return Value{cause: elementwiseErrorf("FromGrid: nil grid", ErrInvalidInput)}
	}

	return Value{kind: KindGrid, grid: g}
}

// Kind reports which payload the Value carries.
func (v Value) Kind() Kind {
	return v.kind
}

// Err returns the classification failure for a KindInvalid Value, or nil.
func (v Value) Err() error {
	if v.kind != KindInvalid {
		return nil
	}
	if v.cause != nil {
		return v.cause
	}

	return ErrInvalidInput
}

// Float returns the scalar payload (0 for other kinds).
func (v Value) Float() float64 {
	return v.scalar
}

// Slice returns the sequence payload (nil for other kinds).
func (v Value) Slice() []float64 {
	return v.seq
}

// Grid returns the grid payload (nil for other kinds).
func (v Value) Grid() *Grid {
	return v.grid
}

// Len returns 1 for a scalar, the number of elements for a sequence or
// grid, and 0 for an invalid Value.
func (v Value) Len() int {
	switch v.kind {
	case KindScalar:
		return 1
	case KindSequence:
		return len(v.seq)
	case KindGrid:
		return v.grid.Len()
	default:
		return 0
	}
}

// Interface returns the payload in plain Go form: float64, []float64, or
// [][]float64. An invalid Value yields nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindSequence:
		return v.seq
	case KindGrid:
		return v.grid.ToRows()
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return fmt.Sprintf("%g", v.scalar)
	case KindSequence:
		return fmt.Sprintf("%v", v.seq)
	case KindGrid:
		return v.grid.String()
	default:
		return "<invalid>"
	}
}
