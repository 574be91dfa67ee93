// SPDX-License-Identifier: MIT

package elementwise

import (
	"fmt"
	"strings"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a rectangular table of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A grid with zero rows or zero columns is valid and holds no elements.
type Grid struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewGrid creates an r×c Grid initialized to zeros.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, gridErrorf("New", rows, cols, ErrBadShape)
	}

	return &Grid{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// GridFromRows copies a slice of rows into a new Grid.
// Every row must have the same length; ragged input yields ErrInvalidInput.
// An empty (or nil) outer slice produces a 0×0 grid.
// Complexity: O(r*c).
func GridFromRows(rows [][]float64) (*Grid, error) {
	r := len(rows)
	if r == 0 {
		return &Grid{}, nil
	}

	// Stage 1 (Validate): every row matches the first one.
	c := len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, elementwiseErrorf(fmt.Sprintf("GridFromRows: row %d has %d columns, want %d", i, len(rows[i]), c), ErrInvalidInput)
		}
	}

	// Stage 2 (Execute): copy row by row into the flat buffer.
	g := &Grid{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		copy(g.data[i*c:(i+1)*c], row)
	}

	return g, nil
}

// Rows returns the number of rows in the grid.
// Complexity: O(1).
func (g *Grid) Rows() int {
	return g.r
}

// Cols returns the number of columns in the grid.
// Complexity: O(1).
func (g *Grid) Cols() int {
	return g.c
}

// Len returns the number of elements (Rows*Cols).
func (g *Grid) Len() int {
	return len(g.data)
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (float64, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (g *Grid) Set(row, col int, v float64) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Clone returns a deep copy of the grid.
// Complexity: O(r*c) time and memory for copy.
func (g *Grid) Clone() *Grid {
	copyData := make([]float64, len(g.data))
	copy(copyData, g.data)

	return &Grid{r: g.r, c: g.c, data: copyData}
}

// ToRows returns the grid as freshly allocated rows.
// Complexity: O(r*c).
func (g *Grid) ToRows() [][]float64 {
	rows := make([][]float64, g.r)
	for i := 0; i < g.r; i++ {
		row := make([]float64, g.c)
		copy(row, g.data[i*g.c:(i+1)*g.c])
		rows[i] = row
	}

	return rows
}

// String implements fmt.Stringer for easy debugging, one row per line.
// Complexity: O(r*c).
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j := 0; j < g.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", g.data[i*g.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
