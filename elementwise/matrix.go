// SPDX-License-Identifier: MIT

package elementwise

import (
	"gonum.org/v1/gonum/mat"
)

// FromMatrix copies a gonum matrix into a grid Value.
// A nil matrix (or nil *mat.Dense) is invalid.
// Complexity: O(r*c).
func FromMatrix(m mat.Matrix) Value {
	if m == nil {
		return Value{cause: elementwiseErrorf("FromMatrix: nil matrix", ErrInvalidInput)}
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return Value{cause: elementwiseErrorf("FromMatrix: nil *mat.Dense", ErrInvalidInput)}
	}

	r, c := m.Dims()
	g := &Grid{r: r, c: c, data: make([]float64, r*c)}

	// RawMatrix fast path: copy contiguous rows straight from the backing slice.
	if rm, ok := m.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		for i := 0; i < r; i++ {
			copy(g.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return Value{kind: KindGrid, grid: g}
	}

	// Generic fallback via At.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g.data[i*c+j] = m.At(i, j)
		}
	}

	return Value{kind: KindGrid, grid: g}
}

// Dense returns a grid Value as a new gonum *mat.Dense.
// It returns nil for non-grid kinds and for empty grids, which gonum
// cannot represent.
func (v Value) Dense() *mat.Dense {
	if v.kind != KindGrid || v.grid.r == 0 || v.grid.c == 0 {
		return nil
	}
	data := make([]float64, len(v.grid.data))
	copy(data, v.grid.data)

	return mat.NewDense(v.grid.r, v.grid.c, data)
}
