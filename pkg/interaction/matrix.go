// Package interaction maps ordered pairs of particle types to coupling coefficients.
//
// The coefficient matrix K is not symmetric in general: K[a][b] != K[b][a] is what
// makes the interaction non-reciprocal. A Matrix is immutable once built; the Manager
// swaps whole matrices and never edits coefficients in place.
package interaction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable square matrix of coupling coefficients, indexed by
// (type of the reference particle, type of the neighbour).
type Matrix struct {
	k *mat.Dense
}

// NewMatrix builds a Matrix from its rows. The input is copied.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("K[%d][%d] = %v: %w", i, j, v, ErrNonFinite)
			}
		}
		data = append(data, row...)
	}
	return &Matrix{k: mat.NewDense(n, n, data)}, nil
}

// Size returns the number of types the matrix covers.
func (m *Matrix) Size() int {
	r, _ := m.k.Dims()
	return r
}

// At returns K[a][b]. It panics on out of range types, like mat.Dense does.
func (m *Matrix) At(a, b int) float64 {
	return m.k.At(a, b)
}

// Rows returns a copy of the coefficients, row by row.
func (m *Matrix) Rows() [][]float64 {
	n := m.Size()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m.k)
	}
	return rows
}

// Equal reports whether both matrices hold exactly the same coefficients.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	return m.Size() == other.Size() && mat.Equal(m.k, other.k)
}

// String renders the matrix for diagnostics.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.k, mat.Squeeze()))
}
