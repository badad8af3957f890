// Package matrix provides the numeric primitives backing shortest-path
// trees and salience matrices. Dense is a row-major float64 matrix,
// storing elements in a flat slice for cache friendliness.
//
// Unlike a general linear-algebra library, zero-dimension matrices are
// legal here: the salience of an empty graph is a 0×0 matrix.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrShapeMismatch indicates an element-wise operation between matrices of different shapes.
var ErrShapeMismatch = errors.New("matrix: shape mismatch")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Zero dimensions are allowed (an empty matrix); negative dimensions
// return ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add accumulates other into m element-wise (m += other).
// Returns ErrShapeMismatch if the shapes differ.
// Complexity: O(r*c).
func (m *Dense) Add(other *Dense) error {
	if other == nil || m.r != other.r || m.c != other.c {
		return ErrShapeMismatch
	}
	for i := range m.data {
		m.data[i] += other.data[i]
	}

	return nil
}

// Scale multiplies every element of m by factor in place.
// Complexity: O(r*c).
func (m *Dense) Scale(factor float64) {
	for i := range m.data {
		m.data[i] *= factor
	}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Symmetric reports whether m equals its transpose.
// A non-square matrix is never symmetric.
// Complexity: O(r*c).
func (m *Dense) Symmetric() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != m.data[j*m.c+i] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
