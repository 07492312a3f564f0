package vec

import "fmt"

// Matrix is a fixed-shape row-major matrix of float32 values.
//
// Rows are contiguous, so Row returns a live view into the matrix rather
// than a copy. The shape is validated once at construction.
type Matrix struct {
	rows, cols int
	data       Vector
}

// NewMatrix returns a rows×cols matrix backed by a fresh zeroed allocation.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("vec: invalid matrix shape %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: Zeroed(rows * cols)}
}

// View wraps an existing backing slice as a rows×cols matrix without
// copying. The matrix shares the slice: callers use it to carve a weight
// block out of a larger contiguous parameter aggregate.
func View(rows, cols int, data Vector) *Matrix {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		panic(fmt.Sprintf("vec: backing of length %d cannot view as %dx%d", len(data), rows, cols))
	}
	// Clamp capacity so an out-of-range Row panics instead of silently
	// reading past the weight block of a shared backing slice.
	return &Matrix{rows: rows, cols: cols, data: data[:rows*cols:rows*cols]}
}

// FromRows builds a matrix from explicit row values, copying them.
// Every row must have the same length.
func FromRows(rows [][]float32) *Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("vec: FromRows requires at least one non-empty row")
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			panic(fmt.Sprintf("vec: row %d has length %d, want %d", i, len(row), m.cols))
		}
		copy(m.Row(i), row)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Row returns a live view of row i.
func (m *Matrix) Row(i int) Vector {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Data returns the row-major backing slice.
func (m *Matrix) Data() Vector { return m.data }

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: m.data.Clone()}
}

// AddAssign adds o to m element-wise in place.
func (m *Matrix) AddAssign(o *Matrix) {
	m.data.AddAssign(o.data)
}

// MulVec returns the matrix-vector product m·x, where x has Cols elements.
func (m *Matrix) MulVec(x Vector) Vector {
	out := Zeroed(m.rows)
	for i := range out {
		out[i] = m.Row(i).Dot(x)
	}
	return out
}

// TransposeMulVec returns the transpose product mᵀ·y, where y has Rows
// elements. The result is accumulated row by row so the access pattern
// stays sequential in memory.
func (m *Matrix) TransposeMulVec(y Vector) Vector {
	out := Zeroed(m.cols)
	for i := 0; i < m.rows; i++ {
		out.AddScaledAssign(y[i], m.Row(i))
	}
	return out
}
