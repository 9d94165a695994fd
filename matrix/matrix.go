// SPDX-License-Identifier: MIT

// Package matrix - generic row-major storage & safe accessors.
//
// Purpose:
//   - Hold columns*rows cells of T in one flat slice with the index formula row*columns + column.
//   - Guarantee safety at the public surface: Get/Set return errors instead of panicking.
//   - Preserve value semantics: every read hands out a copy, never a view into data.
//
// Complexity quicksheet:
//   - New: O(c*r) zero-init; Get/Set: O(1); Data/Clone/SetData: O(c*r).

package matrix

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a fixed-shape 2D container over a flat row-major buffer.
//   - columns, rows hold the shape (>= 0).
//   - data has length columns*rows at all times (offset = row*columns + column).
type Matrix[T any] struct {
	columns int // width
	rows    int // height
	data    []T // contiguous row-major storage (len == columns*rows)
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a columns×rows matrix with every cell set to the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor; zero-sized shapes (0×N, N×0, 0×0) are legal.
//
// Implementation:
//   - Stage 1: reject negative dimensions with ErrBadShape.
//   - Stage 2: reject shapes whose cell count (or byte size) overflows int.
//   - Stage 3: allocate a zero-filled buffer of columns*rows cells.
//
// Returns:
//   - *Matrix[T] or ErrBadShape.
//
// Complexity:
//   - Time O(c*r), Space O(c*r).
func New[T any](columns, rows int) (*Matrix[T], error) {
	if columns < 0 || rows < 0 {
		return nil, fmt.Errorf("matrix.New(%d,%d): %w", columns, rows, ErrBadShape)
	}
	// len(data) == columns*rows must hold exactly, so the product may not wrap.
	if columns != 0 && rows > math.MaxInt/columns {
		return nil, fmt.Errorf("matrix.New(%d,%d): cell count overflows: %w", columns, rows, ErrBadShape)
	}
	var zero T
	if size := int(unsafe.Sizeof(zero)); size > 0 && columns*rows > math.MaxInt/size {
		return nil, fmt.Errorf("matrix.New(%d,%d): too large to allocate: %w", columns, rows, ErrBadShape)
	}

	return &Matrix[T]{
		columns: columns,
		rows:    rows,
		data:    make([]T, columns*rows), // make() zero-fills deterministically
	}, nil
}

// Columns returns the column count. Complexity: O(1).
func (m *Matrix[T]) Columns() int { return m.columns }

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Shape packs Columns() and Rows() into a single call.
func (m *Matrix[T]) Shape() (columns, rows int) { return m.columns, m.rows }

// pos computes the row-major offset of (column, row) or returns ErrWrongPosition.
// MAIN DESCRIPTION:
//   - The single place where the layout rule lives. Every method that takes a
//     position (Get, Set, Transpose, Slice, AddRow, AddColumn, Row, Column)
//     goes through pos, so bounds semantics cannot drift between them.
//
// Implementation:
//   - Stage 1: validate 0 <= column < columns and 0 <= row < rows.
//   - Stage 2: return row*columns + column.
//
// Returns:
//   - (offset, nil) on success; (0, ErrWrongPosition) otherwise. The sentinel
//     is returned bare; callers wrap it with their own method context.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) pos(column, row int) (int, error) {
	if column < 0 || column >= m.columns {
		return 0, ErrWrongPosition
	}
	if row < 0 || row >= m.rows {
		return 0, ErrWrongPosition
	}

	return row*m.columns + column, nil
}

// at loads the cell at (column, row) through pos. The ErrNotFound branch only
// fires if data has drifted from columns*rows.
func (m *Matrix[T]) at(column, row int) (T, error) {
	var zero T
	off, err := m.pos(column, row)
	if err != nil {
		return zero, err
	}
	if off >= len(m.data) {
		return zero, ErrNotFound
	}

	return m.data[off], nil
}

// Get returns a copy of the cell at (column, row).
//
// Errors:
//   - ErrWrongPosition when column >= Columns() or row >= Rows() (or negative).
//   - ErrNotFound on a broken storage invariant.
func (m *Matrix[T]) Get(column, row int) (T, error) {
	v, err := m.at(column, row)
	if err != nil {
		return v, matrixErrorf(ctxGet, column, row, err)
	}

	return v, nil
}

// Set overwrites the cell at (column, row) with v. Same bounds rule as Get;
// nothing else is touched.
func (m *Matrix[T]) Set(column, row int, v T) error {
	off, err := m.pos(column, row)
	if err != nil {
		return matrixErrorf(ctxSet, column, row, err)
	}
	m.data[off] = v

	return nil
}

// Data returns a copy of the backing store in row-major order.
// Mutating the result never affects the matrix.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// SetData replaces the whole backing store with a copy of values.
//
// Errors:
//   - ErrWrongSize when len(values) != Columns()*Rows(); the matrix is left
//     unchanged.
//
// Complexity:
//   - Time O(c*r), Space O(c*r).
func (m *Matrix[T]) SetData(values []T) error {
	if len(values) != m.columns*m.rows {
		return matrixErrorf(ctxSetData, len(values), m.columns*m.rows, ErrWrongSize)
	}
	buf := make([]T, len(values))
	copy(buf, values)
	m.data = buf // swap only after the copy is complete

	return nil
}

// Clone returns a deep copy with identical shape and data.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		columns: m.columns,
		rows:    m.rows,
		data:    m.Data(),
	}
}

// Row returns a copy of the given row (Columns() values).
func (m *Matrix[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= m.rows {
		return nil, matrixErrorf(ctxRow, 0, row, ErrWrongPosition)
	}
	out := make([]T, m.columns)
	var (
		c   int
		err error
	)
	for c = 0; c < m.columns; c++ {
		if out[c], err = m.at(c, row); err != nil {
			return nil, matrixErrorf(ctxRow, c, row, err)
		}
	}

	return out, nil
}

// Column returns a copy of the given column (Rows() values).
func (m *Matrix[T]) Column(column int) ([]T, error) {
	if column < 0 || column >= m.columns {
		return nil, matrixErrorf(ctxColumn, column, 0, ErrWrongPosition)
	}
	out := make([]T, m.rows)
	var (
		r   int
		err error
	)
	for r = 0; r < m.rows; r++ {
		if out[r], err = m.at(column, r); err != nil {
			return nil, matrixErrorf(ctxColumn, column, r, err)
		}
	}

	return out, nil
}

// String renders one bracketed line per row, values formatted with %v.
// Intended for diagnostics and tests, not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var r, c, base int
	for r = 0; r < m.rows; r++ {
		b.WriteString(_fmtRowOpen)
		base = r * m.columns
		for c = 0; c < m.columns; c++ {
			fmt.Fprintf(&b, "%v", m.data[base+c])
			if c+1 < m.columns {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
