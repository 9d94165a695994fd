// SPDX-License-Identifier: MIT

// Package matrix - shape-transforming derivations and row/column overwrite.
//
// Contract:
//   - Transpose and Slice never modify the receiver; they return a new Matrix
//     laid out with the same row-major rule.
//   - AddRow and AddColumn validate everything before the first write, so a
//     failed call leaves the receiver unchanged.

package matrix

// Transpose returns a new Rows()×Columns() matrix whose cell (r, c) equals the
// receiver's cell (c, r).
// MAIN DESCRIPTION:
//   - Copy-based transpose; the source is left untouched.
//
// Implementation:
//   - Stage 1: allocate rows×columns result.
//   - Stage 2: nested loops r→c; read via at, write via pos on the result.
//
// Errors:
//   - Any read/write failure is wrapped and propagated instead of being
//     dropped. With a consistent shape none can occur.
//
// Complexity:
//   - Time O(c*r), Space O(c*r).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	res, err := New[T](m.rows, m.columns)
	if err != nil {
		return nil, err
	}

	var (
		r, c int
		v    T
		off  int
	)
	for r = 0; r < m.rows; r++ {
		for c = 0; c < m.columns; c++ {
			if v, err = m.at(c, r); err != nil {
				return nil, matrixErrorf(ctxTranspose, c, r, err)
			}
			if off, err = res.pos(r, c); err != nil {
				return nil, matrixErrorf(ctxTranspose, r, c, err)
			}
			res.data[off] = v
		}
	}

	return res, nil
}

// Slice returns a new Columns()×(to-from) matrix holding rows [from, to) of the
// receiver, re-indexed from 0.
// MAIN DESCRIPTION:
//   - Row-range copy. The range is validated before the height is computed,
//     so an inverted range can never turn into a huge or negative size.
//
// Implementation:
//   - Stage 1: require 0 <= from <= to <= Rows(); otherwise ErrWrongPosition.
//   - Stage 2: allocate the result and copy row by row through pos.
//
// Behavior highlights:
//   - from == to is legal and yields a zero-row matrix.
//
// Errors:
//   - ErrWrongPosition for an invalid range (including to < from).
//
// Complexity:
//   - Time O(c*(to-from)), Space O(c*(to-from)).
func (m *Matrix[T]) Slice(from, to int) (*Matrix[T], error) {
	if from < 0 || to < from || to > m.rows {
		return nil, matrixErrorf(ctxSlice, from, to, ErrWrongPosition)
	}

	res, err := New[T](m.columns, to-from)
	if err != nil {
		return nil, err
	}

	var (
		r, c int
		v    T
		off  int
	)
	for r = from; r < to; r++ {
		for c = 0; c < m.columns; c++ {
			if v, err = m.at(c, r); err != nil {
				return nil, matrixErrorf(ctxSlice, c, r, err)
			}
			if off, err = res.pos(c, r-from); err != nil {
				return nil, matrixErrorf(ctxSlice, c, r-from, err)
			}
			res.data[off] = v
		}
	}

	return res, nil
}

// AddRow overwrites every cell of row with the matching element of values.
//
// Errors:
//   - ErrWrongPosition when row is outside [0, Rows()).
//   - ErrWrongSize when len(values) != Columns().
func (m *Matrix[T]) AddRow(row int, values []T) error {
	if row < 0 || row >= m.rows {
		return matrixErrorf(ctxAddRow, 0, row, ErrWrongPosition)
	}
	if len(values) != m.columns {
		return matrixErrorf(ctxAddRow, len(values), m.columns, ErrWrongSize)
	}

	var (
		c, off int
		err    error
	)
	for c = 0; c < m.columns; c++ {
		if off, err = m.pos(c, row); err != nil {
			return matrixErrorf(ctxAddRow, c, row, err)
		}
		m.data[off] = values[c]
	}

	return nil
}

// AddColumn overwrites every cell of column with the matching element of values.
//
// Errors:
//   - ErrWrongPosition when column is outside [0, Columns()).
//   - ErrWrongSize when len(values) != Rows().
func (m *Matrix[T]) AddColumn(column int, values []T) error {
	if column < 0 || column >= m.columns {
		return matrixErrorf(ctxAddColumn, column, 0, ErrWrongPosition)
	}
	if len(values) != m.rows {
		return matrixErrorf(ctxAddColumn, len(values), m.rows, ErrWrongSize)
	}

	var (
		r, off int
		err    error
	)
	for r = 0; r < m.rows; r++ {
		if off, err = m.pos(column, r); err != nil {
			return matrixErrorf(ctxAddColumn, column, r, err)
		}
		m.data[off] = values[r]
	}

	return nil
}
