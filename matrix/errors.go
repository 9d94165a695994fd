// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every fallible method returns one of these sentinels, wrapped with the
// method name and coordinates. Callers match with errors.Is. No method panics
// on a user-triggered condition.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ". Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context is needed; errors.Is still matches the sentinel.
var (
	// ErrWrongPosition is returned when a (column, row) pair, a row index or a
	// column index lies outside the current shape. Slice also returns it for an
	// invalid [from, to) row range.
	ErrWrongPosition = errors.New("matrix: wrong position")

	// ErrNotFound signals that a lookup into the backing store failed after the
	// position was validated. It means len(data) != columns*rows, i.e. a broken
	// invariant, and is unreachable through the public API.
	ErrNotFound = errors.New("matrix: cell not found")

	// ErrWrongSize is returned when a replacement sequence has the wrong length:
	// SetData needs columns*rows values, AddRow needs columns, AddColumn needs rows.
	ErrWrongSize = errors.New("matrix: wrong size")

	// ErrBadShape is returned by New for negative dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")
)

// ---------- error context tags ----------

const (
	ctxGet       = "Get"
	ctxSet       = "Set"
	ctxSetData   = "SetData"
	ctxTranspose = "Transpose"
	ctxSlice     = "Slice"
	ctxAddRow    = "AddRow"
	ctxAddColumn = "AddColumn"
	ctxRow       = "Row"
	ctxColumn    = "Column"
)

// matrixErrorf wraps err with a uniform "Matrix.<method>(a,b)" prefix.
func matrixErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, a, b, err)
}
