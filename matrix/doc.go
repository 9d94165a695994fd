// Package matrix provides Matrix[T], a generic fixed-shape 2D container over a
// flat row-major backing store.
//
// What it is:
//
//	A rectangular grid of columns x rows cells of any element type. It is a
//	storage container, not a linear-algebra library: there is no multiply,
//	inversion or numeric policy. The zero value of T is the default cell.
//
// Key features:
//   - bounds-checked Get/Set returning sentinel errors instead of panicking
//   - copy-out accessors (Get, Data, Row, Column): callers never alias storage
//   - bulk replacement with SetData (length-checked, all-or-nothing)
//   - shape-transforming derivations returning new matrices: Transpose, Slice
//   - in-place row/column overwrite: AddRow, AddColumn
//
// Layout:
//
//	Cell (column, row) lives at data[row*columns + column]. That rule is
//	computed in exactly one place (pos) and every position-taking method
//	routes through it.
//
// Usage:
//
//	m, _ := matrix.New[int](4, 3) // 4 columns, 3 rows
//	_ = m.SetData([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
//	t, _ := m.Transpose()         // 3 columns, 4 rows
//	fmt.Println(t.Data())         // [1 5 9 2 6 10 3 7 11 4 8 12]
//
// Concurrency:
//
//	A Matrix has no internal locking. Independent instances may be used from
//	different goroutines; concurrent mutation of one instance must be excluded
//	by the caller.
//
// Errors:
//   - ErrWrongPosition — cell, row, column or row range outside the shape.
//   - ErrWrongSize     — replacement sequence of the wrong length.
//   - ErrNotFound      — storage invariant broken (unreachable via the API).
//   - ErrBadShape      — negative dimensions passed to New.
package matrix
