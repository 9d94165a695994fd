// Package matrix_test contains unit tests for the generic Matrix container.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nyutils/matrix"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a columns×rows matrix filled with values, failing the test on error.
func mustMatrix[T any](t testing.TB, columns, rows int, values []T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](columns, rows)
	require.NoError(t, err)
	if values != nil {
		require.NoError(t, m.SetData(values))
	}

	return m
}

// seq returns [1..n].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// TestNewShape checks the shape invariant len(Data()) == c*r over a few shapes, zero included.
func TestNewShape(t *testing.T) {
	shapes := [][2]int{{0, 0}, {0, 3}, {3, 0}, {1, 1}, {4, 3}, {7, 2}}
	for _, s := range shapes {
		m, err := matrix.New[float64](s[0], s[1])
		require.NoError(t, err)

		c, r := m.Shape()
		require.Equal(t, s[0], c)
		require.Equal(t, s[1], r)
		require.Equal(t, s[0], m.Columns())
		require.Equal(t, s[1], m.Rows())
		require.Len(t, m.Data(), s[0]*s[1])
		for _, v := range m.Data() {
			require.Zero(t, v) // default-initialized
		}
	}
}

// TestNewNegative ensures negative dimensions are rejected.
func TestNewNegative(t *testing.T) {
	_, err := matrix.New[int](-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New[int](2, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewOverflow ensures shapes whose cell count overflows int are rejected
// instead of producing a matrix with len(Data()) != c*r.
func TestNewOverflow(t *testing.T) {
	half := math.MaxInt/2 + 1
	_, err := matrix.New[int](half, half)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New[int](math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// cell count fits in int, byte size does not
	_, err = matrix.New[int64](math.MaxInt/4, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// a zero dimension never overflows
	m, err := matrix.New[struct{}](0, math.MaxInt)
	require.NoError(t, err)
	require.Empty(t, m.Data())
}

// TestSetGet validates Set followed by Get on valid cells.
func TestSetGet(t *testing.T) {
	m := mustMatrix[float64](t, 3, 4, nil)

	require.NoError(t, m.Set(1, 2, 1.0))
	v, err := m.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	require.NoError(t, m.Set(2, 3, 2.5))
	v, err = m.Get(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	// row-major: (column=2,row=3) is the last cell of a 3-wide matrix
	require.Equal(t, 2.5, m.Data()[3*3+2])
}

// TestGetSetOutOfBounds ensures every out-of-range coordinate fails with ErrWrongPosition.
func TestGetSetOutOfBounds(t *testing.T) {
	m := mustMatrix[float64](t, 3, 4, nil)

	bad := [][2]int{{3, 3}, {2, 4}, {-1, 0}, {0, -1}, {100, 100}}
	for _, p := range bad {
		_, err := m.Get(p[0], p[1])
		require.ErrorIs(t, err, matrix.ErrWrongPosition, "Get(%d,%d)", p[0], p[1])

		err = m.Set(p[0], p[1], 9)
		require.ErrorIs(t, err, matrix.ErrWrongPosition, "Set(%d,%d)", p[0], p[1])
	}

	// failed writes never land anywhere
	for _, v := range m.Data() {
		require.Zero(t, v)
	}
}

// TestZeroShapeAccess checks that an empty matrix rejects every access.
func TestZeroShapeAccess(t *testing.T) {
	m := mustMatrix[int](t, 0, 0, nil)
	_, err := m.Get(0, 0)
	require.ErrorIs(t, err, matrix.ErrWrongPosition)
	require.Empty(t, m.Data())
	require.NoError(t, m.SetData([]int{}))
}

// TestSetDataRoundTrip verifies SetData then Data returns the same sequence.
func TestSetDataRoundTrip(t *testing.T) {
	m := mustMatrix[int](t, 4, 3, nil)
	in := seq(12)

	require.NoError(t, m.SetData(in))
	require.Equal(t, in, m.Data())

	// input slice is copied, not retained
	in[0] = 100
	v, err := m.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

// TestSetDataWrongSize ensures mismatched lengths fail and leave the matrix intact.
func TestSetDataWrongSize(t *testing.T) {
	m := mustMatrix(t, 2, 2, []int{1, 2, 3, 4})

	require.ErrorIs(t, m.SetData([]int{1, 2, 3}), matrix.ErrWrongSize)
	require.ErrorIs(t, m.SetData([]int{1, 2, 3, 4, 5}), matrix.ErrWrongSize)
	require.ErrorIs(t, m.SetData(nil), matrix.ErrWrongSize)
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())
}

// TestDataIsCopy ensures callers cannot alias the backing store.
func TestDataIsCopy(t *testing.T) {
	m := mustMatrix(t, 2, 1, []int{1, 2})

	d := m.Data()
	d[0] = 42
	v, err := m.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

// TestGetReturnsCopy ensures a struct value read via Get is detached from the cell.
func TestGetReturnsCopy(t *testing.T) {
	type cell struct{ N int }
	m := mustMatrix(t, 1, 1, []cell{{N: 1}})

	v, err := m.Get(0, 0)
	require.NoError(t, err)
	v.N = 7

	v2, err := m.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v2.N)
}

// TestClone ensures Clone is deep and independent.
func TestClone(t *testing.T) {
	m := mustMatrix(t, 2, 2, []int{1, 2, 3, 4})
	cp := m.Clone()

	require.NoError(t, cp.Set(0, 0, 9))
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())
	require.Equal(t, []int{9, 2, 3, 4}, cp.Data())
}

// TestRowColumn checks the copying row/column accessors.
func TestRowColumn(t *testing.T) {
	m := mustMatrix(t, 4, 3, seq(12))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6, 7, 8}, row)

	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 7, 11}, col)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrWrongPosition)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrWrongPosition)
}

// TestString checks the diagnostic dump format.
func TestString(t *testing.T) {
	m := mustMatrix(t, 2, 2, []int{1, 2, 3, 4})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
