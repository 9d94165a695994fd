package levenshtein_test

import (
	"math/rand"
	"strings"
	"testing"

	agext "github.com/agext/levenshtein"
	"github.com/katalvlaran/nyutils/levenshtein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance_Kitten checks the two classic kitten scenarios.
func TestDistance_Kitten(t *testing.T) {
	kitten := []string{"k", "i", "t", "t", "e", "n"}

	d, err := levenshtein.Distance(kitten, []string{"s", "i", "t", "t", "i", "n", "g"})
	require.NoError(t, err)
	assert.Equal(t, int32(3), d, "kitten → sitting")

	d, err = levenshtein.Distance(kitten, []string{"s", "m", "i", "t", "t", "e", "n"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), d, "kitten → smitten")

	d, err = levenshtein.Distance(kitten, []string{"f", "i", "t", "t", "i", "n", "g"})
	require.NoError(t, err)
	assert.Equal(t, int32(3), d, "kitten → fitting")
}

// TestDistance_BaseCases verifies empty inputs return the other length.
func TestDistance_BaseCases(t *testing.T) {
	xs := [][]int{{}, {1}, {1, 2, 3}, {4, 4, 4, 4, 4}}
	for _, x := range xs {
		d, err := levenshtein.Distance([]int{}, x)
		require.NoError(t, err)
		assert.Equal(t, int32(len(x)), d)

		d, err = levenshtein.Distance(x, nil)
		require.NoError(t, err)
		assert.Equal(t, int32(len(x)), d)
	}
}

// TestDistance_Identity verifies identical sequences are at distance zero.
func TestDistance_Identity(t *testing.T) {
	d, err := levenshtein.Distance([]int{1, 2, 3, 4}, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestDistance_Symmetry checks d(a,b) == d(b,a) over random integer sequences.
func TestDistance_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 200; k++ {
		a := randomSeq(rng, rng.Intn(9), 4)
		b := randomSeq(rng, rng.Intn(9), 4)

		ab, err := levenshtein.Distance(a, b)
		require.NoError(t, err)
		ba, err := levenshtein.Distance(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "a=%v b=%v", a, b)

		// bounded by the longer sequence and at least the length difference
		assert.LessOrEqual(t, int(ab), max(len(a), len(b)))
		assert.GreaterOrEqual(t, int(ab), abs(len(a)-len(b)))
	}
}

// TestStrings_MatchesReference cross-checks Strings against agext/levenshtein.
func TestStrings_MatchesReference(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"", "abc"},
		{"héllo", "hello"},
		{"gumbo", "gambol"},
		{"intention", "execution"},
		{strings.Repeat("ab", 20), strings.Repeat("ba", 19)},
	}
	for _, p := range pairs {
		d, err := levenshtein.Strings(p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, agext.Distance(p[0], p[1], nil), int(d), "%q vs %q", p[0], p[1])
	}
}

// TestDistanceFunc_CaseFold uses a custom equality.
func TestDistanceFunc_CaseFold(t *testing.T) {
	a := []string{"Go", "IS", "fun"}
	b := []string{"go", "is", "Fun", "!"}

	d, err := levenshtein.DistanceFunc(a, b, strings.EqualFold)
	require.NoError(t, err)
	assert.Equal(t, int32(1), d)

	d, err = levenshtein.Distance(a, b)
	require.NoError(t, err)
	assert.Equal(t, int32(4), d)
}

func randomSeq(rng *rand.Rand, n, alphabet int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(alphabet)
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
