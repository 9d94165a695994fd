package levenshtein

import (
	"fmt"

	"github.com/katalvlaran/nyutils/matrix"
)

// Distance — Levenshtein edit distance
//
// Algorithm Outline:
//  1. If seq1 is empty the result is len(seq2); if seq2 is empty, len(seq1).
//  2. Let n = len(seq1), m = len(seq2). Allocate an (n+1)×(m+1) table D
//     (columns follow seq1, rows follow seq2).
//  3. Initialize:
//     D[0][i] = i for i=0..m
//     D[j][0] = j for j=0..n
//  4. For i = 1..m:
//     For j = 1..n:
//     cost = 0 if seq2[i-1] == seq1[j-1] else 1
//     D[j][i] = min(D[j-1][i-1]+cost, D[j-1][i]+1, D[j][i-1]+1)
//  5. distance = D[n][m].
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func Distance[E comparable](seq1, seq2 []E) (int32, error) {
	return DistanceFunc(seq1, seq2, func(a, b E) bool { return a == b })
}

// DistanceFunc is Distance with a caller-supplied equality, for element types
// that are not comparable or need a looser notion of "same" (case folding,
// tolerance on floats, ...). equal must be symmetric for the result to be.
func DistanceFunc[E any](seq1, seq2 []E, equal func(a, b E) bool) (int32, error) {
	n, m := len(seq1), len(seq2)
	if n == 0 {
		return int32(m), nil
	}
	if m == 0 {
		return int32(n), nil
	}

	table, err := matrix.New[int32](n+1, m+1)
	if err != nil {
		return 0, fmt.Errorf("levenshtein: table: %w", err)
	}

	// Seed column 0 (empty seq1 prefix) and row 0 (empty seq2 prefix).
	var i, j int
	for i = 0; i <= m; i++ {
		if err = table.Set(0, i, int32(i)); err != nil {
			return 0, fmt.Errorf("levenshtein: seed: %w", err)
		}
	}
	for j = 0; j <= n; j++ {
		if err = table.Set(j, 0, int32(j)); err != nil {
			return 0, fmt.Errorf("levenshtein: seed: %w", err)
		}
	}

	var sub, del, ins, cost int32
	for i = 1; i <= m; i++ {
		for j = 1; j <= n; j++ {
			cost = 1
			if equal(seq2[i-1], seq1[j-1]) {
				cost = 0
			}
			if sub, err = table.Get(j-1, i-1); err != nil {
				return 0, fmt.Errorf("levenshtein: fill: %w", err)
			}
			if del, err = table.Get(j-1, i); err != nil {
				return 0, fmt.Errorf("levenshtein: fill: %w", err)
			}
			if ins, err = table.Get(j, i-1); err != nil {
				return 0, fmt.Errorf("levenshtein: fill: %w", err)
			}
			if err = table.Set(j, i, min3(sub+cost, del+1, ins+1)); err != nil {
				return 0, fmt.Errorf("levenshtein: fill: %w", err)
			}
		}
	}

	d, err := table.Get(n, m)
	if err != nil {
		return 0, fmt.Errorf("levenshtein: result: %w", err)
	}

	return d, nil
}

// Strings returns the edit distance between a and b counted in Unicode code
// points, so "é" vs "e" is one substitution regardless of its UTF-8 width.
func Strings(a, b string) (int32, error) {
	return Distance([]rune(a), []rune(b))
}

// min3 returns the minimum of three int32 values.
func min3(a, b, c int32) int32 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
