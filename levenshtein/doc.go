// Package levenshtein computes the edit (Levenshtein) distance between two
// sequences of comparable elements.
//
// What is edit distance?
//
//	The minimum number of single-element insertions, deletions or
//	substitutions needed to turn one sequence into another. Every operation
//	costs 1. It is widely used in:
//	  • fuzzy string and command matching ("did you mean ...")
//	  • spell checking
//	  • token-level diffing of short sequences
//
// How it is computed:
//
//	A dynamic-programming table is held in a matrix.Matrix[int32] with
//	len(seq1)+1 columns and len(seq2)+1 rows. Cell (j, i) is the distance
//	between the first j elements of seq1 and the first i elements of seq2.
//	The border is seeded with 0..n, the interior filled row by row, and the
//	answer is the bottom-right cell.
//
// Usage:
//
//	import "github.com/katalvlaran/nyutils/levenshtein"
//
//	d, err := levenshtein.Distance([]string{"k", "i", "t"}, []string{"s", "i", "t"})
//	// d == 1
//
//	d, err = levenshtein.Strings("kitten", "sitting")
//	// d == 3
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) for the table; empty inputs short-circuit without allocating.
//
// An error is only ever returned if the underlying table reports a bounds
// failure, which means the table was mis-sized: treat it as a bug, not as a
// user-facing condition.
package levenshtein
