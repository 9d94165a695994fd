package levenshtein_test

import (
	"testing"

	"github.com/katalvlaran/nyutils/levenshtein"
)

var sinkD int32

// benchmarkDistance runs Distance on two integer sequences of lengths n and m.
func benchmarkDistance(b *testing.B, n, m int) {
	a := make([]int, n)
	c := make([]int, m)
	for i := range a {
		a[i] = i % 7
	}
	for j := range c {
		c[j] = j % 5
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, err := levenshtein.Distance(a, c)
		if err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
		sinkD = d
	}
}

// BenchmarkDistance_Small benchmarks 32×32 sequences.
func BenchmarkDistance_Small(b *testing.B) { benchmarkDistance(b, 32, 32) }

// BenchmarkDistance_Medium benchmarks 256×256 sequences.
func BenchmarkDistance_Medium(b *testing.B) { benchmarkDistance(b, 256, 256) }
