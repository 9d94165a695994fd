// Package matrix_test provides benchmarks for Matrix accessors and derivations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/nyutils/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkF float64
)

func benchMatrix(b *testing.B, n int) *matrix.Matrix[float64] {
	b.Helper()
	m, err := matrix.New[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = float64(i)
	}
	if err = m.SetData(data); err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkGet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMatrix(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.Get(i%n, (i/n)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMatrix(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t, err := m.Transpose()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = t
			}
		})
	}
}

func BenchmarkSlice(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMatrix(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := m.Slice(n/4, n/2)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = s
			}
		})
	}
}
