// Package ring provides Buffer, a fixed-capacity circular accumulator that
// keeps a running sum of the values it currently holds.
//
// Push is O(1): when the buffer is full the value being overwritten is
// subtracted from the sum before the new one is added, so the sum never needs
// a rescan. A Buffer has no internal locking; give it a single owner.
package ring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nyutils/numeric"
)

// ErrBadSize is returned by New when the capacity is not positive.
var ErrBadSize = errors.New("ring: size must be > 0")

// Buffer is a circular buffer of numbers with an incrementally maintained sum.
type Buffer[T numeric.Number] struct {
	vals   []T // fixed-capacity storage
	pushes int // values added via Push (saturates logically at len(vals))
	index  int // next write slot
	sum    T   // sum of the values added via Push still held
}

// New returns an empty Buffer holding at most size values.
func New[T numeric.Number](size int) (*Buffer[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring.New(%d): %w", size, ErrBadSize)
	}

	return &Buffer[T]{vals: make([]T, size)}, nil
}

// Push appends v, evicting the oldest value once the buffer is full, and
// updates the running sum.
func (b *Buffer[T]) Push(v T) {
	if b.pushes >= len(b.vals) {
		b.sum -= b.vals[b.index] // evict
	}
	b.sum += v
	b.vals[b.index] = v
	b.pushes++
	b.advance()
}

// QPush writes v without touching the sum or the push counter. Use it when
// only Value is read; mixing it with Push leaves Sum stale.
func (b *Buffer[T]) QPush(v T) {
	b.vals[b.index] = v
	b.advance()
}

func (b *Buffer[T]) advance() {
	b.index++
	if b.index >= len(b.vals) {
		b.index = 0
	}
}

// Value returns the i-th most recent value: 0 is the latest, 1 the one before
// it. i wraps modulo the capacity. Slots never written hold the zero value.
func (b *Buffer[T]) Value(i int) T {
	n := len(b.vals)
	k := ((b.index-1-i)%n + n) % n

	return b.vals[k]
}

// Sum returns the sum of the values currently held.
func (b *Buffer[T]) Sum() T { return b.sum }

// Len returns the capacity.
func (b *Buffer[T]) Len() int { return len(b.vals) }

// Count returns how many pushed values are currently held (<= Len()).
func (b *Buffer[T]) Count() int { return min(b.pushes, len(b.vals)) }

// Mean returns Sum()/Count() as float64, or 0 for an empty buffer.
func (b *Buffer[T]) Mean() float64 {
	c := b.Count()
	if c == 0 {
		return 0
	}

	return float64(b.sum) / float64(c)
}
