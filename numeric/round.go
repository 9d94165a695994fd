package numeric

import "math"

// RoundTo returns the multiple of multiple nearest to v; halves round away
// from zero (7→5, 8→10, 7.5→10 for multiple 5). The sign of multiple is
// ignored and multiple == 0 returns v unchanged.
//
// The computation goes through float64, so integers beyond 2^53 lose precision.
func RoundTo[T Number](v, multiple T) T {
	return roundWith(v, multiple, math.Round)
}

// RoundUpTo returns the smallest multiple of multiple that is >= v.
func RoundUpTo[T Number](v, multiple T) T {
	return roundWith(v, multiple, math.Ceil)
}

// RoundDownTo returns the largest multiple of multiple that is <= v.
func RoundDownTo[T Number](v, multiple T) T {
	return roundWith(v, multiple, math.Floor)
}

func roundWith[T Number](v, multiple T, fn func(float64) float64) T {
	if multiple == 0 {
		return v
	}
	m := math.Abs(float64(multiple))

	return T(fn(float64(v)/m) * m)
}
