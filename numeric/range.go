package numeric

import (
	"errors"
	"fmt"
)

// ErrZeroStep is returned by Range when step == 0.
var ErrZeroStep = errors.New("numeric: step must be non-zero")

// Range returns start, start+step, ... up to but excluding end.
//
// Behavior highlights:
//   - step > 0 counts up over [start, end); step < 0 counts down over (end, start].
//   - A step pointing away from end yields an empty, non-nil slice.
//
// Errors:
//   - ErrZeroStep when step == 0.
//
// Complexity:
//   - Time O(|end-start|/|step|), Space the same.
func Range[T Integer](start, end, step T) ([]T, error) {
	if step == 0 {
		return nil, fmt.Errorf("Range(%v,%v,%v): %w", start, end, step, ErrZeroStep)
	}

	out := make([]T, 0)
	var v, next T
	if step > 0 {
		for v = start; v < end; v = next {
			out = append(out, v)
			next = v + step
			if next <= v || next >= end { // wrapped past the type maximum, or done
				break
			}
		}

		return out, nil
	}

	for v = start; v > end; v = next {
		out = append(out, v)
		next = v + step
		if next >= v || next <= end { // wrapped past the type minimum, or done
			break
		}
	}

	return out, nil
}
