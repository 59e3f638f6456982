package seq

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by SumChecked when the running total no longer
// fits the element type.
var ErrOverflow = errors.New("seq: integer overflow")

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is any type Sum can accumulate.
type Number interface {
	Integer | Float
}

// Sum drains the sequence and adds its elements using Go arithmetic:
// integers wrap on overflow, floats saturate to ±Inf.
func Sum[T Number](s Sequence[T]) T {
	var total T
	s.ForEach(func(v T) {
		total += v
	})
	return total
}

// SumChecked is Sum for integers that stops pulling and reports
// ErrOverflow as soon as the running total would wrap.
func SumChecked[T Integer](s Sequence[T]) (T, error) {
	it := s.Iterator()
	defer it.Stop()
	var total T
	for {
		v, ok := it.Next()
		if !ok {
			return total, nil
		}
		next, ok := addChecked(total, v)
		if !ok {
			return total, fmt.Errorf("%w: %v + %v", ErrOverflow, total, v)
		}
		total = next
	}
}

func addChecked[T Integer](a, b T) (T, bool) {
	sum := a + b
	var zero T
	if zero-1 > zero {
		// unsigned
		return sum, sum >= a
	}
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return sum, false
	}
	return sum, true
}
