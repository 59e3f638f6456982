// Package fp provides the function composition helpers used to chain
// sequence transforms.
//
// Example:
//
//	evens := fp.Pipe(seq.Range(0, 10),
//		func(s seq.Sequence[int]) seq.Sequence[int] { return s.Filter(isEven) },
//		func(s seq.Sequence[int]) seq.Sequence[int] { return s.Take(3) },
//	)
package fp

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Pipe applies fns to value from left to right. All functions must accept
// and return the same type.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order. With no functions it
// behaves as Identity.
//
// Example:
//
//	traced := Compose(observe, square)
//	out := traced(in) // observe(square(in))
func Compose[T any](fns ...func(T) T) func(T) T {
	if len(fns) == 0 {
		return Identity[T]
	}
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}
