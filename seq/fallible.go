package seq

import "github.com/charmingruby/lazyseq/result"

// TryMap lazily applies a fallible fn, carrying each outcome as a Result.
// Failures do not stop the sequence; CollectResults does.
func TryMap[A any, B any](s Sequence[A], fn func(A) (B, error)) Sequence[result.Result[B]] {
	return Map(s, func(v A) result.Result[B] {
		out, err := fn(v)
		return result.FromTuple(out, err)
	})
}

// CollectResults drains successful values and stops pulling at the first
// failed Result, returning its error.
func CollectResults[T any](s Sequence[result.Result[T]]) ([]T, error) {
	values := []T{}
	err := TryForEach(s, func(r result.Result[T]) error {
		v, err := r.Unwrap()
		if err != nil {
			return err
		}
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// TryForEach calls action for each element and stops at the first error,
// which is returned unchanged.
func TryForEach[T any](s Sequence[T], action func(T) error) error {
	it := s.Iterator()
	defer it.Stop()
	for {
		v, ok := it.Next()
		if !ok {
			return nil
		}
		if err := action(v); err != nil {
			return err
		}
	}
}
