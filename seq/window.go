package seq

import "github.com/gammazero/deque"

// Window yields sliding windows of size elements, advancing by step. A
// trailing window shorter than size is not yielded. Each window is a new
// slice.
//
// Example:
//
//	seq.Window(seq.Of(1, 2, 3, 4), 2, 1).ToList() // [[1 2] [2 3] [3 4]]
func Window[T any](s Sequence[T], size, step int) Sequence[[]T] {
	if size <= 0 || step <= 0 {
		panic("seq: Window size and step must be positive")
	}
	return derive(s, func(it Iterator[T]) Iterator[[]T] {
		buf := deque.New[T]()
		skip := 0
		return Iterator[[]T]{
			next: func() ([]T, bool) {
				for ; skip > 0; skip-- {
					if _, ok := it.Next(); !ok {
						return nil, false
					}
				}
				for buf.Len() < size {
					v, ok := it.Next()
					if !ok {
						return nil, false
					}
					buf.PushBack(v)
				}
				out := make([]T, size)
				for i := range out {
					out[i] = buf.At(i)
				}
				for range min(step, size) {
					buf.PopFront()
				}
				skip = max(step-size, 0)
				return out, true
			},
			stop: it.stop,
		}
	})
}

// Chunk splits the sequence into consecutive slices of size elements. The
// last chunk may be shorter.
func Chunk[T any](s Sequence[T], size int) Sequence[[]T] {
	if size <= 0 {
		panic("seq: Chunk size must be positive")
	}
	return derive(s, func(it Iterator[T]) Iterator[[]T] {
		return Iterator[[]T]{
			next: func() ([]T, bool) {
				out := make([]T, 0, size)
				for len(out) < size {
					v, ok := it.Next()
					if !ok {
						break
					}
					out = append(out, v)
				}
				return out, len(out) > 0
			},
			stop: it.stop,
		}
	})
}

// TakeLast yields the final n elements. Upstream is drained on the first
// pull, keeping at most n elements buffered.
func (s Sequence[T]) TakeLast(n int) Sequence[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return derive(s, func(it Iterator[T]) Iterator[T] {
		var buf *deque.Deque[T]
		return Iterator[T]{
			next: func() (T, bool) {
				if buf == nil {
					buf = deque.New[T]()
					for {
						v, ok := it.Next()
						if !ok {
							break
						}
						if buf.Len() == n {
							buf.PopFront()
						}
						buf.PushBack(v)
					}
				}
				if buf.Len() == 0 {
					var zero T
					return zero, false
				}
				return buf.PopFront(), true
			},
			stop: it.stop,
		}
	})
}
