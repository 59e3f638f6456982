package seq

import "context"

// Map lazily transforms each element with fn.
func Map[A any, B any](s Sequence[A], fn func(A) B) Sequence[B] {
	return derive(s, func(it Iterator[A]) Iterator[B] {
		return mapIter(it, fn)
	})
}

// MapIndexed is Map with the zero-based position of the element in this
// sequence.
func MapIndexed[A any, B any](s Sequence[A], fn func(int, A) B) Sequence[B] {
	return derive(s, func(it Iterator[A]) Iterator[B] {
		idx := -1
		return mapIter(it, func(v A) B {
			idx++
			return fn(idx, v)
		})
	})
}

// FilterMap transforms elements with fn and keeps only those for which fn
// reports true.
func FilterMap[A any, B any](s Sequence[A], fn func(A) (B, bool)) Sequence[B] {
	return derive(s, func(it Iterator[A]) Iterator[B] {
		return Iterator[B]{
			next: func() (B, bool) {
				for {
					v, ok := it.Next()
					if !ok {
						var zero B
						return zero, false
					}
					if out, keep := fn(v); keep {
						return out, true
					}
				}
			},
			stop: it.stop,
		}
	})
}

// FlatMap maps each element to a sequence and yields the elements of those
// sequences in order. Inner sequences are opened one at a time.
func FlatMap[A any, B any](s Sequence[A], fn func(A) Sequence[B]) Sequence[B] {
	return derive(s, func(it Iterator[A]) Iterator[B] {
		return flatMapIter(it, fn)
	})
}

// Scan yields init followed by every intermediate accumulator value.
func Scan[A any, B any](s Sequence[A], init B, fn func(B, A) B) Sequence[B] {
	return derive(s, func(it Iterator[A]) Iterator[B] {
		acc := init
		emitted := false
		return Iterator[B]{
			next: func() (B, bool) {
				if !emitted {
					emitted = true
					return acc, true
				}
				v, ok := it.Next()
				if !ok {
					var zero B
					return zero, false
				}
				acc = fn(acc, v)
				return acc, true
			},
			stop: it.stop,
		}
	})
}

// Pair represents two related values.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Zip pairs elements of a and b up to the shorter of the two. b is not
// pulled once a is exhausted.
func Zip[A any, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	return Sequence[Pair[A, B]]{
		open: func() Iterator[Pair[A, B]] {
			left, right := a.Iterator(), b.Iterator()
			return Iterator[Pair[A, B]]{
				next: func() (Pair[A, B], bool) {
					l, ok := left.Next()
					if !ok {
						return Pair[A, B]{}, false
					}
					r, ok := right.Next()
					if !ok {
						return Pair[A, B]{}, false
					}
					return Pair[A, B]{First: l, Second: r}, true
				},
				stop: func() {
					left.Stop()
					right.Stop()
				},
			}
		},
	}
}

// Filter keeps elements satisfying predicate.
func (s Sequence[T]) Filter(predicate func(T) bool) Sequence[T] {
	return derive(s, func(it Iterator[T]) Iterator[T] {
		return filterIter(it, predicate)
	})
}

// FilterNot keeps elements for which predicate is false.
func (s Sequence[T]) FilterNot(predicate func(T) bool) Sequence[T] {
	return s.Filter(func(v T) bool { return !predicate(v) })
}

// TakeWhile yields elements while predicate holds. The first element that
// fails ends the sequence; upstream is not pulled again.
func (s Sequence[T]) TakeWhile(predicate func(T) bool) Sequence[T] {
	return derive(s, func(it Iterator[T]) Iterator[T] {
		return takeWhileIter(it, predicate)
	})
}

// DropWhile skips leading elements while predicate holds, then yields the
// rest unchanged.
func (s Sequence[T]) DropWhile(predicate func(T) bool) Sequence[T] {
	return derive(s, func(it Iterator[T]) Iterator[T] {
		return dropWhileIter(it, predicate)
	})
}

// Take yields at most n elements and never pulls upstream past the n-th.
func (s Sequence[T]) Take(n int) Sequence[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return derive(s, func(it Iterator[T]) Iterator[T] {
		return takeIter(it, n)
	})
}

// Drop skips the first n elements.
func (s Sequence[T]) Drop(n int) Sequence[T] {
	if n <= 0 {
		return s
	}
	return derive(s, func(it Iterator[T]) Iterator[T] {
		return dropIter(it, n)
	})
}

// OnEach calls fn for every element as it passes through.
func (s Sequence[T]) OnEach(fn func(T)) Sequence[T] {
	return derive(s, func(it Iterator[T]) Iterator[T] {
		return onEachIter(it, fn)
	})
}

// Concat yields s followed by other. other is opened only once s is
// exhausted.
func (s Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	return derive(s, func(it Iterator[T]) Iterator[T] {
		return concatIter(it, other.Iterator)
	})
}

// WithContext ends the sequence as soon as ctx is done. The check happens
// before every upstream pull, so it also bounds infinite sources.
func (s Sequence[T]) WithContext(ctx context.Context) Sequence[T] {
	return derive(s, func(it Iterator[T]) Iterator[T] {
		return Iterator[T]{
			next: func() (T, bool) {
				if ctx.Err() != nil {
					var zero T
					return zero, false
				}
				return it.Next()
			},
			stop: it.stop,
		}
	})
}
