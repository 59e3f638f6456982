package seq

// Iterator is a single pull cursor over a Sequence. Each call to Next runs
// the whole stage chain for exactly one element.
type Iterator[T any] struct {
	next func() (T, bool)
	stop func()
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// Stop releases whatever the cursor holds upstream (an iter.Pull
// coroutine, an inner FlatMap cursor). It is safe to call more than once
// and on a cursor that was drained.
func (it Iterator[T]) Stop() {
	if it.stop != nil {
		it.stop()
	}
}

func sliceIter[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		},
	}
}

func mapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (B, bool) {
			v, ok := it.Next()
			if !ok {
				var zero B
				return zero, false
			}
			return fn(v), true
		},
		stop: it.stop,
	}
}

func filterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if predicate(v) {
					return v, true
				}
			}
		},
		stop: it.stop,
	}
}

// takeWhileIter never pulls upstream again once predicate has failed.
func takeWhileIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	done := false
	return Iterator[T]{
		next: func() (T, bool) {
			var zero T
			if done {
				return zero, false
			}
			v, ok := it.Next()
			if !ok || !predicate(v) {
				done = true
				return zero, false
			}
			return v, true
		},
		stop: it.stop,
	}
}

func dropWhileIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	dropping := true
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if dropping && predicate(v) {
					continue
				}
				dropping = false
				return v, true
			}
		},
		stop: it.stop,
	}
}

func takeIter[T any](it Iterator[T], n int) Iterator[T] {
	count := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false
			}
			count++
			return v, true
		},
		stop: it.stop,
	}
}

func dropIter[T any](it Iterator[T], n int) Iterator[T] {
	skipped := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !skipped {
				skipped = true
				for range n {
					if _, ok := it.Next(); !ok {
						var zero T
						return zero, false
					}
				}
			}
			return it.Next()
		},
		stop: it.stop,
	}
}

func onEachIter[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			v, ok := it.Next()
			if ok {
				fn(v)
			}
			return v, ok
		},
		stop: it.stop,
	}
}

// concatIter opens second only after first is exhausted.
func concatIter[T any](first Iterator[T], second func() Iterator[T]) Iterator[T] {
	cur := first
	switched := false
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := cur.Next()
				if ok || switched {
					return v, ok
				}
				cur.Stop()
				cur = second()
				switched = true
			}
		},
		stop: func() { cur.Stop() },
	}
}

func flatMapIter[A any, B any](outer Iterator[A], fn func(A) Sequence[B]) Iterator[B] {
	var inner Iterator[B]
	return Iterator[B]{
		next: func() (B, bool) {
			for {
				if v, ok := inner.Next(); ok {
					return v, true
				}
				inner.Stop()
				v, ok := outer.Next()
				if !ok {
					inner = Iterator[B]{}
					var zero B
					return zero, false
				}
				inner = fn(v).Iterator()
			}
		},
		stop: func() {
			inner.Stop()
			outer.Stop()
		},
	}
}
