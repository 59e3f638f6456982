// Package seq provides lazy, pull-based sequences.
//
// A Sequence describes a linear chain of stages over a source. Building the
// chain runs no user code; a terminal operation (ToList, Find, Sum,
// ForEach...) opens a fresh Iterator and pulls one element at a time
// through every stage before asking the source for the next one, so side
// effects of different stages interleave per element.
//
// Sequences built on restartable sources (slices, Generate, Range) can be
// consumed any number of times and each terminal call starts over from the
// beginning. Sources backed by shared external state (FromFunc, Lines) are
// single-use: a second terminal call resumes the shared producer.
//
// Infinite sources (Generate, Repeat) must be bounded with TakeWhile, Take
// or WithContext before a draining terminal is applied; draining an
// unbounded sequence never returns.
//
// Panics raised by functions passed to a stage escape from the terminal
// call that pulled the element. Nothing is recovered.
//
// Example:
//
//	total := seq.Sum(seq.Generate(0, func(n int) int { return n + 1 }).
//		TakeWhile(func(n int) bool { return n <= 100 }))
//	fmt.Println(total) // 5050
package seq

import "iter"

// Sequence is an immutable, lazily evaluated chain of stages. The zero
// value is an empty sequence.
//
// A Sequence may be shared freely; each terminal call opens its own
// Iterator. A single Iterator must not be pulled from two goroutines
// without external synchronization.
type Sequence[T any] struct {
	open func() Iterator[T]
}

// Iterator opens a new cursor over the sequence. Callers that stop before
// exhaustion should call Stop.
func (s Sequence[T]) Iterator() Iterator[T] {
	if s.open == nil {
		return Iterator[T]{}
	}
	return s.open()
}

// Values adapts the sequence to a range-over-func iterator.
//
// Example:
//
//	for v := range seq.Of(1, 2, 3).Values() {
//		fmt.Println(v)
//	}
func (s Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		defer it.Stop()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func derive[A any, B any](s Sequence[A], stage func(Iterator[A]) Iterator[B]) Sequence[B] {
	return Sequence[B]{
		open: func() Iterator[B] {
			return stage(s.Iterator())
		},
	}
}

// Empty returns a sequence with no elements.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Of creates a restartable sequence over the given values.
func Of[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// FromSlice creates a restartable sequence over values without copying
// them. Changes to the slice are visible to later terminal calls.
func FromSlice[T any](values []T) Sequence[T] {
	return Sequence[T]{
		open: func() Iterator[T] {
			return sliceIter(values)
		},
	}
}

// Unfold creates a sequence from a state transition rule. step receives the
// current state and returns the element to yield, the next state, and false
// once the sequence has ended. Every terminal call starts again from state.
func Unfold[S any, T any](state S, step func(S) (T, S, bool)) Sequence[T] {
	return Sequence[T]{
		open: func() Iterator[T] {
			cur := state
			done := false
			return Iterator[T]{
				next: func() (T, bool) {
					var zero T
					if done {
						return zero, false
					}
					v, nextState, ok := step(cur)
					if !ok {
						done = true
						return zero, false
					}
					cur = nextState
					return v, true
				},
			}
		},
	}
}

// Generate creates an infinite sequence starting at seed where each next
// element is computed from the previous one. next is only called when the
// element it produces is pulled.
func Generate[T any](seed T, next func(T) T) Sequence[T] {
	return GenerateWhile(seed, func(v T) (T, bool) {
		return next(v), true
	})
}

// GenerateWhile is Generate with an end condition: the sequence stops the
// first time next reports false.
func GenerateWhile[T any](seed T, next func(T) (T, bool)) Sequence[T] {
	return Sequence[T]{
		open: func() Iterator[T] {
			cur := seed
			started := false
			done := false
			return Iterator[T]{
				next: func() (T, bool) {
					var zero T
					if done {
						return zero, false
					}
					if !started {
						started = true
						return cur, true
					}
					v, ok := next(cur)
					if !ok {
						done = true
						return zero, false
					}
					cur = v
					return cur, true
				},
			}
		},
	}
}

// Iterate is an alias of Generate.
func Iterate[T any](seed T, fn func(T) T) Sequence[T] {
	return Generate(seed, fn)
}

// Repeat yields value forever.
func Repeat[T any](value T) Sequence[T] {
	return Sequence[T]{
		open: func() Iterator[T] {
			return Iterator[T]{
				next: func() (T, bool) {
					return value, true
				},
			}
		},
	}
}

// Range yields from, from+1, ... up to but excluding to.
func Range[T Integer](from, to T) Sequence[T] {
	return Unfold(from, func(cur T) (T, T, bool) {
		if cur >= to {
			return cur, cur, false
		}
		return cur, cur + 1, true
	})
}

// Defer builds the sequence with factory each time a terminal operation
// opens it. factory does not run at construction.
func Defer[T any](factory func() Sequence[T]) Sequence[T] {
	return Sequence[T]{
		open: func() Iterator[T] {
			return factory().Iterator()
		},
	}
}

// FromFunc wraps a single-use producer. The producer is shared by every
// terminal call, so the sequence is not restartable: a second terminal call
// continues from wherever the previous one stopped pulling.
func FromFunc[T any](next func() (T, bool)) Sequence[T] {
	it := Iterator[T]{next: next}
	return Sequence[T]{
		open: func() Iterator[T] {
			return it
		},
	}
}

// FromIter adapts a range-over-func iterator. Whether the result is
// restartable depends on src.
func FromIter[T any](src iter.Seq[T]) Sequence[T] {
	return Sequence[T]{
		open: func() Iterator[T] {
			next, stop := iter.Pull(src)
			return Iterator[T]{next: next, stop: stop}
		},
	}
}
