package seq

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/charmingruby/lazyseq/option"
)

// ToList drains the sequence into a new slice, preserving order. The
// result is never nil.
func (s Sequence[T]) ToList() []T {
	result := []T{}
	s.ForEach(func(v T) {
		result = append(result, v)
	})
	return result
}

// ForEach drains the sequence calling action once per element.
func (s Sequence[T]) ForEach(action func(T)) {
	it := s.Iterator()
	defer it.Stop()
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		action(v)
	}
}

// Find returns the first element satisfying predicate. Nothing past the
// match is pulled from the source.
func (s Sequence[T]) Find(predicate func(T) bool) option.Option[T] {
	it := s.Iterator()
	defer it.Stop()
	for {
		v, ok := it.Next()
		if !ok {
			return option.None[T]()
		}
		if predicate(v) {
			return option.Some(v)
		}
	}
}

// First returns the first element, pulling exactly one.
func (s Sequence[T]) First() option.Option[T] {
	it := s.Iterator()
	defer it.Stop()
	v, ok := it.Next()
	return option.FromOk(v, ok)
}

// Last drains the sequence and returns its final element.
func (s Sequence[T]) Last() option.Option[T] {
	last := option.None[T]()
	s.ForEach(func(v T) {
		last = option.Some(v)
	})
	return last
}

// ElementAt returns the element at position idx, pulling idx+1 elements.
func (s Sequence[T]) ElementAt(idx int) option.Option[T] {
	if idx < 0 {
		return option.None[T]()
	}
	return s.Drop(idx).First()
}

// Count drains the sequence and returns how many elements it produced.
func (s Sequence[T]) Count() int {
	n := 0
	s.ForEach(func(T) { n++ })
	return n
}

// Any reports whether some element satisfies predicate, stopping at the
// first match.
func (s Sequence[T]) Any(predicate func(T) bool) bool {
	return s.Find(predicate).IsSome()
}

// All reports whether every element satisfies predicate, stopping at the
// first failure. It is true for an empty sequence.
func (s Sequence[T]) All(predicate func(T) bool) bool {
	return !s.Any(func(v T) bool { return !predicate(v) })
}

// None reports whether no element satisfies predicate.
func (s Sequence[T]) None(predicate func(T) bool) bool {
	return !s.Any(predicate)
}

// Fold reduces the sequence from left to right starting at init.
func Fold[T any, A any](s Sequence[T], init A, fn func(A, T) A) A {
	acc := init
	s.ForEach(func(v T) {
		acc = fn(acc, v)
	})
	return acc
}

// Reduce folds the sequence using its first element as the initial
// accumulator. It is None for an empty sequence.
func Reduce[T any](s Sequence[T], fn func(T, T) T) option.Option[T] {
	acc := option.None[T]()
	s.ForEach(func(v T) {
		if cur, ok := acc.Get(); ok {
			acc = option.Some(fn(cur, v))
			return
		}
		acc = option.Some(v)
	})
	return acc
}

// GroupBy drains the sequence into groups keyed by keySelector. Each group
// keeps production order.
func GroupBy[T any, K comparable](s Sequence[T], keySelector func(T) K) map[K][]T {
	groups := make(map[K][]T)
	s.ForEach(func(v T) {
		key := keySelector(v)
		groups[key] = append(groups[key], v)
	})
	return groups
}

// Associate drains the sequence into a map. Later pairs overwrite earlier
// ones with the same key.
func Associate[T any, K comparable, V any](s Sequence[T], fn func(T) (K, V)) map[K]V {
	out := make(map[K]V)
	s.ForEach(func(v T) {
		k, val := fn(v)
		out[k] = val
	})
	return out
}

// MaxBy returns the first element with the largest key.
func MaxBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K) option.Option[T] {
	return extremeBy(s, key, func(candidate, best K) bool { return candidate > best })
}

// MinBy returns the first element with the smallest key.
func MinBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K) option.Option[T] {
	return extremeBy(s, key, func(candidate, best K) bool { return candidate < best })
}

func extremeBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K, better func(K, K) bool) option.Option[T] {
	var (
		best    T
		bestKey K
		found   bool
	)
	s.ForEach(func(v T) {
		k := key(v)
		if !found || better(k, bestKey) {
			best, bestKey, found = v, k, true
		}
	})
	return option.FromOk(best, found)
}

// JoinToString renders each element with format (fmt.Sprint when nil) and
// joins them with sep.
func JoinToString[T any](s Sequence[T], sep string, format func(T) string) string {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	var buf strings.Builder
	first := true
	s.ForEach(func(v T) {
		if !first {
			buf.WriteString(sep)
		}
		first = false
		buf.WriteString(format(v))
	})
	return buf.String()
}

// CollectContext drains the sequence like ToList but checks ctx before
// every pull. When ctx ends first it returns the context error and no
// elements.
func CollectContext[T any](ctx context.Context, s Sequence[T]) ([]T, error) {
	it := s.Iterator()
	defer it.Stop()
	result := []T{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, ok := it.Next()
		if !ok {
			return result, nil
		}
		result = append(result, v)
	}
}
