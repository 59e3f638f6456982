// Package eager is the collection-pipeline counterpart of seq: every
// operation runs over the whole input immediately and returns a new slice,
// so chained stages run stage by stage rather than element by element.
//
// Results never share a backing array with their input.
package eager

import "github.com/charmingruby/lazyseq/option"

// Map transforms each element using fn.
func Map[A any, B any](in []A, fn func(A) B) []B {
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps values satisfying predicate.
func Filter[T any](in []T, predicate func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}

// FlatMap applies fn to each element and concatenates the results.
func FlatMap[A any, B any](in []A, fn func(A) []B) []B {
	out := []B{}
	for _, v := range in {
		out = append(out, fn(v)...)
	}
	return out
}

// Fold reduces the slice from left to right.
func Fold[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Find returns the first element satisfying predicate.
func Find[T any](in []T, predicate func(T) bool) option.Option[T] {
	for _, v := range in {
		if predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// GroupBy groups elements by key, keeping input order inside each group.
func GroupBy[T any, K comparable](in []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range in {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// Partition splits in into the elements that satisfy predicate and the
// rest.
func Partition[T any](in []T, predicate func(T) bool) (matches, rest []T) {
	matches, rest = []T{}, []T{}
	for _, v := range in {
		if predicate(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matches, rest
}

// Chunk splits in into slices of size elements; the last may be shorter.
// It panics when size is not positive.
func Chunk[T any](in []T, size int) [][]T {
	if size <= 0 {
		panic("eager: Chunk size must be positive")
	}
	out := make([][]T, 0, (len(in)+size-1)/size)
	for start := 0; start < len(in); start += size {
		end := min(start+size, len(in))
		out = append(out, append([]T(nil), in[start:end]...))
	}
	return out
}
