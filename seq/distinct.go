package seq

import (
	"bytes"

	"github.com/dolthub/swiss"
	"github.com/gammazero/deque"
	"github.com/zeebo/xxh3"
)

const seenInitialSize = 64

// Distinct drops elements equal to one already yielded.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy drops elements whose key was already seen, keeping the first
// occurrence. The seen set lives for one iteration and grows with the
// number of distinct keys.
func DistinctBy[T any, K comparable](s Sequence[T], key func(T) K) Sequence[T] {
	return derive(s, func(it Iterator[T]) Iterator[T] {
		seen := swiss.NewMap[K, struct{}](seenInitialSize)
		return filterIter(it, func(v T) bool {
			k := key(v)
			if _, ok := seen.Get(k); ok {
				return false
			}
			seen.Put(k, struct{}{})
			return true
		})
	})
}

// DistinctWithin drops an element when it equals one of the last window
// elements yielded. Memory stays bounded by window. A window of zero or
// less disables suppression.
func DistinctWithin[T comparable](s Sequence[T], window int) Sequence[T] {
	if window <= 0 {
		return s
	}
	return derive(s, func(it Iterator[T]) Iterator[T] {
		recent := deque.New[T]()
		members := swiss.NewMap[T, struct{}](uint32(min(window, seenInitialSize)))
		return filterIter(it, func(v T) bool {
			if _, ok := members.Get(v); ok {
				return false
			}
			if recent.Len() >= window {
				members.Delete(recent.PopFront())
			}
			recent.PushBack(v)
			members.Put(v, struct{}{})
			return true
		})
	})
}

// DistinctBytes is Distinct for byte slices, which are not comparable.
// Seen values are copied, so producers may reuse their buffers.
func DistinctBytes(s Sequence[[]byte]) Sequence[[]byte] {
	return derive(s, func(it Iterator[[]byte]) Iterator[[]byte] {
		buckets := swiss.NewMap[uint64, [][]byte](seenInitialSize)
		return filterIter(it, func(v []byte) bool {
			h := xxh3.Hash(v)
			bucket, _ := buckets.Get(h)
			for _, prev := range bucket {
				if bytes.Equal(prev, v) {
					return false
				}
			}
			buckets.Put(h, append(bucket, bytes.Clone(v)))
			return true
		})
	})
}
