// Package option implements the explicit "no value" outcome returned by
// sequence terminals such as Find, First and Reduce.
//
// Example:
//
//	first := seq.Of(1, 2, 3).Find(func(v int) bool { return v > 1 })
//	fmt.Println(first.GetOrElse(-1)) // 2
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/lazyseq/result"
)

// Option represents presence or absence of a value of type T. The zero value
// is None. Some(nil) is a present value for nil-capable types.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from Go's (value, ok) idiom, e.g. a map lookup or
// Iterator.Next.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnsafeGet returns the value or panics when the Option is None.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic("option: UnsafeGet on None")
	}
	return o.value
}

// GetOrElse returns the value, or fallback when None.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrElse returns o when present, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// Filter keeps the value only when predicate returns true.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Map transforms the value when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// ToResult converts the Option into a Result, failing with errFactory()
// when None. A nil factory or nil error becomes a descriptive error.
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = errors.New("option: missing value")
	}
	return result.Err[T](err)
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
