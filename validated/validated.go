// Package validated accumulates multiple errors while still returning values.
//
// Pipeline documents are checked with it so that every problem in a file is
// reported at once instead of stopping at the first bad stage.
package validated

import (
	"errors"

	"github.com/charmingruby/lazyseq/result"
)

// Validated wraps either a successful value or a collection of errors.
type Validated[E any, T any] struct {
	value  T
	errors []E
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated. Passing no errors still yields an
// invalid value.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	copied := make([]E, len(errs))
	copy(copied, errs)
	return Validated[E, T]{errors: copied}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return v.errors == nil
}

// Errors returns a copy of the collected errors.
func (v Validated[E, T]) Errors() []E {
	copied := make([]E, len(v.errors))
	copy(copied, v.errors)
	return copied
}

// UnsafeValue returns the stored value even when invalid.
func (v Validated[E, T]) UnsafeValue() T {
	return v.value
}

// Map transforms the stored value when valid.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E](fn(v.value))
}

// Map2 combines two Validated values with fn, accumulating errors from both
// sides when either is invalid.
func Map2[E any, A any, B any, C any](a Validated[E, A], b Validated[E, B], fn func(A, B) C) Validated[E, C] {
	if a.IsValid() && b.IsValid() {
		return Valid[E](fn(a.value, b.value))
	}
	return Validated[E, C]{errors: appendErrors(a.errors, b.errors)}
}

// Sequence collapses a slice of Validated values into one holding all
// values, or every error found.
func Sequence[E any, T any](items []Validated[E, T]) Validated[E, []T] {
	values := make([]T, 0, len(items))
	var errs []E
	for _, item := range items {
		if item.IsValid() {
			values = append(values, item.value)
			continue
		}
		errs = appendErrors(errs, item.errors)
	}
	if errs != nil {
		return Validated[E, []T]{errors: errs}
	}
	return Valid[E](values)
}

// ToResult joins the errors of an invalid value with errors.Join.
func ToResult[T any](v Validated[error, T]) result.Result[T] {
	if v.IsValid() {
		return result.Ok(v.value)
	}
	return result.Err[T](errors.Join(v.errors...))
}

func appendErrors[E any](dst []E, src []E) []E {
	if src == nil {
		return dst
	}
	if dst == nil {
		dst = make([]E, 0, len(src))
	}
	return append(dst, src...)
}
