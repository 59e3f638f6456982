// Package result provides a success/error value used to carry per-element
// failures through a lazy sequence without stopping it.
//
// Example:
//
//	parsed := seq.TryMap(seq.Of("1", "x"), strconv.Atoi)
//	values, err := seq.CollectResults(parsed)
package result

import "errors"

// Result is the outcome of a computation that either produced a value or
// failed with an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. A nil error is replaced with a
// placeholder so a failure is never silently turned into success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a (value, error) pair.
//
// Example:
//
//	res := result.FromTuple(strconv.Atoi(raw))
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result represents success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, if any.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and error, mirroring standard Go semantics.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise fallback.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// Map transforms the value on success.
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the stored error when present.
//
// Example:
//
//	res := result.MapErr(load(), func(err error) error {
//		return fmt.Errorf("line 3: %w", err)
//	})
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if fn == nil || r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}
