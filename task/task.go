// Package task defines context-aware computations used to run pipelines.
//
// Example:
//
//	count := task.From(func(ctx context.Context) (int, error) {
//		values, err := seq.CollectContext(ctx, elements)
//		return len(values), err
//	})
//	bounded := task.Timeout(count, time.Second)
package task

import (
	"context"
	"time"
)

// Task represents a computation that can be executed with a context.
type Task[T any] func(ctx context.Context) (T, error)

// From wraps a context-aware function into a Task. The function is not
// called when ctx is already done.
//
// Example:
//
//	fetch := From(repo.Load)
//	user, err := fetch(ctx)
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Map transforms the Task result when it succeeds. A ctx that ended while
// t ran turns the success into ctx's error.
//
// Example:
//
//	size := Map(load, func(values []int64) int { return len(values) })
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(val), nil
	}
}

// Timeout bounds the execution time of a Task. A non-positive d returns t
// unchanged.
func Timeout[T any](t Task[T], d time.Duration) Task[T] {
	if d <= 0 {
		return t
	}
	return func(ctx context.Context) (T, error) {
		ctxWithTimeout, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(ctxWithTimeout)
	}
}
