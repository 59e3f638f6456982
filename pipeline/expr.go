package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

func parseMap(expr string) (func(int64) int64, error) {
	name, arg, hasArg := strings.Cut(expr, ":")
	switch name {
	case "square":
		return noArg(expr, hasArg, func(v int64) int64 { return v * v })
	case "negate":
		return noArg(expr, hasArg, func(v int64) int64 { return -v })
	}
	var op func(v, n int64) int64
	switch name {
	case "add":
		op = func(v, n int64) int64 { return v + n }
	case "mul":
		op = func(v, n int64) int64 { return v * n }
	case "mod":
		op = func(v, n int64) int64 { return v % n }
	default:
		return nil, fmt.Errorf("%w: map %q", ErrUnknownOp, expr)
	}
	n, err := parseArg(expr, arg, hasArg)
	if err != nil {
		return nil, err
	}
	if name == "mod" && n == 0 {
		return nil, fmt.Errorf("%w: %q divides by zero", ErrInvalidArgument, expr)
	}
	return func(v int64) int64 { return op(v, n) }, nil
}

func parsePredicate(expr string) (func(int64) bool, error) {
	name, arg, hasArg := strings.Cut(expr, ":")
	switch name {
	case "even":
		return noArg(expr, hasArg, func(v int64) bool { return v%2 == 0 })
	case "odd":
		return noArg(expr, hasArg, func(v int64) bool { return v%2 != 0 })
	}
	var cmp func(v, n int64) bool
	switch name {
	case "gt":
		cmp = func(v, n int64) bool { return v > n }
	case "ge":
		cmp = func(v, n int64) bool { return v >= n }
	case "lt":
		cmp = func(v, n int64) bool { return v < n }
	case "le":
		cmp = func(v, n int64) bool { return v <= n }
	case "eq":
		cmp = func(v, n int64) bool { return v == n }
	case "ne":
		cmp = func(v, n int64) bool { return v != n }
	default:
		return nil, fmt.Errorf("%w: predicate %q", ErrUnknownOp, expr)
	}
	n, err := parseArg(expr, arg, hasArg)
	if err != nil {
		return nil, err
	}
	return func(v int64) bool { return cmp(v, n) }, nil
}

func noArg[F any](expr string, hasArg bool, fn F) (F, error) {
	if hasArg {
		var zero F
		return zero, fmt.Errorf("%w: %q takes no argument", ErrInvalidArgument, expr)
	}
	return fn, nil
}

func parseArg(expr, arg string, hasArg bool) (int64, error) {
	if !hasArg {
		return 0, fmt.Errorf("%w: %q needs an integer argument", ErrInvalidArgument, expr)
	}
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidArgument, expr, err)
	}
	return n, nil
}
