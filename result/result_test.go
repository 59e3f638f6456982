package result_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyseq/result"
)

func TestFromTuple(t *testing.T) {
	ok := result.FromTuple(strconv.Atoi("12"))
	require.True(t, ok.IsOk())
	assert.Equal(t, 12, ok.UnwrapOr(0))

	bad := result.FromTuple(strconv.Atoi("x"))
	require.True(t, bad.IsErr())
	assert.Equal(t, -1, bad.UnwrapOr(-1))
	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.Err(), &numErr)
}

func TestErrNilPlaceholder(t *testing.T) {
	res := result.Err[int](nil)
	assert.True(t, res.IsErr())
	assert.EqualError(t, res.Err(), "result: nil error")
}

func TestMapAndMapErr(t *testing.T) {
	doubled := result.Map(result.Ok(4), func(v int) int { return v * 2 })
	value, err := doubled.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 8, value)

	boom := errors.New("boom")
	failed := result.Map(result.Err[int](boom), func(v int) string {
		t.Fatalf("map must not run on failure")
		return ""
	})
	assert.ErrorIs(t, failed.Err(), boom)

	wrapped := result.MapErr(failed, func(err error) error { return fmt.Errorf("stage 2: %w", err) })
	assert.EqualError(t, wrapped.Err(), "stage 2: boom")
	assert.ErrorIs(t, wrapped.Err(), boom)

	untouched := result.MapErr(result.Ok(1), func(err error) error {
		t.Fatalf("MapErr must not run on success")
		return err
	})
	assert.True(t, untouched.IsOk())
}
