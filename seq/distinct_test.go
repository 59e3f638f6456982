package seq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/lazyseq/seq"
)

func TestDistinctKeepsFirstOccurrence(t *testing.T) {
	s := seq.Distinct(seq.Of("a", "b", "a", "c", "b"))
	assert.Equal(t, []string{"a", "b", "c"}, s.ToList())
	assert.Equal(t, []string{"a", "b", "c"}, s.ToList())
}

func TestDistinctByKey(t *testing.T) {
	s := seq.DistinctBy(seq.Of("Go", "go", "Rust", "GO", "rust"), strings.ToLower)
	assert.Equal(t, []string{"Go", "Rust"}, s.ToList())
}

func TestDistinctWorksOnInfiniteSource(t *testing.T) {
	cycle := seq.Generate(0, func(v int) int { return (v + 1) % 3 })
	assert.Equal(t, []int{0, 1, 2}, seq.Distinct(cycle).Take(3).ToList())
}

func TestDistinctWithinWindow(t *testing.T) {
	s := seq.Of(1, 2, 1, 3, 4, 1, 1, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 1, 2}, seq.DistinctWithin(s, 2).ToList())
	assert.Equal(t, []int{1, 2, 3, 4}, seq.DistinctWithin(s, 10).ToList())
	assert.Equal(t, s.ToList(), seq.DistinctWithin(s, 0).ToList())
}

func TestDistinctBytesCopiesSeenValues(t *testing.T) {
	buf := []byte("aa")
	inputs := []string{"aa", "bb", "aa", "cc", "bb"}
	i := 0
	reused := seq.FromFunc(func() ([]byte, bool) {
		if i >= len(inputs) {
			return nil, false
		}
		buf = append(buf[:0], inputs[i]...)
		i++
		return buf, true
	})
	var got []string
	seq.DistinctBytes(reused).ForEach(func(b []byte) {
		got = append(got, string(b))
	})
	assert.Equal(t, []string{"aa", "bb", "cc"}, got)
}
