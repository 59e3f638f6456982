package seq_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/lazyseq/seq"
)

func TestTakeWhileStopsPullingUpstream(t *testing.T) {
	pulled := 0
	s := seq.Of(1, 2, 10, 3, 4).OnEach(func(int) { pulled++ }).
		TakeWhile(func(v int) bool { return v < 5 })
	assert.Equal(t, []int{1, 2}, s.ToList())
	assert.Equal(t, 3, pulled)
}

func TestDropWhileYieldsRemainder(t *testing.T) {
	got := seq.Of(0, 0, 3, 0, 4).DropWhile(func(v int) bool { return v == 0 }).ToList()
	assert.Equal(t, []int{3, 0, 4}, got)
}

func TestTakeAndDrop(t *testing.T) {
	pulled := 0
	s := seq.Range(0, 10).OnEach(func(int) { pulled++ })
	assert.Equal(t, []int{20, 30}, seq.Map(s.Drop(1), func(v int) int { return v * 10 }).Take(3).Drop(1).ToList())
	pulled = 0
	assert.Equal(t, []int{0, 1, 2}, s.Take(3).ToList())
	assert.Equal(t, 3, pulled)
	assert.Empty(t, s.Take(0).ToList())
	assert.Equal(t, s.ToList(), s.Drop(-1).ToList())
	assert.Empty(t, s.Drop(20).ToList())
}

func TestFilterNot(t *testing.T) {
	odd := seq.Range(0, 6).FilterNot(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{1, 3, 5}, odd.ToList())
}

func TestMapIndexedRestartsIndex(t *testing.T) {
	s := seq.MapIndexed(seq.Of("a", "b"), func(i int, v string) string {
		return strings.Repeat(v, i+1)
	})
	assert.Equal(t, []string{"a", "bb"}, s.ToList())
	assert.Equal(t, []string{"a", "bb"}, s.ToList())
}

func TestFilterMap(t *testing.T) {
	squaresOfEven := seq.FilterMap(seq.Range(1, 5), func(v int) (int, bool) {
		return v * v, v%2 == 0
	})
	assert.Equal(t, []int{4, 16}, squaresOfEven.ToList())
}

func TestFlatMapOpensInnerLazily(t *testing.T) {
	opened := 0
	s := seq.FlatMap(seq.Of("ab", "", "cde"), func(w string) seq.Sequence[rune] {
		opened++
		return seq.FromSlice([]rune(w))
	})
	first := s.First().UnsafeGet()
	assert.Equal(t, 'a', first)
	assert.Equal(t, 1, opened)

	assert.Equal(t, "abcde", string(s.ToList()))
}

func TestScan(t *testing.T) {
	running := seq.Scan(seq.Of(1, 2, 3), 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, []int{0, 1, 3, 6}, running.ToList())
	assert.Equal(t, []int{0}, seq.Scan(seq.Empty[int](), 0, func(acc, v int) int { return acc + v }).ToList())
}

func TestZipStopsAtShorter(t *testing.T) {
	pulledRight := 0
	right := seq.Of("x", "y", "z").OnEach(func(string) { pulledRight++ })
	pairs := seq.Zip(seq.Of(1, 2), right).ToList()
	assert.Equal(t, []seq.Pair[int, string]{{First: 1, Second: "x"}, {First: 2, Second: "y"}}, pairs)
	assert.Equal(t, 2, pulledRight)
}

func TestConcatOpensSecondLate(t *testing.T) {
	opened := false
	second := seq.FromIter(func(yield func(int) bool) {
		opened = true
		yield(9)
	})
	s := seq.Of(1, 2).Concat(second)
	assert.Equal(t, []int{1}, s.Take(1).ToList())
	assert.False(t, opened)
	assert.Equal(t, []int{1, 2, 9}, s.ToList())
	assert.True(t, opened)
}

func TestWithContextBoundsInfiniteSource(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := seq.Generate(1, func(v int) int { return v + 1 }).
		OnEach(func(v int) {
			if v == 5 {
				cancel()
			}
		}).
		WithContext(ctx)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.ToList())
}
