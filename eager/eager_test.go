package eager_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/lazyseq/eager"
	"github.com/charmingruby/lazyseq/seq"
)

func TestEagerRunsStageByStage(t *testing.T) {
	var trace []string
	mapped := eager.Map([]int{1, 2}, func(v int) int {
		trace = append(trace, fmt.Sprintf("map(%d)", v))
		return v
	})
	eager.Filter(mapped, func(v int) bool {
		trace = append(trace, fmt.Sprintf("filter(%d)", v))
		return true
	})
	assert.Equal(t, []string{"map(1)", "map(2)", "filter(1)", "filter(2)"}, trace)
}

func TestEagerAndLazyAgreeOnResults(t *testing.T) {
	in := []int{1, 2, 3, 4}
	square := func(v int) int { return v * v }
	even := func(v int) bool { return v%2 == 0 }
	assert.Equal(t,
		seq.Map(seq.FromSlice(in), square).Filter(even).ToList(),
		eager.Filter(eager.Map(in, square), even),
	)
}

func TestFlatMapFoldFind(t *testing.T) {
	words := eager.FlatMap([]string{"ab", "c"}, func(s string) []rune { return []rune(s) })
	assert.Equal(t, []rune{'a', 'b', 'c'}, words)
	assert.Equal(t, []int{}, eager.FlatMap([]int{1}, func(int) []int { return nil }))

	assert.Equal(t, 10, eager.Fold([]int{1, 2, 3, 4}, 0, func(acc, v int) int { return acc + v }))
	assert.Equal(t, 3, eager.Find([]int{1, 3, 5}, func(v int) bool { return v > 2 }).UnsafeGet())
	assert.True(t, eager.Find([]int{}, func(int) bool { return true }).IsNone())
}

func TestGroupPartitionChunk(t *testing.T) {
	groups := eager.GroupBy([]string{"joy", "bob", "joyce"}, func(s string) byte { return s[0] })
	assert.Equal(t, []string{"joy", "joyce"}, groups['j'])

	even, odd := eager.Partition([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{1, 3}, odd)

	in := []int{1, 2, 3, 4, 5}
	chunks := eager.Chunk(in, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	chunks[0][0] = 99
	assert.Equal(t, 1, in[0])
	assert.Panics(t, func() { eager.Chunk(in, 0) })
}
