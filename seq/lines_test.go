package seq_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyseq/seq"
)

func TestLinesParsesNumbers(t *testing.T) {
	src := seq.Lines(strings.NewReader("1\nabc\n42\n"))
	numbers := seq.Map(src.Sequence(), func(line string) *int {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil
		}
		return &n
	})
	got := numbers.ToList()
	require.NoError(t, src.Err())
	require.Len(t, got, 3)
	assert.Equal(t, 1, *got[0])
	assert.Nil(t, got[1])
	assert.Equal(t, 42, *got[2])
}

func TestLinesAreSingleUse(t *testing.T) {
	src := seq.Lines(strings.NewReader("a\nb\nc"))
	lines := src.Sequence()
	assert.Equal(t, []string{"a"}, lines.Take(1).ToList())
	assert.Equal(t, []string{"b", "c"}, lines.ToList())
	assert.Empty(t, lines.ToList())
}

func TestLinesReportReadError(t *testing.T) {
	boom := errors.New("disk gone")
	src := seq.Lines(iotest.ErrReader(boom))
	assert.Empty(t, src.Sequence().ToList())
	assert.ErrorIs(t, src.Err(), boom)
}
