package seq_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/lazyseq/seq"
)

func TestTraceLogsPerElementInPullOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	mapped := seq.Trace(seq.Map(seq.Of(1, 2), func(v int) int { return v * v }), logger, "map")
	filtered := seq.Trace(mapped.Filter(func(v int) bool { return v > 1 }), logger, "filter")
	assert.Equal(t, []int{4}, filtered.ToList())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		`level=DEBUG msg="element pulled" stage=map value=1`,
		`level=DEBUG msg="element pulled" stage=map value=4`,
		`level=DEBUG msg="element pulled" stage=filter value=4`,
	}, lines)
}

func TestTraceSilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	seq.Trace(seq.Of("a"), logger, "src").ToList()
	assert.Zero(t, buf.Len())
}
