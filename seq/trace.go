package seq

import (
	"context"
	"log/slog"
)

// Trace logs every element passing through at debug level under the given
// stage name. A nil logger uses slog.Default.
func Trace[T any](s Sequence[T], logger *slog.Logger, stage string) Sequence[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return s.OnEach(func(v T) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "element pulled",
			slog.String("stage", stage),
			slog.Any("value", v),
		)
	})
}
