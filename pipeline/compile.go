package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmingruby/lazyseq/fp"
	"github.com/charmingruby/lazyseq/seq"
	"github.com/charmingruby/lazyseq/seqmetrics"
	"github.com/charmingruby/lazyseq/validated"
)

var (
	// ErrUnknownOp reports a map, predicate or terminal name that does not
	// exist.
	ErrUnknownOp = errors.New("pipeline: unknown operation")
	// ErrInvalidArgument reports a malformed or out of range argument.
	ErrInvalidArgument = errors.New("pipeline: invalid argument")
	// ErrSource reports a source with zero or several kinds set.
	ErrSource = errors.New("pipeline: source must set exactly one of range, generate, values")
	// ErrStage reports a stage with zero or several operations set.
	ErrStage = errors.New("pipeline: stage must set exactly one operation")
	// ErrUnbounded reports an infinite source drained without a bounding
	// takeWhile or take stage.
	ErrUnbounded = errors.New("pipeline: generate source is never bounded")
)

// Pipeline is a compiled document ready to run any number of times.
type Pipeline struct {
	elements seq.Sequence[int64]
	terminal terminal
}

type stageFn func(seq.Sequence[int64]) seq.Sequence[int64]

type compileConfig struct {
	logger  *slog.Logger
	metrics *seqmetrics.Metrics
}

// CompileOption configures Compile.
type CompileOption func(*compileConfig)

// WithTrace logs every element leaving every stage at debug level.
func WithTrace(logger *slog.Logger) CompileOption {
	return func(c *compileConfig) {
		c.logger = logger
	}
}

// WithMetrics counts elements leaving every stage.
func WithMetrics(m *seqmetrics.Metrics) CompileOption {
	return func(c *compileConfig) {
		c.metrics = m
	}
}

// Compile validates doc and builds its sequence chain. All problems found
// are joined into the returned error.
func Compile(doc *Document, opts ...CompileOption) (*Pipeline, error) {
	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	source := compileSource(doc.Source)
	stages := make([]validated.Validated[error, stageFn], len(doc.Stages))
	for i, st := range doc.Stages {
		stages[i] = compileStage(i, st)
	}
	term := compileTerminal(doc.Terminal)

	bounded := validated.Valid[error](struct{}{})
	if doc.Source.Generate != nil && term.UnsafeValue().drains && !anyBounds(doc.Stages) {
		bounded = validated.Invalid[error, struct{}](ErrUnbounded)
	}

	chain := validated.Map2(source, validated.Sequence(stages), func(src seq.Sequence[int64], fns []stageFn) seq.Sequence[int64] {
		observed := make([]func(seq.Sequence[int64]) seq.Sequence[int64], len(fns))
		for i, fn := range fns {
			observed[i] = fp.Compose[seq.Sequence[int64]](cfg.observer(fmt.Sprintf("%d:%s", i+1, doc.Stages[i])), fn)
		}
		return fp.Pipe(cfg.observe(src, "source"), observed...)
	})
	withTerminal := validated.Map2(chain, term, func(elements seq.Sequence[int64], t terminal) *Pipeline {
		return &Pipeline{elements: elements, terminal: t}
	})
	compiled := validated.Map2(withTerminal, bounded, func(p *Pipeline, _ struct{}) *Pipeline { return p })
	return validated.ToResult(compiled).Unwrap()
}

// observer returns the wrapping applied after a stage, or Identity when
// neither tracing nor metrics are configured.
func (c compileConfig) observer(stage string) func(seq.Sequence[int64]) seq.Sequence[int64] {
	if c.logger == nil && c.metrics == nil {
		return fp.Identity[seq.Sequence[int64]]
	}
	return func(s seq.Sequence[int64]) seq.Sequence[int64] {
		return c.observe(s, stage)
	}
}

func (c compileConfig) observe(s seq.Sequence[int64], stage string) seq.Sequence[int64] {
	if c.logger != nil {
		s = seq.Trace(s, c.logger, stage)
	}
	if c.metrics != nil {
		s = seqmetrics.Instrument(s, c.metrics, stage)
	}
	return s
}

func compileSource(src Source) validated.Validated[error, seq.Sequence[int64]] {
	kinds := 0
	for _, set := range []bool{src.Range != nil, src.Generate != nil, src.Values != nil} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return validated.Invalid[error, seq.Sequence[int64]](ErrSource)
	}
	switch {
	case src.Range != nil:
		return validated.Valid[error](seq.Range(src.Range.From, src.Range.To))
	case src.Generate != nil:
		step := src.Generate.Step
		return validated.Valid[error](seq.Generate(src.Generate.Seed, func(v int64) int64 { return v + step }))
	default:
		return validated.Valid[error](seq.FromSlice(src.Values))
	}
}

func compileStage(idx int, st Stage) validated.Validated[error, stageFn] {
	fail := func(err error) validated.Validated[error, stageFn] {
		return validated.Invalid[error, stageFn](fmt.Errorf("stage %d: %w", idx+1, err))
	}
	if st.fieldCount() != 1 {
		return fail(ErrStage)
	}
	switch {
	case st.Map != "":
		fn, err := parseMap(st.Map)
		if err != nil {
			return fail(err)
		}
		return validated.Valid[error, stageFn](func(s seq.Sequence[int64]) seq.Sequence[int64] {
			return seq.Map(s, fn)
		})
	case st.Filter != "", st.TakeWhile != "", st.DropWhile != "":
		return compilePredicateStage(st, fail)
	case st.Take != nil, st.Drop != nil:
		n, take := st.Drop, false
		if st.Take != nil {
			n, take = st.Take, true
		}
		if *n < 0 {
			return fail(fmt.Errorf("%w: %s is negative", ErrInvalidArgument, st))
		}
		return validated.Valid[error, stageFn](func(s seq.Sequence[int64]) seq.Sequence[int64] {
			if take {
				return s.Take(*n)
			}
			return s.Drop(*n)
		})
	default:
		return validated.Valid[error, stageFn](seq.Distinct[int64])
	}
}

func compilePredicateStage(st Stage, fail func(error) validated.Validated[error, stageFn]) validated.Validated[error, stageFn] {
	expr, apply := st.Filter, seq.Sequence[int64].Filter
	switch {
	case st.TakeWhile != "":
		expr, apply = st.TakeWhile, seq.Sequence[int64].TakeWhile
	case st.DropWhile != "":
		expr, apply = st.DropWhile, seq.Sequence[int64].DropWhile
	}
	pred, err := parsePredicate(expr)
	if err != nil {
		return fail(err)
	}
	return validated.Valid[error, stageFn](func(s seq.Sequence[int64]) seq.Sequence[int64] {
		return apply(s, pred)
	})
}

func anyBounds(stages []Stage) bool {
	for _, st := range stages {
		if st.bounds() {
			return true
		}
	}
	return false
}

func normalizeTerminal(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "list"
	}
	return name
}
