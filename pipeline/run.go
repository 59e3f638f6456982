package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmingruby/lazyseq/seq"
	"github.com/charmingruby/lazyseq/task"
	"github.com/charmingruby/lazyseq/validated"
)

// Output is what a terminal operation produced. Value holds []int64 for
// list, int64 for sum, int for count and option.Option[int64] for first and
// find.
type Output struct {
	Terminal string
	Value    any
}

// String renders the value the way the CLI prints it.
func (o Output) String() string {
	return fmt.Sprintf("%s: %v", o.Terminal, o.Value)
}

type terminal struct {
	name   string
	drains bool
	run    func(ctx context.Context, s seq.Sequence[int64]) (any, error)
}

// Task returns one execution of the pipeline as a task. Every execution
// opens a fresh cursor and checks the task's context before each pull, so
// cancelling it stops an otherwise endless run.
func (p *Pipeline) Task() task.Task[Output] {
	run := task.From(func(ctx context.Context) (any, error) {
		return p.terminal.run(ctx, p.elements.WithContext(ctx))
	})
	return task.Map(run, func(value any) Output {
		return Output{Terminal: p.terminal.name, Value: value}
	})
}

// Run executes the pipeline once under ctx.
func (p *Pipeline) Run(ctx context.Context) (Output, error) {
	out, err := p.Task()(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("pipeline: %s: %w", p.terminal.name, err)
	}
	return out, nil
}

// Run compiles doc and runs it once.
func Run(ctx context.Context, doc *Document, opts ...CompileOption) (Output, error) {
	p, err := Compile(doc, opts...)
	if err != nil {
		return Output{}, err
	}
	return p.Run(ctx)
}

func compileTerminal(raw string) validated.Validated[error, terminal] {
	name := normalizeTerminal(raw)
	switch name {
	case "list":
		return validated.Valid[error](terminal{name: name, drains: true, run: func(ctx context.Context, s seq.Sequence[int64]) (any, error) {
			return seq.CollectContext(ctx, s)
		}})
	case "sum":
		return validated.Valid[error](terminal{name: name, drains: true, run: func(_ context.Context, s seq.Sequence[int64]) (any, error) {
			return seq.SumChecked(s)
		}})
	case "count":
		return validated.Valid[error](terminal{name: name, drains: true, run: func(_ context.Context, s seq.Sequence[int64]) (any, error) {
			return s.Count(), nil
		}})
	case "first":
		return validated.Valid[error](terminal{name: name, run: func(_ context.Context, s seq.Sequence[int64]) (any, error) {
			return s.First(), nil
		}})
	}
	if expr, ok := strings.CutPrefix(name, "find:"); ok {
		pred, err := parsePredicate(expr)
		if err != nil {
			return validated.Invalid[error, terminal](fmt.Errorf("terminal: %w", err))
		}
		return validated.Valid[error](terminal{name: "find", run: func(_ context.Context, s seq.Sequence[int64]) (any, error) {
			return s.Find(pred), nil
		}})
	}
	return validated.Invalid[error, terminal](fmt.Errorf("%w: terminal %q", ErrUnknownOp, raw))
}
