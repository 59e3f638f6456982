package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/charmingruby/lazyseq/pipeline"
	"github.com/charmingruby/lazyseq/seqmetrics"
	"github.com/charmingruby/lazyseq/task"
)

func newRunCmd() *cobra.Command {
	var (
		withMetrics, withTrace bool
		timeout                time.Duration
	)
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a pipeline document",
		Long: `Run compiles the pipeline document at FILE and prints the terminal result.
Interrupting the process, or exceeding --timeout, cancels the run between
two pulls.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFor(cmd, withTrace)
			if err != nil {
				return err
			}
			doc, err := pipeline.Load(args[0])
			if err != nil {
				return err
			}

			var opts []pipeline.CompileOption
			if withTrace {
				opts = append(opts, pipeline.WithTrace(logger))
			}
			reg := prometheus.NewRegistry()
			if withMetrics {
				m, err := seqmetrics.New(reg)
				if err != nil {
					return err
				}
				opts = append(opts, pipeline.WithMetrics(m))
			}

			p, err := pipeline.Compile(doc, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			out, err := task.Timeout(p.Task(), timeout)(ctx)
			if err != nil {
				return fmt.Errorf("%s: pipeline failed: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if withMetrics {
				return printCounters(cmd.OutOrStdout(), reg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "Print per-stage pull counters after the run")
	cmd.Flags().BoolVar(&withTrace, "trace", false, "Log every element leaving every stage (implies debug level)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Cancel the run after this long (0 disables)")
	return cmd
}

func printCounters(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			stage := ""
			for _, label := range metric.GetLabel() {
				if label.GetName() == "stage" {
					stage = label.GetValue()
				}
			}
			lines = append(lines, fmt.Sprintf("%s{stage=%q} %g", family.GetName(), stage, metric.GetCounter().GetValue()))
		}
	}
	slices.Sort(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
