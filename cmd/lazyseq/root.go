package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/charmingruby/lazyseq/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lazyseq",
		Short:         "lazyseq evaluates lazy, pull-based sequence pipelines",
		Long:          `lazyseq compiles YAML pipeline documents into lazy sequences, runs them, and replays walkthroughs of lazy evaluation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	root.AddCommand(newRunCmd(), newDemoCmd(), newVersionCmd())
	return root
}

func loggerFor(cmd *cobra.Command, forceDebug bool) (*slog.Logger, error) {
	name, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	if forceDebug {
		level = slog.LevelDebug
	}
	return logging.New(cmd.ErrOrStderr(), level), nil
}
