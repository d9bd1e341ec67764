package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/internal/logging"
	"github.com/aretw0/aegraph/pkg/dsl"
	"github.com/aretw0/aegraph/pkg/observability"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aegraph",
	Short: "aegraph is a proof assistant for Alpha existential graphs",
	Long: `aegraph parses Alpha existential graphs, lists the moves each inference
rule allows, applies them and checks recorded proofs against a library of exercises.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory containing the exercise library (built-in classics when empty)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("strict", true, "Refuse moves outside the legal set of their rule")
}

// newLogger builds the stderr logger from --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// newEngine wires the engine from the persistent flags. Moves are counted on
// metrics when it is set; extra options are applied last.
func newEngine(cmd *cobra.Command, metrics *observability.Metrics, extra ...aegraph.Option) (*aegraph.Engine, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	dir, _ := cmd.Flags().GetString("dir")
	strict, _ := cmd.Flags().GetBool("strict")

	opts := []aegraph.Option{
		aegraph.WithLogger(logger),
		aegraph.WithStrict(strict),
	}
	if metrics != nil {
		opts = append(opts, aegraph.WithLifecycleHooks(metrics.Hooks()))
	}
	if dir == "" {
		loader, err := dsl.Classics().Build()
		if err != nil {
			return nil, err
		}
		opts = append(opts, aegraph.WithLoader(loader))
	}
	opts = append(opts, extra...)

	engine, err := aegraph.New(dir, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init engine: %w", err)
	}
	return engine, nil
}
