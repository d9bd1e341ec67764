package main

import (
	"os"
	"strings"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/internal/cli"
	"github.com/aretw0/aegraph/internal/presentation/tui"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl [graph]",
	Short: "Explore a graph interactively",
	Long: `Starts an interactive session on one graph. Type 'help' for the commands;
'exercise <id>' loads a premise from the library and tracks its goal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		var start *graph.Graph
		if len(args) == 1 {
			if start, err = engine.Parse(args[0]); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		opts := []cli.Option{cli.WithLogger(logger)}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			tui.PrintBanner(out, strings.TrimSpace(aegraph.Version))
			opts = append(opts, cli.WithPrompt(tui.Prompt()), cli.WithRenderer(tui.NewRenderer()))
		} else {
			opts = append(opts, cli.WithPrompt(""))
		}

		return cli.NewREPL(engine, out, start, opts...).Run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
