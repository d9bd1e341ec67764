package main

import (
	"github.com/aretw0/aegraph/internal/presentation/tui"
	"github.com/aretw0/aegraph/pkg/rules"
	"github.com/spf13/cobra"
)

var movesCmd = &cobra.Command{
	Use:   "moves <graph>",
	Short: "List the legal moves on a graph",
	Example: `  aegraph moves "(A, [A, [B]])"
  aegraph moves --rule erasure "(A, B)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		g, err := engine.Parse(args[0])
		if err != nil {
			return err
		}

		var moves []rules.Move
		if name, _ := cmd.Flags().GetString("rule"); name != "" {
			r, err := rules.ParseRule(name)
			if err != nil {
				return err
			}
			if moves, err = engine.Moves(cmd.Context(), g, r); err != nil {
				return err
			}
		} else {
			moves = engine.AllMoves(cmd.Context(), g)
		}
		return printMarkdown(cmd, tui.MovesMarkdown(g, moves))
	},
}

func init() {
	rootCmd.AddCommand(movesCmd)
	movesCmd.Flags().String("rule", "", "Only list moves of this rule")
}
