package main

import (
	"fmt"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the exercise library for consistency",
	Long: `Loads every exercise, parses its premise and goal and replays its recorded
proof. Broken graphs, refused steps and proofs that miss their goal are reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		if engine.Loader() == nil {
			return aegraph.ErrNoLibrary
		}

		sum, err := validator.ValidateLibrary(cmd.Context(), engine.Loader())
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Library is valid! %d exercises, %d proven, %d open ✅\n", sum.Exercises, sum.Proven, sum.Open)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
