package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises [id]",
	Aliases: []string{"ls"},
	Short:   "List the exercise library or show one exercise",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			ex, err := engine.Exercise(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ex.Title != "" {
				fmt.Fprintf(out, "%s\n\n", ex.Title)
			}
			if ex.Description != "" {
				fmt.Fprintf(out, "%s\n\n", ex.Description)
			}
			fmt.Fprintf(out, "premise: %s\ngoal:    %s\nsteps:   %d\n", ex.Premise, ex.Goal, len(ex.Steps))
			return nil
		}

		ids, err := engine.Exercises(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(out, id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
}
