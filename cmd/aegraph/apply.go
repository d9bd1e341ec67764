package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/aegraph/internal/dto"
	"github.com/aretw0/aegraph/pkg/proof"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <graph> <rule> <path> [members]",
	Short: "Apply one move and print the resulting graph",
	Example: `  aegraph apply "(A, [A, [B]])" deiteration 0,1
  aegraph apply "(A, B)" insert-double-cut "[]" 0,1`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		g, err := engine.Parse(args[0])
		if err != nil {
			return err
		}
		step, err := dto.DecodeStep(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		m, err := proof.MoveFromStep(step)
		if err != nil {
			return err
		}
		next, err := engine.Apply(cmd.Context(), g, m)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
