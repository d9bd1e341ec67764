package main

import (
	"fmt"

	"github.com/aretw0/aegraph/pkg/semantics"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <graph>",
	Short: "Parse a graph and print its canonical form",
	Example: `  aegraph parse "(B, [A], A)"
  aegraph parse --semantics "([A, [B]], A)"`,
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

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, g)

		if show, _ := cmd.Flags().GetBool("semantics"); show {
			fmt.Fprintf(out, "members: %d\n", g.Size())
			fmt.Fprintf(out, "satisfiable: %t\n", semantics.Satisfiable(g))
			fmt.Fprintf(out, "valid: %t\n", semantics.Valid(g))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("semantics", false, "Also report satisfiability and validity")
}
