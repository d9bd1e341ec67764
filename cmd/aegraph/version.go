package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/aegraph"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aegraph",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aegraph version %s\n", strings.TrimSpace(aegraph.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
