package main

import (
	"fmt"
	"os"

	"github.com/aretw0/aegraph/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// interactive reports whether stdout is a terminal.
func interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printMarkdown renders markdown with glamour on a terminal and as-is otherwise.
func printMarkdown(cmd *cobra.Command, markdown string) error {
	render := tui.Plain
	if interactive() {
		render = tui.NewRenderer()
	}
	out, err := render(markdown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
