package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/internal/presentation/tui"
	"github.com/aretw0/aegraph/pkg/adapters/memory"
	"github.com/aretw0/aegraph/pkg/proof"
	"github.com/spf13/cobra"
)

var errUnproven = errors.New("proof does not reach its goal")

var checkCmd = &cobra.Command{
	Use:   "check <exercise-id | file.yaml>",
	Short: "Check recorded proofs",
	Long: `Replays the recorded steps of an exercise and reports, for each step, the
resulting graph and whether it is semantically entailed by the previous one.

The argument is either an exercise id from the library or a YAML file holding a
sequence of exercises, in which case every exercise in the file is checked.`,
	Example: `  aegraph check modus-ponens
  aegraph check --dir ./library my-proof
  aegraph check proofs.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		if isYAMLFile(args[0]) {
			return checkFile(cmd, engine, args[0])
		}
		report, err := engine.CheckExercise(cmd.Context(), args[0])
		return printReport(cmd, report, err)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func isYAMLFile(arg string) bool {
	switch filepath.Ext(arg) {
	case ".yaml", ".yml":
		info, err := os.Stat(arg)
		return err == nil && !info.IsDir()
	}
	return false
}

func checkFile(cmd *cobra.Command, engine *aegraph.Engine, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	loader, err := memory.NewFromYAML(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	ids, err := loader.ListExercises(cmd.Context())
	if err != nil {
		return err
	}

	var failed error
	for _, id := range ids {
		ex, err := loader.GetExercise(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "== %s\n", id)
		report, err := engine.Check(cmd.Context(), *ex)
		if err := printReport(cmd, report, err); err != nil {
			failed = errors.Join(failed, fmt.Errorf("%s: %w", id, err))
		}
	}
	return failed
}

// printReport renders whatever report exists and turns an unproven result
// into an error so the exit status reflects it.
func printReport(cmd *cobra.Command, report *proof.Report, err error) error {
	if report != nil {
		if perr := printMarkdown(cmd, tui.ReportMarkdown(report)); perr != nil {
			return perr
		}
	}
	if err != nil {
		return err
	}
	if !report.Proven() {
		return errUnproven
	}
	return nil
}
