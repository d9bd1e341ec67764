package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/aegraph/pkg/ports"
	"github.com/aretw0/aegraph/pkg/proof"
)

// Summary counts what ValidateLibrary looked at.
type Summary struct {
	Exercises int
	Proven    int
	// Open exercises carry no recorded steps.
	Open int
}

// ValidateLibrary loads every exercise of the library and reports broken
// graphs, undecodable steps and recorded proofs that are refused or stop short
// of their goal. All problems are collected before returning.
func ValidateLibrary(ctx context.Context, loader ports.ExerciseLoader) (Summary, error) {
	var sum Summary

	ids, err := loader.ListExercises(ctx)
	if err != nil {
		return sum, fmt.Errorf("failed to list exercises: %w", err)
	}

	var errors []string
	for _, id := range ids {
		sum.Exercises++

		ex, err := loader.GetExercise(ctx, id)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: load error: %v", id, err))
			continue
		}

		p, err := proof.Compile(*ex)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		if len(p.Moves) == 0 {
			sum.Open++
			continue
		}

		report, err := p.Check()
		switch {
		case err != nil:
			errors = append(errors, fmt.Sprintf("%s: %v", id, err))
		case !report.GoalReached:
			errors = append(errors, fmt.Sprintf("%s: proof ends at %s, goal is %s", id, report.Final, report.Goal))
		default:
			sum.Proven++
		}
	}

	if len(errors) > 0 {
		return sum, fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return sum, nil
}
