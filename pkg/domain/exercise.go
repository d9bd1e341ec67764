package domain

import "fmt"

// Exercise is a derivation task: transform Premise into Goal using the
// inference rules. Graphs are kept in their textual form so the type stays
// independent of the parser.
type Exercise struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Premise     string `json:"premise" yaml:"premise"`
	Goal        string `json:"goal" yaml:"goal"`
	// Steps is an optional recorded proof.
	Steps []Step `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Step is one recorded move. Rule is a rule name as accepted by the rules
// package, Path addresses the member (or, for double-cut insertion, the
// level) and Members selects what to wrap.
type Step struct {
	Rule    string `json:"rule" yaml:"rule"`
	Path    []int  `json:"path" yaml:"path"`
	Members []int  `json:"members,omitempty" yaml:"members,omitempty"`
}

// Validate checks that the exercise carries the fields every consumer needs.
func (e Exercise) Validate() error {
	switch {
	case e.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidExercise)
	case e.Premise == "":
		return fmt.Errorf("%w: %s: missing premise", ErrInvalidExercise, e.ID)
	case e.Goal == "":
		return fmt.Errorf("%w: %s: missing goal", ErrInvalidExercise, e.ID)
	}
	for i, s := range e.Steps {
		if s.Rule == "" {
			return fmt.Errorf("%w: %s: step %d has no rule", ErrInvalidExercise, e.ID, i+1)
		}
	}
	return nil
}
