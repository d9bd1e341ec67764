// Package proof replays recorded derivations.
//
// A proof is a premise, a goal and a sequence of moves. Check applies the
// moves one at a time, refusing any move that is not legal at that point,
// and reports whether the last graph equals the goal. It never searches for
// moves of its own.
package proof

import (
	"fmt"

	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/rules"
	"github.com/aretw0/aegraph/pkg/semantics"
)

// Proof is a parsed derivation.
type Proof struct {
	Premise *graph.Graph
	Goal    *graph.Graph
	Moves   []rules.Move
}

// StepReport records one replayed move.
type StepReport struct {
	Index  int        `json:"index"`
	Move   rules.Move `json:"move"`
	Result string     `json:"result"`
	// Sound is true when the graph before the move entails the result.
	Sound bool `json:"sound"`
}

// Report is the outcome of Check.
type Report struct {
	Premise string       `json:"premise"`
	Goal    string       `json:"goal"`
	Final   string       `json:"final"`
	Steps   []StepReport `json:"steps"`
	// Complete is false when a step was refused.
	Complete    bool `json:"complete"`
	GoalReached bool `json:"goal_reached"`
}

// Proven reports whether every step was legal and the goal was reached.
func (r *Report) Proven() bool {
	return r.Complete && r.GoalReached
}

// StepError reports the first step that could not be replayed.
type StepError struct {
	Index int
	Move  rules.Move
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Move, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Compile parses an exercise into a Proof.
func Compile(ex domain.Exercise) (*Proof, error) {
	premise, err := graph.Parse(ex.Premise)
	if err != nil {
		return nil, fmt.Errorf("premise: %w", err)
	}
	goal, err := graph.Parse(ex.Goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	p := &Proof{Premise: premise, Goal: goal, Moves: make([]rules.Move, 0, len(ex.Steps))}
	for i, s := range ex.Steps {
		m, err := MoveFromStep(s)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		p.Moves = append(p.Moves, m)
	}
	return p, nil
}

// MoveFromStep resolves the rule name of a recorded step.
func MoveFromStep(s domain.Step) (rules.Move, error) {
	r, err := rules.ParseRule(s.Rule)
	if err != nil {
		return rules.Move{}, err
	}
	return rules.Move{Rule: r, Path: graph.Path(s.Path).Clone(), Members: s.Members}, nil
}

// Check replays the moves from the premise. Steps are numbered from 1. The
// report is always returned; the error is a *StepError for the first refused
// step.
func (p *Proof) Check() (*Report, error) {
	report := &Report{
		Premise: p.Premise.String(),
		Goal:    p.Goal.String(),
		Steps:   make([]StepReport, 0, len(p.Moves)),
	}

	current := p.Premise
	for i, m := range p.Moves {
		next, err := step(current, m)
		if err != nil {
			report.Final = current.String()
			return report, &StepError{Index: i + 1, Move: m, Err: err}
		}
		report.Steps = append(report.Steps, StepReport{
			Index:  i + 1,
			Move:   m,
			Result: next.String(),
			Sound:  semantics.Entails(current, next),
		})
		current = next
	}

	report.Final = current.String()
	report.Complete = true
	report.GoalReached = current.Equal(p.Goal)
	return report, nil
}

func step(g *graph.Graph, m rules.Move) (*graph.Graph, error) {
	ok, err := rules.Legal(g, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", rules.ErrNotApplicable, m, g)
	}
	return rules.Apply(g, m)
}
