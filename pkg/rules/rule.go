package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/aegraph/pkg/graph"
)

// Rule names an inference rule.
type Rule string

const (
	// RuleDoubleCut removes a double cut.
	RuleDoubleCut Rule = "double-cut"
	// RuleInsertDoubleCut wraps members of a level in a new double cut.
	RuleInsertDoubleCut Rule = "insert-double-cut"
	// RuleErasure removes a member from a positive context.
	RuleErasure Rule = "erasure"
	// RuleDeiteration removes a copy justified by an enclosing level.
	RuleDeiteration Rule = "deiteration"
)

var (
	// ErrUnknownRule is returned when a rule name is not recognized.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrNotApplicable is returned when a move is not legal for the given graph.
	ErrNotApplicable = errors.New("rule not applicable")
	// ErrNotEnumerable is returned for rules whose legal moves are not listed.
	ErrNotEnumerable = errors.New("rule moves are not enumerable")
)

// Removal lists the rules whose legal positions are enumerated, in display order.
var Removal = []Rule{RuleDoubleCut, RuleErasure, RuleDeiteration}

var aliases = map[string]Rule{
	"double-cut":        RuleDoubleCut,
	"doublecut":         RuleDoubleCut,
	"double_cut":        RuleDoubleCut,
	"dc":                RuleDoubleCut,
	"insert-double-cut": RuleInsertDoubleCut,
	"insert_double_cut": RuleInsertDoubleCut,
	"idc":               RuleInsertDoubleCut,
	"erasure":           RuleErasure,
	"erase":             RuleErasure,
	"deiteration":       RuleDeiteration,
	"deiterate":         RuleDeiteration,
}

// ParseRule resolves a rule name or one of its short aliases.
func ParseRule(name string) (Rule, error) {
	r, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return r, nil
}

// Move is one application of a rule. For RuleInsertDoubleCut, Path addresses
// the level (sheet or cut) and Members selects what to wrap; for the other
// rules Path addresses the member being removed.
type Move struct {
	Rule    Rule       `json:"rule" yaml:"rule" mapstructure:"rule"`
	Path    graph.Path `json:"path" yaml:"path" mapstructure:"path"`
	Members []int      `json:"members,omitempty" yaml:"members,omitempty" mapstructure:"members"`
}

func (m Move) String() string {
	if m.Rule == RuleInsertDoubleCut {
		return fmt.Sprintf("%s %s %v", m.Rule, m.Path, m.Members)
	}
	return fmt.Sprintf("%s %s", m.Rule, m.Path)
}

// Possible returns the legal paths for a removal rule.
func Possible(g *graph.Graph, r Rule) ([]graph.Path, error) {
	switch r {
	case RuleDoubleCut:
		return PossibleDoubleCuts(g), nil
	case RuleErasure:
		return PossibleErasures(g), nil
	case RuleDeiteration:
		return PossibleDeiterations(g), nil
	case RuleInsertDoubleCut:
		return nil, fmt.Errorf("%w: %s", ErrNotEnumerable, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, r)
	}
}

// Enumerate returns every legal move of rule r on g.
func Enumerate(g *graph.Graph, r Rule) ([]Move, error) {
	paths, err := Possible(g, r)
	if err != nil {
		return nil, err
	}
	moves := make([]Move, len(paths))
	for i, p := range paths {
		moves[i] = Move{Rule: r, Path: p}
	}
	return moves, nil
}

// EnumerateAll returns the legal moves of every removal rule, grouped in the
// order of Removal.
func EnumerateAll(g *graph.Graph) []Move {
	var moves []Move
	for _, r := range Removal {
		m, _ := Enumerate(g, r)
		moves = append(moves, m...)
	}
	return moves
}

// Legal reports whether m may be applied to g. Double-cut insertion is legal
// wherever its level and member selection resolve.
func Legal(g *graph.Graph, m Move) (bool, error) {
	if m.Rule == RuleInsertDoubleCut {
		_, err := InsertDoubleCut(g, m.Path, m.Members)
		if errors.Is(err, graph.ErrInvalidPath) {
			return false, nil
		}
		return err == nil, err
	}
	paths, err := Possible(g, m.Rule)
	if err != nil {
		return false, err
	}
	for _, p := range paths {
		if p.Equal(m.Path) {
			return true, nil
		}
	}
	return false, nil
}

// Apply performs m on g without checking legality beyond the structural
// preconditions of the rule.
func Apply(g *graph.Graph, m Move) (*graph.Graph, error) {
	switch m.Rule {
	case RuleDoubleCut:
		return DoubleCut(g, m.Path)
	case RuleInsertDoubleCut:
		return InsertDoubleCut(g, m.Path, m.Members)
	case RuleErasure:
		return Erase(g, m.Path)
	case RuleDeiteration:
		return Deiterate(g, m.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, m.Rule)
	}
}

// remove deletes the member at p from its parent level.
func remove(g *graph.Graph, p graph.Path) (*graph.Graph, error) {
	if len(p) == 0 {
		return nil, &graph.PathError{Path: graph.Path{}, Reason: "the sheet itself cannot be removed"}
	}
	level, idx := p.Split()
	return g.Rewrite(level, func(n *graph.Graph) (*graph.Graph, error) {
		return n.WithoutMember(idx)
	})
}
