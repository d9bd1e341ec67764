package dsl

import "strings"

// Term is a member of a graph: an atom or a cut.
type Term struct {
	atom string
	cut  []Term
}

// Atom is a propositional variable.
func Atom(name string) Term {
	return Term{atom: name}
}

// Cut encloses terms in a negation.
func Cut(terms ...Term) Term {
	if terms == nil {
		terms = []Term{}
	}
	return Term{cut: terms}
}

// String renders the term in the textual grammar.
func (t Term) String() string {
	if t.cut == nil {
		return t.atom
	}
	return "[" + join(t.cut) + "]"
}

// Sheet renders terms as a Sheet of Assertion in the textual grammar.
// The result is not canonical; graph.Parse normalizes it.
func Sheet(terms ...Term) string {
	return "(" + join(terms) + ")"
}

func join(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
