package graph

import (
	"slices"
	"strings"
)

// Graph is an immutable node of an Alpha Existential Graph: the Sheet of
// Assertion at the root, or a Cut anywhere below it.
type Graph struct {
	sheet    bool
	atoms    []string
	children []*Graph

	// text is the canonical serialization, fixed at construction.
	text string
}

// Member is one element of a level: either an atom or a nested cut.
type Member struct {
	Atom string
	Cut  *Graph
}

// IsAtom reports whether the member is an atom.
func (m Member) IsAtom() bool { return m.Cut == nil }

// String returns the atom name or the canonical text of the cut.
func (m Member) String() string {
	if m.Cut != nil {
		return m.Cut.text
	}
	return m.Atom
}

// Equal compares two members structurally.
func (m Member) Equal(other Member) bool {
	if m.IsAtom() != other.IsAtom() {
		return false
	}
	if m.IsAtom() {
		return m.Atom == other.Atom
	}
	return m.Cut.text == other.Cut.text
}

// Empty returns the empty Sheet of Assertion "()".
func Empty() *Graph {
	return build(true, nil, nil)
}

// New builds a canonical graph from its parts. Atoms are trimmed and
// validated; children must be cuts. The slices are copied.
func New(sheet bool, atoms []string, children []*Graph) (*Graph, error) {
	own := make([]string, 0, len(atoms))
	for _, a := range atoms {
		tok := strings.TrimSpace(a)
		if reason := invalidAtom(tok); reason != "" {
			return nil, &SyntaxError{Offset: -1, Reason: reason}
		}
		own = append(own, tok)
	}
	for _, c := range children {
		if c == nil {
			return nil, &SyntaxError{Offset: -1, Reason: "nil subgraph"}
		}
		if c.sheet {
			return nil, &SyntaxError{Offset: -1, Reason: "a sheet cannot be nested inside another graph"}
		}
	}
	return build(sheet, own, slices.Clone(children)), nil
}

// build canonicalizes a node whose parts are already valid and owned.
func build(sheet bool, atoms []string, children []*Graph) *Graph {
	slices.Sort(atoms)
	slices.SortStableFunc(children, func(a, b *Graph) int {
		return strings.Compare(a.text, b.text)
	})
	g := &Graph{sheet: sheet, atoms: atoms, children: children}
	g.text = g.render()
	return g
}

func (g *Graph) render() string {
	parts := make([]string, 0, len(g.atoms)+len(g.children))
	parts = append(parts, g.atoms...)
	for _, c := range g.children {
		parts = append(parts, c.text)
	}
	left, right := "[", "]"
	if g.sheet {
		left, right = "(", ")"
	}
	return left + strings.Join(parts, ", ") + right
}

// String returns the canonical serialization.
func (g *Graph) String() string {
	if g == nil {
		return ""
	}
	return g.text
}

// Equal reports whether two graphs have the same canonical form.
func (g *Graph) Equal(other *Graph) bool {
	return Equal(g, other)
}

// Equal reports whether a and b have the same canonical form.
// Two nil graphs are equal; a nil graph never equals a non-nil one.
func Equal(a, b *Graph) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.text == b.text
}

// IsSheet reports whether g is the Sheet of Assertion.
func (g *Graph) IsSheet() bool { return g.sheet }

// Size is the number of members at this level.
func (g *Graph) Size() int { return len(g.atoms) + len(g.children) }

// NumAtoms is the number of atoms at this level.
func (g *Graph) NumAtoms() int { return len(g.atoms) }

// NumSubgraphs is the number of cuts at this level.
func (g *Graph) NumSubgraphs() int { return len(g.children) }

// Atoms returns a copy of the atoms at this level, in canonical order.
func (g *Graph) Atoms() []string { return slices.Clone(g.atoms) }

// Subgraphs returns the cuts at this level, in canonical order.
func (g *Graph) Subgraphs() []*Graph { return slices.Clone(g.children) }

// Subgraph returns the i-th cut, or nil when i is out of range.
func (g *Graph) Subgraph(i int) *Graph {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.children[i]
}

// Member returns the member selected by index i using path addressing.
func (g *Graph) Member(i int) (Member, bool) {
	switch {
	case i < 0 || i >= g.Size():
		return Member{}, false
	case i < len(g.children):
		return Member{Cut: g.children[i]}, true
	default:
		return Member{Atom: g.atoms[i-len(g.children)]}, true
	}
}
