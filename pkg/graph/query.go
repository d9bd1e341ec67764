package graph

import "fmt"

// ContainsAtom reports whether the atom occurs at this level or in any
// nested cut.
func (g *Graph) ContainsAtom(name string) bool {
	for _, a := range g.atoms {
		if a == name {
			return true
		}
	}
	for _, c := range g.children {
		if c.ContainsAtom(name) {
			return true
		}
	}
	return false
}

// ContainsGraph reports whether a cut structurally equal to sub occurs at
// this level or in any nested cut. g itself is not a candidate.
func (g *Graph) ContainsGraph(sub *Graph) bool {
	if sub == nil {
		return false
	}
	for _, c := range g.children {
		if c.text == sub.text || c.ContainsGraph(sub) {
			return true
		}
	}
	return false
}

// Contains reports whether m occurs anywhere below g.
func (g *Graph) Contains(m Member) bool {
	if m.IsAtom() {
		return g.ContainsAtom(m.Atom)
	}
	return g.ContainsGraph(m.Cut)
}

// PathsToAtom returns the paths of every occurrence of the atom, except an
// occurrence that is the sole member of its level.
func (g *Graph) PathsToAtom(name string) []Path {
	return g.PathsTo(Member{Atom: name})
}

// PathsToGraph returns the paths of every cut equal to sub, except an
// occurrence that is the sole member of its level.
func (g *Graph) PathsToGraph(sub *Graph) []Path {
	if sub == nil {
		return nil
	}
	return g.PathsTo(Member{Cut: sub})
}

// PathsTo returns the paths at which m is a direct member of some node,
// skipping occurrences that are the only member of a level of size one.
func (g *Graph) PathsTo(m Member) []Path {
	var out []Path
	g.collect(m, nil, false, &out)
	return out
}

// Occurrences is like PathsTo but also reports sole members.
func (g *Graph) Occurrences(m Member) []Path {
	var out []Path
	g.collect(m, nil, true, &out)
	return out
}

func (g *Graph) collect(m Member, prefix Path, sole bool, out *[]Path) {
	report := sole || g.Size() > 1
	for i, c := range g.children {
		if !m.IsAtom() && c.text == m.Cut.text {
			// A cut never contains a copy of itself, so there is nothing to descend into.
			if report {
				*out = append(*out, prefix.Child(i))
			}
			continue
		}
		c.collect(m, prefix.Child(i), sole, out)
	}
	if !m.IsAtom() {
		return
	}
	for j, a := range g.atoms {
		if a == m.Atom && report {
			*out = append(*out, prefix.Child(len(g.children)+j))
		}
	}
}

// Node returns the sheet or cut addressed by p. The empty path addresses g.
func (g *Graph) Node(p Path) (*Graph, error) {
	cur := g
	for depth, idx := range p {
		if err := cur.checkIndex(p, depth, idx); err != nil {
			return nil, err
		}
		if idx >= len(cur.children) {
			return nil, &PathError{Path: p.Clone(), Reason: fmt.Sprintf("index %d at depth %d addresses an atom, not a cut", idx, depth)}
		}
		cur = cur.children[idx]
	}
	return cur, nil
}

// Resolve returns the member addressed by p.
func (g *Graph) Resolve(p Path) (Member, error) {
	if len(p) == 0 {
		return Member{}, &PathError{Path: Path{}, Reason: "the empty path addresses the sheet, not a member"}
	}
	level, idx := p.Split()
	parent, err := g.Node(level)
	if err != nil {
		return Member{}, err
	}
	if err := parent.checkIndex(p, len(level), idx); err != nil {
		return Member{}, err
	}
	m, _ := parent.Member(idx)
	return m, nil
}

func (g *Graph) checkIndex(p Path, depth, idx int) error {
	if idx < 0 || idx >= g.Size() {
		return &PathError{Path: p.Clone(), Reason: fmt.Sprintf("index %d at depth %d is out of range for a level of size %d", idx, depth, g.Size())}
	}
	return nil
}
