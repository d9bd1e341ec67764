package graph

import (
	"errors"
	"fmt"
	"slices"
)

// Rewrite returns a copy of g in which the node at level has been replaced by
// fn's result. Every node on the way down is rebuilt and re-canonicalized;
// all other subtrees are shared with g. Path errors returned by fn are
// reported relative to the root.
func (g *Graph) Rewrite(level Path, fn func(*Graph) (*Graph, error)) (*Graph, error) {
	return g.rewrite(level, 0, fn)
}

func (g *Graph) rewrite(level Path, depth int, fn func(*Graph) (*Graph, error)) (*Graph, error) {
	if depth == len(level) {
		out, err := fn(g)
		var pe *PathError
		if errors.As(err, &pe) {
			pe.Path = level.Child(pe.Path...)
		}
		if err != nil {
			return nil, err
		}
		if out.sheet != g.sheet {
			return nil, &PathError{Path: level.Clone(), Reason: "rewrite changed the node kind"}
		}
		return out, nil
	}

	idx := level[depth]
	if err := g.checkIndex(level, depth, idx); err != nil {
		return nil, err
	}
	if idx >= len(g.children) {
		return nil, &PathError{Path: level.Clone(), Reason: fmt.Sprintf("index %d at depth %d addresses an atom, not a cut", idx, depth)}
	}

	child, err := g.children[idx].rewrite(level, depth+1, fn)
	if err != nil {
		return nil, err
	}
	children := slices.Clone(g.children)
	children[idx] = child
	return build(g.sheet, slices.Clone(g.atoms), children), nil
}

// WithoutMember returns g with the member at index i removed.
func (g *Graph) WithoutMember(i int) (*Graph, error) {
	return g.ReplaceMember(i, nil, nil)
}

// ReplaceMember returns g with the member at index i removed and the given
// atoms and cuts added to the same level.
func (g *Graph) ReplaceMember(i int, atoms []string, children []*Graph) (*Graph, error) {
	if err := g.checkMember(i); err != nil {
		return nil, err
	}
	for _, c := range children {
		if c == nil || c.sheet {
			return nil, &PathError{Path: Path{i}, Reason: "replacement must be a cut"}
		}
	}

	keptAtoms := make([]string, 0, len(g.atoms)+len(atoms))
	keptChildren := make([]*Graph, 0, len(g.children)+len(children))
	for j, c := range g.children {
		if j != i {
			keptChildren = append(keptChildren, c)
		}
	}
	for j, a := range g.atoms {
		if len(g.children)+j != i {
			keptAtoms = append(keptAtoms, a)
		}
	}
	keptAtoms = append(keptAtoms, atoms...)
	keptChildren = append(keptChildren, children...)
	return build(g.sheet, keptAtoms, keptChildren), nil
}

// WrapMembers returns g with the selected members moved inside a new double
// cut "[[...]]" at the same level. An empty selection adds an empty double cut.
func (g *Graph) WrapMembers(indices []int) (*Graph, error) {
	picked := make(map[int]bool, len(indices))
	for _, i := range indices {
		if err := g.checkMember(i); err != nil {
			return nil, err
		}
		if picked[i] {
			return nil, &PathError{Path: Path{i}, Reason: fmt.Sprintf("member %d selected twice", i)}
		}
		picked[i] = true
	}

	var inAtoms, outAtoms []string
	var inChildren, outChildren []*Graph
	for j, c := range g.children {
		if picked[j] {
			inChildren = append(inChildren, c)
		} else {
			outChildren = append(outChildren, c)
		}
	}
	for j, a := range g.atoms {
		if picked[len(g.children)+j] {
			inAtoms = append(inAtoms, a)
		} else {
			outAtoms = append(outAtoms, a)
		}
	}

	inner := build(false, inAtoms, inChildren)
	outer := build(false, nil, []*Graph{inner})
	return build(g.sheet, outAtoms, append(outChildren, outer)), nil
}

// checkMember validates a level-relative member index. The error path is
// relative; Rewrite prefixes it with the level's path.
func (g *Graph) checkMember(i int) error {
	if i < 0 || i >= g.Size() {
		return &PathError{Path: Path{i}, Reason: fmt.Sprintf("member %d is out of range for a level of size %d", i, g.Size())}
	}
	return nil
}
