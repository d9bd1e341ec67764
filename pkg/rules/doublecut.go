package rules

import "github.com/aretw0/aegraph/pkg/graph"

// isDoubleCut reports whether n is a cut whose only member is another cut.
func isDoubleCut(n *graph.Graph) bool {
	return !n.IsSheet() && n.NumAtoms() == 0 && n.NumSubgraphs() == 1
}

// PossibleDoubleCuts returns the path of every removable double cut, in
// pre-order. The path addresses the outer cut.
func PossibleDoubleCuts(g *graph.Graph) []graph.Path {
	var out []graph.Path
	walkDoubleCuts(g, graph.Path{}, &out)
	return out
}

func walkDoubleCuts(n *graph.Graph, at graph.Path, out *[]graph.Path) {
	if isDoubleCut(n) {
		*out = append(*out, at)
	}
	for i := 0; i < n.NumSubgraphs(); i++ {
		walkDoubleCuts(n.Subgraph(i), at.Child(i), out)
	}
}

// DoubleCut removes the double cut at p, splicing the content of the inner
// cut into the level that held the outer one.
func DoubleCut(g *graph.Graph, p graph.Path) (*graph.Graph, error) {
	if len(p) == 0 {
		return nil, &graph.PathError{Path: graph.Path{}, Reason: "the sheet is not a double cut"}
	}
	outer, err := g.Node(p)
	if err != nil {
		return nil, err
	}
	if !isDoubleCut(outer) {
		return nil, &graph.PathError{Path: p.Clone(), Reason: "not a double cut: " + outer.String()}
	}

	inner := outer.Subgraph(0)
	level, idx := p.Split()
	return g.Rewrite(level, func(n *graph.Graph) (*graph.Graph, error) {
		return n.ReplaceMember(idx, inner.Atoms(), inner.Subgraphs())
	})
}

// InsertDoubleCut wraps the selected members of the level at p in a new
// double cut. It is the inverse of DoubleCut: removing the inserted double
// cut restores a graph equal to g.
func InsertDoubleCut(g *graph.Graph, p graph.Path, members []int) (*graph.Graph, error) {
	return g.Rewrite(p, func(n *graph.Graph) (*graph.Graph, error) {
		return n.WrapMembers(members)
	})
}
