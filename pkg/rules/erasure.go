package rules

import "github.com/aretw0/aegraph/pkg/graph"

// PossibleErasures returns the path of every member that may be erased.
//
// A member at path p is erasable when len(p) is odd, which places it inside an
// even number of cuts (a positive context), and either it has a sibling at its
// level or its level is the Sheet. The sole member of a positive cut is left
// alone: emptying an enclosed context is not a simple erasure.
func PossibleErasures(g *graph.Graph) []graph.Path {
	var out []graph.Path
	walkErasures(g, graph.Path{}, &out)
	return out
}

func walkErasures(n *graph.Graph, at graph.Path, out *[]graph.Path) {
	positive := len(at)%2 == 0
	free := n.IsSheet() || n.Size() > 1
	for i := 0; i < n.Size(); i++ {
		p := at.Child(i)
		if positive && free {
			*out = append(*out, p)
		}
		if i < n.NumSubgraphs() {
			walkErasures(n.Subgraph(i), p, out)
		}
	}
}

// Erase removes the member at p from its parent level. Legality is the
// caller's responsibility; see PossibleErasures.
func Erase(g *graph.Graph, p graph.Path) (*graph.Graph, error) {
	return remove(g, p)
}
