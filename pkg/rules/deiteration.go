package rules

import "github.com/aretw0/aegraph/pkg/graph"

// PossibleDeiterations returns the path of every member that may be
// deiterated.
//
// At every level L, for each member e of L and each cut s of L other than e
// itself, every occurrence of a member equal to e anywhere inside s is a
// target. The copy e stays in L, so removing a target never removes the
// witness that justified it. A path reachable from several witnesses is
// reported once, at its first discovery.
func PossibleDeiterations(g *graph.Graph) []graph.Path {
	var out []graph.Path
	seen := make(map[string]bool)
	walkDeiterations(g, graph.Path{}, seen, &out)
	return out
}

func walkDeiterations(n *graph.Graph, at graph.Path, seen map[string]bool, out *[]graph.Path) {
	for i := 0; i < n.Size(); i++ {
		e, _ := n.Member(i)
		for j := 0; j < n.NumSubgraphs(); j++ {
			if j == i {
				continue
			}
			for _, occ := range n.Subgraph(j).Occurrences(e) {
				p := at.Child(j).Child(occ...)
				if key := p.String(); !seen[key] {
					seen[key] = true
					*out = append(*out, p)
				}
			}
		}
	}
	for j := 0; j < n.NumSubgraphs(); j++ {
		walkDeiterations(n.Subgraph(j), at.Child(j), seen, out)
	}
}

// Deiterate removes the copy at p. The path should come from
// PossibleDeiterations.
func Deiterate(g *graph.Graph, p graph.Path) (*graph.Graph, error) {
	return remove(g, p)
}
