package http

import (
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/rules"
)

// GraphRequest carries a graph in its textual form.
type GraphRequest struct {
	Graph string `json:"graph"`
}

// GraphResponse describes a parsed graph.
type GraphResponse struct {
	Graph        string `json:"graph"`
	Size         int    `json:"size"`
	NumAtoms     int    `json:"num_atoms"`
	NumSubgraphs int    `json:"num_subgraphs"`
}

// MovesRequest asks for the legal moves on a graph. An empty Rule lists
// every removal rule.
type MovesRequest struct {
	Graph string `json:"graph"`
	Rule  string `json:"rule,omitempty"`
}

// MovesResponse lists legal moves.
type MovesResponse struct {
	Graph string       `json:"graph"`
	Moves []rules.Move `json:"moves"`
}

// ApplyRequest asks for one move to be applied.
type ApplyRequest struct {
	Graph   string `json:"graph"`
	Rule    string `json:"rule"`
	Path    []int  `json:"path"`
	Members []int  `json:"members,omitempty"`
}

// ApplyResponse carries the result of a move.
type ApplyResponse struct {
	Move   rules.Move `json:"move"`
	Before string     `json:"before"`
	Graph  string     `json:"graph"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	// Report is set when a proof check stopped at a refused step.
	Report any `json:"report,omitempty"`
}

func describe(g *graph.Graph) GraphResponse {
	return GraphResponse{
		Graph:        g.String(),
		Size:         g.Size(),
		NumAtoms:     g.NumAtoms(),
		NumSubgraphs: g.NumSubgraphs(),
	}
}
