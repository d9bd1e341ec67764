package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/pkg/adapters/memory"
	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/rules"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	loader, err := memory.NewLoader(domain.Exercise{
		ID:      "double-negation",
		Premise: "([[A]])",
		Goal:    "(A)",
		Steps:   []domain.Step{{Rule: "double-cut", Path: []int{0}}},
	})
	require.NoError(t, err)

	eng, err := aegraph.New("", aegraph.WithLoader(loader))
	require.NoError(t, err)
	return NewServer(eng)
}

func TestHandleParse(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleParse(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"graph": "([C], B, A)"})
	require.NoError(t, err)
	assert.Equal(t, GraphResult{Graph: "(A, B, [C])", Size: 3, NumAtoms: 2, NumSubgraphs: 1}, res)

	_, err = s.handleParse(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"graph": "[A]"})
	assert.ErrorIs(t, err, graph.ErrMalformedInput)
}

func TestHandleMoves(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleMoves(ctx, mcp.CallToolRequest{}, map[string]interface{}{"graph": "(A, [A])", "rule": "deiteration"})
	require.NoError(t, err)
	assert.Equal(t, []rules.Move{{Rule: rules.RuleDeiteration, Path: graph.Path{0, 0}}}, res.Moves)

	res, err = s.handleMoves(ctx, mcp.CallToolRequest{}, map[string]interface{}{"graph": "()"})
	require.NoError(t, err)
	assert.NotNil(t, res.Moves)
	assert.Empty(t, res.Moves)

	_, err = s.handleMoves(ctx, mcp.CallToolRequest{}, map[string]interface{}{"graph": "()", "rule": "insert-double-cut"})
	assert.ErrorIs(t, err, rules.ErrNotEnumerable)
}

func TestHandleApply(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleApply(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"graph": "(A, B)", "rule": "insert-double-cut", "path": "", "members": "0,1",
	})
	require.NoError(t, err)
	assert.Equal(t, "([[A, B]])", res.Graph)

	res, err = s.handleApply(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"graph": "([[A, B]])", "rule": "dc", "path": []interface{}{float64(0)},
	})
	require.NoError(t, err)
	assert.Equal(t, "(A, B)", res.Graph)

	_, err = s.handleApply(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"graph": "([A])", "rule": "erasure", "path": "0,0",
	})
	assert.ErrorIs(t, err, rules.ErrNotApplicable)
}

func TestHandleCheck(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	report, err := s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"premise": "(A, [A, [B]])",
		"goal":    "(A, B)",
		"steps":   []interface{}{"deiteration 0,1", "double-cut 0"},
	})
	require.NoError(t, err)
	assert.True(t, report.Proven())

	_, err = s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"premise": "(A, [A, [B]])",
		"goal":    "(A, B)",
		"steps":   []interface{}{"erasure 0,1"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrNotApplicable)
	assert.Contains(t, err.Error(), "last graph: (A, [A, [B]])")
}

func TestHandleCheckExercise(t *testing.T) {
	s := newTestServer(t)

	report, err := s.handleCheckExercise(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"id": "double-negation"})
	require.NoError(t, err)
	assert.Equal(t, "(A)", report.Final)

	_, err = s.handleCheckExercise(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"id": "nope"})
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
}
