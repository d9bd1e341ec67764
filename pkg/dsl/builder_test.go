package dsl

import (
	"context"
	"testing"

	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/proof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleLibrary(t *testing.T) {
	b := New()

	b.Add("dn").
		Title("Double negation").
		Premise("([[A]])").
		Goal("(A)").
		Step("dc", 0)

	b.Add("wrap").
		Premise("(A, B)").
		Goal("(A, [[B]])").
		Insert(nil, 1)

	loader, err := b.Build()
	require.NoError(t, err)

	ids, err := loader.ListExercises(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"dn", "wrap"}, ids)

	ex, err := loader.GetExercise(context.Background(), "wrap")
	require.NoError(t, err)
	require.Len(t, ex.Steps, 1)
	assert.Equal(t, domain.Step{Rule: "insert-double-cut", Path: []int{}, Members: []int{1}}, ex.Steps[0])
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	b.Add("x").Premise("(A)")
	b.Add("x").Goal("(A)")

	ex := b.Add("x").Build()
	assert.Equal(t, "(A)", ex.Premise)
	assert.Equal(t, "(A)", ex.Goal)
}

func TestBuilder_InvalidExercise(t *testing.T) {
	b := New()
	b.Add("broken").Premise("(A)")

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrInvalidExercise)
}

func TestTerms(t *testing.T) {
	text := Sheet(Atom("B"), Cut(Atom("A"), Cut()), Cut(Cut(Atom("C"))))
	assert.Equal(t, "(B, [A, []], [[C]])", text)

	g, err := graph.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumAtoms()+g.NumSubgraphs()+g.Subgraph(0).Size())
}

func TestClassics_AllProven(t *testing.T) {
	loader, err := Classics().Build()
	require.NoError(t, err)

	ids, err := loader.ListExercises(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			ex, err := loader.GetExercise(context.Background(), id)
			require.NoError(t, err)

			p, err := proof.Compile(*ex)
			require.NoError(t, err)

			report, err := p.Check()
			require.NoError(t, err)
			assert.True(t, report.Proven(), "final graph %s", report.Final)
		})
	}
}
