package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_Sizes(t *testing.T) {
	for _, in := range []string{"()", "(A)", "(A, [B])", "([A], [B], C, D)", "([[A]])"} {
		g := MustParse(in)
		assert.Equal(t, g.NumAtoms()+g.NumSubgraphs(), g.Size(), in)
	}

	g := MustParse("(A, B, [C], [D, [E]])")
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 2, g.NumAtoms())
	assert.Equal(t, 2, g.NumSubgraphs())
	assert.Equal(t, []string{"A", "B"}, g.Atoms())
	assert.Equal(t, "[C]", g.Subgraph(0).String())
	assert.Nil(t, g.Subgraph(2))
}

func TestGraph_ScenarioAtomAndCut(t *testing.T) {
	g := MustParse("(A, [B])")

	require.True(t, g.IsSheet())
	assert.Equal(t, []string{"A"}, g.Atoms())
	require.Equal(t, 1, g.NumSubgraphs())

	cut := g.Subgraph(0)
	assert.False(t, cut.IsSheet())
	assert.Equal(t, []string{"B"}, cut.Atoms())
	assert.Equal(t, "(A, [B])", g.String())
}

func TestGraph_Member(t *testing.T) {
	g := MustParse("(A, B, [C])")

	m, ok := g.Member(0)
	require.True(t, ok)
	assert.False(t, m.IsAtom())
	assert.Equal(t, "[C]", m.String())

	m, ok = g.Member(2)
	require.True(t, ok)
	assert.True(t, m.IsAtom())
	assert.Equal(t, "B", m.Atom)

	_, ok = g.Member(3)
	assert.False(t, ok)
	_, ok = g.Member(-1)
	assert.False(t, ok)
}

func TestGraph_Equal(t *testing.T) {
	assert.True(t, Equal(MustParse("(B, A, [D, C])"), MustParse("(A,B,[C,D])")))
	assert.False(t, Equal(MustParse("(A)"), MustParse("(B)")))
	assert.False(t, MustParse("(A)").Equal(nil))
	assert.True(t, Equal(nil, nil))

	cut, err := New(false, []string{"A"}, nil)
	require.NoError(t, err)
	sheet, err := New(true, []string{"A"}, nil)
	require.NoError(t, err)
	assert.False(t, Equal(cut, sheet), "node kind is part of the canonical form")
}

func TestGraph_Contains(t *testing.T) {
	g := MustParse("(A, [B, [C, [D]]])")

	assert.True(t, g.ContainsAtom("A"))
	assert.True(t, g.ContainsAtom("D"))
	assert.False(t, g.ContainsAtom("E"))

	assert.True(t, g.ContainsGraph(MustParse("(A, [D])").Subgraph(0)))
	assert.True(t, g.ContainsGraph(g.Subgraph(0)))
	assert.False(t, g.ContainsGraph(MustParse("([E])").Subgraph(0)))
	assert.False(t, g.ContainsGraph(g), "a sheet never matches a cut")
	assert.False(t, g.ContainsGraph(nil))

	assert.True(t, g.Contains(Member{Atom: "C"}))
	assert.True(t, g.Contains(Member{Cut: MustParse("([[D], C])").Subgraph(0)}))
}

func TestGraph_PathsTo(t *testing.T) {
	t.Run("Atoms", func(t *testing.T) {
		g := MustParse("(A, [A, B], [[A]])")
		// Children: [0]=[A, B], [1]=[[A]]; atom A at index 2.
		paths := g.PathsToAtom("A")
		assert.ElementsMatch(t, []Path{{0, 0}, {2}}, paths, "the sole A inside [[A]] is excluded")
	})

	t.Run("Sole Member Excluded", func(t *testing.T) {
		g := MustParse("([A])")
		assert.Empty(t, g.PathsToAtom("A"))
		assert.Equal(t, []Path{{0, 0}}, g.Occurrences(Member{Atom: "A"}))
	})

	t.Run("Subgraphs", func(t *testing.T) {
		g := MustParse("([B], C, [[B], D])")
		target := MustParse("([B])").Subgraph(0)
		// Children: [0]=[B], [1]=[D, [B]].
		paths := g.PathsToGraph(target)
		assert.ElementsMatch(t, []Path{{0}, {1, 0}}, paths)
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Empty(t, MustParse("(A, [B])").PathsToAtom("Z"))
		assert.Nil(t, MustParse("(A)").PathsToGraph(nil))
	})
}

func TestGraph_Resolve(t *testing.T) {
	g := MustParse("(A, [B, [C]])")

	m, err := g.Resolve(Path{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "B", m.Atom)

	m, err = g.Resolve(Path{0, 0})
	require.NoError(t, err)
	assert.Equal(t, "[C]", m.String())

	node, err := g.Node(Path{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, node.Atoms())

	root, err := g.Node(nil)
	require.NoError(t, err)
	assert.Same(t, g, root)

	for _, p := range []Path{{}, {2}, {0, 5}, {1, 0}, {-1}} {
		_, err := g.Resolve(p)
		assert.True(t, errors.Is(err, ErrInvalidPath), "path %v: %v", p, err)
	}

	_, err = g.Node(Path{1})
	var pe *PathError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Reason, "atom")
}

func TestNew_Validates(t *testing.T) {
	_, err := New(true, []string{"A", " "}, nil)
	assert.True(t, errors.Is(err, ErrMalformedInput))

	_, err = New(true, []string{"A,B"}, nil)
	assert.True(t, errors.Is(err, ErrMalformedInput))

	_, err = New(false, nil, []*Graph{MustParse("(A)")})
	assert.True(t, errors.Is(err, ErrMalformedInput), "sheets cannot be nested")

	_, err = New(true, []string{"(B"}, nil)
	assert.True(t, errors.Is(err, ErrMalformedInput), "a leading '(' would read back as a sheet")

	fx, err := New(true, []string{"f(x)"}, nil)
	require.NoError(t, err)
	assert.True(t, fx.Equal(MustParse("(f(x))")))

	g, err := New(true, []string{" b ", "a"}, []*Graph{MustParse("([C])").Subgraph(0)})
	require.NoError(t, err)
	assert.Equal(t, "(a, b, [C])", g.String())
	assert.Equal(t, "()", Empty().String())
}

func TestGraph_Immutable(t *testing.T) {
	g := MustParse("(A, B, [C])")
	atoms := g.Atoms()
	atoms[0] = "Z"
	subs := g.Subgraphs()
	subs[0] = nil

	assert.Equal(t, "(A, B, [C])", g.String())
	assert.Equal(t, []string{"A", "B"}, g.Atoms())
	assert.NotNil(t, g.Subgraph(0))
}

func TestMember_IndexOrderDiffersFromText(t *testing.T) {
	g := MustParse("([B], A)")
	require.Equal(t, "(A, [B])", g.String(), "atoms are written first")

	first, ok := g.Member(0)
	require.True(t, ok)
	assert.False(t, first.IsAtom(), "index 0 is the cut")
	assert.Equal(t, "[B]", first.String())

	second, ok := g.Member(1)
	require.True(t, ok)
	assert.Equal(t, "A", second.Atom)
}
