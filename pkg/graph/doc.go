/*
Package graph implements the tree value of an Alpha Existential Graph and its textual grammar.

A graph is either the Sheet of Assertion (the outermost, asserted context) or a Cut (a
negation boundary). Each node holds atoms and nested cuts directly at its level.

# Grammar

	graph   := '(' level ')' | '[' level ']'
	level   := element (',' element)*      (possibly empty)
	element := atom | graph

The top-level node is always a Sheet written with parentheses; every nested node is a Cut
written with square brackets. Atom tokens are trimmed and may not contain brackets or commas.

# Canonical Form

Construction canonicalizes exactly once: atoms are sorted lexicographically and cuts are sorted
by their own canonical text. Two graphs are equal iff their canonical texts are byte-equal, so
String doubles as the equality and hashing key.

	g, err := graph.Parse("(B, [A], A)")
	// g.String() == "(A, B, [A])"

# Paths

A Path addresses a member by repeated selection from the root. At each level the indices
0..NumSubgraphs()-1 select a child cut and NumSubgraphs()..Size()-1 select an atom.
A path is only meaningful against the graph value it was derived from.

Graph values are immutable. Rewrites (see Rewrite, WithoutMember, ReplaceMember and
WrapMembers) return new values that share untouched subtrees, so a *Graph may be read from
any number of goroutines without coordination.
*/
package graph
