// Package semantics gives Alpha graphs their propositional reading.
//
// The Sheet of Assertion is the conjunction of its members, a cut is the
// negated conjunction of its members and an atom is a propositional variable.
// The empty sheet is true and the empty cut is false. Entailment questions are
// answered with the gini SAT solver.
package semantics

import (
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Valuation assigns a truth value to atoms. Missing atoms are false.
type Valuation map[string]bool

// Evaluate computes the truth value of g under v.
func Evaluate(g *graph.Graph, v Valuation) bool {
	all := true
	for _, a := range g.Atoms() {
		if !v[a] {
			all = false
			break
		}
	}
	if all {
		for _, c := range g.Subgraphs() {
			if !Evaluate(c, v) {
				all = false
				break
			}
		}
	}
	if g.IsSheet() {
		return all
	}
	return !all
}

// circuit compiles graphs into one shared gini circuit so that equal atom
// names map to the same variable.
type circuit struct {
	c    *logic.C
	vars map[string]z.Lit
}

func newCircuit() *circuit {
	return &circuit{c: logic.NewC(), vars: make(map[string]z.Lit)}
}

func (k *circuit) variable(name string) z.Lit {
	if lit, ok := k.vars[name]; ok {
		return lit
	}
	lit := k.c.Lit()
	k.vars[name] = lit
	return lit
}

func (k *circuit) compile(g *graph.Graph) z.Lit {
	lits := make([]z.Lit, 0, g.Size())
	for _, a := range g.Atoms() {
		lits = append(lits, k.variable(a))
	}
	for _, c := range g.Subgraphs() {
		lits = append(lits, k.compile(c))
	}

	conj := k.c.T
	if len(lits) > 0 {
		conj = k.c.Ands(lits...)
	}
	if g.IsSheet() {
		return conj
	}
	return conj.Not()
}

// satisfiable reports whether lit can be made true.
func (k *circuit) satisfiable(lit z.Lit) bool {
	switch lit {
	case k.c.T:
		return true
	case k.c.F:
		return false
	}
	s := gini.New()
	k.c.ToCnf(s)
	s.Assume(lit)
	return s.Solve() == 1
}

// Entails reports whether every valuation satisfying a also satisfies b.
func Entails(a, b *graph.Graph) bool {
	k := newCircuit()
	fa := k.compile(a)
	fb := k.compile(b)
	return !k.satisfiable(k.c.And(fa, fb.Not()))
}

// Equivalent reports whether a and b have the same truth value under every
// valuation.
func Equivalent(a, b *graph.Graph) bool {
	return Entails(a, b) && Entails(b, a)
}

// Satisfiable reports whether some valuation makes g true.
func Satisfiable(g *graph.Graph) bool {
	k := newCircuit()
	return k.satisfiable(k.compile(g))
}

// Valid reports whether g is true under every valuation.
func Valid(g *graph.Graph) bool {
	return Entails(graph.Empty(), g)
}
