/*
Package rules implements the single-step inference rules of Alpha Existential Graphs.

Each rule comes as a pair: an enumerator that walks the whole graph and returns every path at
which the rule may legally be applied, and an applier that rewrites a graph at one such path.

  - Double cut: two directly nested cuts with nothing else between them may be removed
    (DoubleCut) or inserted around any selection of members (InsertDoubleCut).
  - Erasure: a member sitting in a positive context, i.e. enclosed by an even number of cuts,
    may be removed (Erase).
  - Deiteration: a copy of a member may be removed when an equal member sits directly in an
    enclosing level (Deiterate).

Appliers are pure functions. They never mutate their input and return a new canonical graph.
Erase and Deiterate trust the caller to pass a path obtained from the matching enumerator;
use Legal or the aegraph.Engine in strict mode to have the check performed for you.
*/
package rules
