/*
Package aegraph implements Peirce's Alpha Existential Graphs and their
single-step inference rules.

A graph is a Sheet of Assertion holding atoms (propositional letters) and
cuts (negated conjunctions). The engine parses graphs from their textual form,
lists every position where a rule legally applies, applies a chosen move and
replays recorded proofs from an exercise library.

# Concept

The core packages are pure: graph values are immutable, and every rule
application returns a new graph sharing untouched subtrees with its input.
The Engine adds the policy around them (strict legality, logging, lifecycle
hooks) and the ports to the outside world (exercise loaders). Hosts such as
the CLI, the HTTP server and the MCP server are thin adapters over the Engine.

# Textual Form

	(A, [B, [C]])

reads "A, and not (B and not C)". Parentheses delimit the sheet, brackets
delimit cuts, and commas separate the members of a level. The canonical form
lists atoms before cuts, both sorted.

# Usage

	eng, err := aegraph.New("")
	if err != nil {
		log.Fatal(err)
	}

	g, err := eng.Parse("([[A]])")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, m := range eng.AllMoves(ctx, g) {
		next, err := eng.Apply(ctx, g, m)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(m, "=>", next)
	}

# Rules

  - Double cut: a cut whose only member is another cut may be removed, and
    any selection of members may be wrapped in a new double cut.
  - Erasure: a member in a positive context (inside an even number of cuts)
    may be removed.
  - Deiteration: a copy of a member found inside a sibling cut may be removed.
*/
package aegraph
