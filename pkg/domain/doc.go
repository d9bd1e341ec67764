/*
Package domain contains the core domain models shared by the aegraph engine
and its adapters.

It is kept pure and free of external dependencies like I/O or persistence.
Graph values themselves live in package graph; this package holds the types
that travel between the engine, the exercise loaders and the hosts.

# Key Entities

  - Exercise: a premise, a goal and optionally a recorded proof.
  - Step: one recorded move of a proof, in exchange form.
  - RuleEvent: what the engine reports when a move is applied or rejected.
*/
package domain
