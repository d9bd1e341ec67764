/*
Package dsl provides a Go DSL for programmatically constructing exercise libraries.

Exercises can be declared with a fluent builder instead of Markdown, JSON or
YAML files. Graphs may be written in the textual grammar or composed from
Atom, Cut and Sheet, which keeps larger premises readable and type-checked.

Example usage:

	package main

	import "github.com/aretw0/aegraph/pkg/dsl"

	func main() {
		b := dsl.New()

		b.Add("modus-ponens").
			Title("Modus ponens").
			Premise(dsl.Sheet(dsl.Atom("A"), dsl.Cut(dsl.Atom("A"), dsl.Cut(dsl.Atom("B"))))).
			Goal("(A, B)").
			Step("deiteration", 0, 1).
			Step("double-cut", 0)

		// The resulting loader can be used as a ports.ExerciseLoader
		loader, err := b.Build()
		// ... pass loader to aegraph.New("", aegraph.WithLoader(loader))
	}
*/
package dsl
