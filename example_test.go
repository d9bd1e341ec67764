package aegraph_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/pkg/adapters/memory"
	"github.com/aretw0/aegraph/pkg/domain"
)

// ExampleEngine_AllMoves lists and applies every legal move on a graph.
func ExampleEngine_AllMoves() {
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

	// Output:
	// double-cut [0] => (A)
	// erasure [0] => ()
}

// ExampleEngine_Check replays a recorded proof held in memory.
func ExampleEngine_Check() {
	loader, err := memory.NewLoader(domain.Exercise{
		ID:      "modus-ponens",
		Premise: "(A, [A, [B]])",
		Goal:    "(A, B)",
		Steps: []domain.Step{
			{Rule: "deiteration", Path: []int{0, 1}},
			{Rule: "double-cut", Path: []int{0}},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	eng, err := aegraph.New("", aegraph.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	report, err := eng.CheckExercise(context.Background(), "modus-ponens")
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range report.Steps {
		fmt.Printf("%d. %s => %s\n", s.Index, s.Move, s.Result)
	}
	fmt.Println("proven:", report.Proven())

	// Output:
	// 1. deiteration [0, 1] => (A, [[B]])
	// 2. double-cut [0] => (A, B)
	// proven: true
}
