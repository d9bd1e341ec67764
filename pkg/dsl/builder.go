package dsl

import (
	"fmt"

	"github.com/aretw0/aegraph/pkg/adapters/memory"
	"github.com/aretw0/aegraph/pkg/domain"
)

// Builder manages the library construction.
type Builder struct {
	order     []string
	exercises map[string]*ExerciseBuilder
}

// New creates a new library builder.
func New() *Builder {
	return &Builder{
		exercises: make(map[string]*ExerciseBuilder),
	}
}

// Add creates a new exercise in the library.
// If the exercise already exists, it returns the existing builder.
func (b *Builder) Add(id string) *ExerciseBuilder {
	if eb, ok := b.exercises[id]; ok {
		return eb
	}
	eb := &ExerciseBuilder{
		exercise: domain.Exercise{ID: id},
	}
	b.exercises[id] = eb
	b.order = append(b.order, id)
	return eb
}

// Build compiles the library into a memory loader.
func (b *Builder) Build() (*memory.Loader, error) {
	exercises := make([]domain.Exercise, 0, len(b.order))
	for _, id := range b.order {
		exercises = append(exercises, b.exercises[id].Build())
	}

	loader, err := memory.NewLoader(exercises...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}

	return loader, nil
}

// ExerciseBuilder provides a fluent API for configuring an exercise.
type ExerciseBuilder struct {
	exercise domain.Exercise
}

// Title sets the display title.
func (e *ExerciseBuilder) Title(title string) *ExerciseBuilder {
	e.exercise.Title = title
	return e
}

// Describe sets the free-form description.
func (e *ExerciseBuilder) Describe(text string) *ExerciseBuilder {
	e.exercise.Description = text
	return e
}

// Premise sets the starting graph, in the textual grammar.
func (e *ExerciseBuilder) Premise(graph string) *ExerciseBuilder {
	e.exercise.Premise = graph
	return e
}

// Goal sets the graph the proof must reach.
func (e *ExerciseBuilder) Goal(graph string) *ExerciseBuilder {
	e.exercise.Goal = graph
	return e
}

// Step appends a removal move addressed by path.
func (e *ExerciseBuilder) Step(rule string, path ...int) *ExerciseBuilder {
	e.exercise.Steps = append(e.exercise.Steps, domain.Step{
		Rule: rule,
		Path: append([]int{}, path...),
	})
	return e
}

// Insert appends an insert-double-cut move wrapping members of the level at path.
func (e *ExerciseBuilder) Insert(path []int, members ...int) *ExerciseBuilder {
	e.exercise.Steps = append(e.exercise.Steps, domain.Step{
		Rule:    "insert-double-cut",
		Path:    append([]int{}, path...),
		Members: append([]int{}, members...),
	})
	return e
}

// Build returns the underlying domain.Exercise.
// This is primarily used by the Builder, but exposed for advanced usage.
func (e *ExerciseBuilder) Build() domain.Exercise {
	ex := e.exercise
	ex.Steps = append([]domain.Step(nil), e.exercise.Steps...)
	return ex
}
