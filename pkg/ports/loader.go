package ports

import (
	"context"

	"github.com/aretw0/aegraph/pkg/domain"
)

// ExerciseLoader defines how the engine retrieves exercises.
// This allows the storage layer (Loam, Memory) to be decoupled.
type ExerciseLoader interface {
	// GetExercise retrieves an exercise by ID.
	// Returns domain.ErrExerciseNotFound if the ID is unknown.
	GetExercise(ctx context.Context, id string) (*domain.Exercise, error)

	// ListExercises returns the IDs of every available exercise, sorted.
	ListExercises(ctx context.Context) ([]string, error)
}
