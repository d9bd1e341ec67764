package tests

import (
	"context"
	"testing"

	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ExerciseLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.ExerciseLoader.
// setupData holds the exercises the loader was seeded with, keyed by ID.
func ExerciseLoaderContractTest(t *testing.T, loader ports.ExerciseLoader, setupData map[string]domain.Exercise) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetExercise_Success", func(t *testing.T) {
		for id, want := range setupData {
			got, err := loader.GetExercise(ctx, id)
			require.NoError(t, err, "getting exercise %s", id)
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Premise, got.Premise)
			assert.Equal(t, want.Goal, got.Goal)
			assert.Equal(t, want.Steps, got.Steps)
		}
	})

	t.Run("GetExercise_NotFound", func(t *testing.T) {
		_, err := loader.GetExercise(ctx, "non-existent-exercise")
		assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
	})

	t.Run("ListExercises", func(t *testing.T) {
		ids, err := loader.ListExercises(ctx)
		require.NoError(t, err)
		assert.Len(t, ids, len(setupData))
		assert.IsNonDecreasing(t, ids)
		for id := range setupData {
			assert.Contains(t, ids, id)
		}
	})
}
