package validator

import (
	"context"
	"testing"

	"github.com/aretw0/aegraph/pkg/adapters/memory"
	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLibrary(t *testing.T) {
	ctx := context.Background()

	t.Run("valid library", func(t *testing.T) {
		loader, err := memory.NewLoader(
			domain.Exercise{ID: "dn", Premise: "([[A]])", Goal: "(A)", Steps: []domain.Step{{Rule: "dc", Path: []int{0}}}},
			domain.Exercise{ID: "open", Premise: "(A, B)", Goal: "(B)"},
		)
		require.NoError(t, err)

		sum, err := ValidateLibrary(ctx, loader)
		require.NoError(t, err)
		assert.Equal(t, Summary{Exercises: 2, Proven: 1, Open: 1}, sum)
	})

	t.Run("every problem is reported", func(t *testing.T) {
		loader, err := memory.NewLoader(
			domain.Exercise{ID: "broken", Premise: "(A", Goal: "(A)"},
			domain.Exercise{ID: "refused", Premise: "(A, [B])", Goal: "(A)", Steps: []domain.Step{{Rule: "erasure", Path: []int{0, 0}}}},
			domain.Exercise{ID: "short", Premise: "(A, B)", Goal: "()", Steps: []domain.Step{{Rule: "erasure", Path: []int{0}}}},
			domain.Exercise{ID: "unknown", Premise: "(A)", Goal: "(A)", Steps: []domain.Step{{Rule: "teleport"}}},
		)
		require.NoError(t, err)

		sum, err := ValidateLibrary(ctx, loader)
		require.Error(t, err)
		assert.Equal(t, 4, sum.Exercises)
		assert.Zero(t, sum.Proven)

		msg := err.Error()
		assert.Contains(t, msg, "found 4 errors")
		for _, id := range []string{"broken:", "refused:", "short: proof ends at (B)", "unknown:"} {
			assert.Contains(t, msg, id)
		}
	})
}
