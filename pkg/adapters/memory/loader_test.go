package memory_test

import (
	"testing"

	"github.com/aretw0/aegraph/pkg/adapters/memory"
	"github.com/aretw0/aegraph/pkg/domain"
	contract "github.com/aretw0/aegraph/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	data := map[string]domain.Exercise{
		"double-negation": {ID: "double-negation", Premise: "([[A]])", Goal: "(A)"},
		"modus-ponens": {
			ID:      "modus-ponens",
			Premise: "(A, [A, [B]])",
			Goal:    "(A, B)",
			Steps: []domain.Step{
				{Rule: "deiteration", Path: []int{0, 0}},
				{Rule: "double-cut", Path: []int{0}},
			},
		},
	}

	exercises := make([]domain.Exercise, 0, len(data))
	for _, ex := range data {
		exercises = append(exercises, ex)
	}

	loader, err := memory.NewLoader(exercises...)
	require.NoError(t, err)

	contract.ExerciseLoaderContractTest(t, loader, data)
}

func TestNewFromYAML(t *testing.T) {
	src := []byte(`
- id: modus-ponens
  title: Modus ponens
  premise: "(A, [A, [B]])"
  goal: "(A, B)"
  steps:
    - rule: deiteration
      path: [0, 0]
    - double-cut 0
- id: weaken
  premise: "(A, B)"
  goal: "(A)"
`)

	loader, err := memory.NewFromYAML(src)
	require.NoError(t, err)

	contract.ExerciseLoaderContractTest(t, loader, map[string]domain.Exercise{
		"modus-ponens": {
			ID:      "modus-ponens",
			Premise: "(A, [A, [B]])",
			Goal:    "(A, B)",
			Steps: []domain.Step{
				{Rule: "deiteration", Path: []int{0, 0}},
				{Rule: "double-cut", Path: []int{0}},
			},
		},
		"weaken": {ID: "weaken", Premise: "(A, B)", Goal: "(A)"},
	})
}

func TestNewFromYAML_Errors(t *testing.T) {
	_, err := memory.NewFromYAML([]byte("- id: x\n  premise: \"(A)\"\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidExercise)

	_, err = memory.NewFromYAML([]byte("not: [a list"))
	assert.Error(t, err)

	_, err = memory.NewLoader(
		domain.Exercise{ID: "a", Premise: "(A)", Goal: "(A)"},
		domain.Exercise{ID: "a", Premise: "(B)", Goal: "(B)"},
	)
	assert.ErrorContains(t, err, "duplicate")
}
