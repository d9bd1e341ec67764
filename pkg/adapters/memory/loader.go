package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/aegraph/internal/dto"
	"github.com/aretw0/aegraph/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ExerciseLoader using an in-memory map.
type Loader struct {
	exercises map[string]domain.Exercise
}

// NewLoader creates a new memory loader from domain objects.
func NewLoader(exercises ...domain.Exercise) (*Loader, error) {
	l := &Loader{exercises: make(map[string]domain.Exercise, len(exercises))}
	for _, ex := range exercises {
		if err := ex.Validate(); err != nil {
			return nil, err
		}
		if _, dup := l.exercises[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id: %s", ex.ID)
		}
		l.exercises[ex.ID] = ex
	}
	return l, nil
}

// NewFromYAML creates a memory loader from a YAML sequence of exercises,
// using the same keys as exercise frontmatter.
func NewFromYAML(data []byte) (*Loader, error) {
	var docs []map[string]any
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse exercises: %w", err)
	}

	exercises := make([]domain.Exercise, 0, len(docs))
	for i, doc := range docs {
		meta, err := dto.Decode(doc)
		if err != nil {
			return nil, fmt.Errorf("exercise #%d: %w", i+1, err)
		}
		ex, err := meta.ToDomain("", "")
		if err != nil {
			return nil, fmt.Errorf("exercise #%d: %w", i+1, err)
		}
		exercises = append(exercises, *ex)
	}
	return NewLoader(exercises...)
}

// GetExercise retrieves an exercise by ID.
func (l *Loader) GetExercise(_ context.Context, id string) (*domain.Exercise, error) {
	ex, ok := l.exercises[dto.TrimExtension(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, id)
	}
	return &ex, nil
}

// ListExercises returns all available exercise IDs.
func (l *Loader) ListExercises(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(l.exercises))
	for k := range l.exercises {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
