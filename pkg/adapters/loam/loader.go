package loam

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/aretw0/aegraph/internal/dto"
	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts the Loam library to the ExerciseLoader interface.
// Every markdown (or JSON/YAML) document in the repository is an exercise;
// its frontmatter carries the fields of dto.ExerciseMetadata and its body
// becomes the description.
type Loader struct {
	Repo *loam.TypedRepository[dto.ExerciseMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[dto.ExerciseMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// NewFromDir opens dir as a read-only Loam repository.
func NewFromDir(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numbers as json.Number across serializers; read-only
	// keeps Loam from creating a sandbox next to the user's files.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[dto.ExerciseMetadata](repo)), nil
}

// GetExercise looks the ID up among the normalized document IDs and decodes
// the matching document.
func (l *Loader) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	index, err := l.index(ctx)
	if err != nil {
		return nil, err
	}
	docID, ok := index[dto.TrimExtension(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, id)
	}

	doc, err := l.Repo.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	ex, err := doc.Data.ToDomain(doc.ID, doc.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.ID, err)
	}
	return ex, nil
}

// ListExercises returns the normalized IDs of every document.
func (l *Loader) ListExercises(ctx context.Context) ([]string, error) {
	index, err := l.index(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

var errCollision = errors.New("collision detected")

// index maps exercise IDs to Loam document IDs.
func (l *Loader) index(ctx context.Context) (map[string]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	index := make(map[string]string, len(docs))
	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := filepath.ToSlash(dto.TrimExtension(rawID))

		if existing, ok := index[id]; ok {
			return nil, fmt.Errorf("%w: ID '%s' is defined in both '%s' and '%s'", errCollision, id, existing, doc.ID)
		}
		index[id] = doc.ID
	}
	return index, nil
}
