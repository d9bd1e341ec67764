package dto

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/mitchellh/mapstructure"
)

// ExerciseMetadata represents the header/metadata of an exercise document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type ExerciseMetadata struct {
	ID          string `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	Premise     string `json:"premise" mapstructure:"premise"`
	Goal        string `json:"goal" mapstructure:"goal"`

	// Steps stay loosely typed until ToDomain: frontmatter may write a path
	// as "0,1" or as [0, 1], and numbers arrive as int, float64 or json.Number
	// depending on the serializer.
	Steps []any `json:"steps" mapstructure:"steps"`
}

// StepMetadata is the loose form of a recorded move.
type StepMetadata struct {
	Rule    string `json:"rule" mapstructure:"rule"`
	Path    any    `json:"path" mapstructure:"path"`
	Members []int  `json:"members" mapstructure:"members"`
}

// Decode maps a generic document (decoded YAML, JSON or tool arguments)
// onto ExerciseMetadata.
func Decode(raw any) (ExerciseMetadata, error) {
	var meta ExerciseMetadata
	if err := weakDecode(raw, &meta); err != nil {
		return ExerciseMetadata{}, fmt.Errorf("failed to decode exercise: %w", err)
	}
	return meta, nil
}

// ToDomain converts the metadata into a domain exercise. fallbackID is used
// when the document carries no explicit id; file extensions are stripped.
func (m ExerciseMetadata) ToDomain(fallbackID, body string) (*domain.Exercise, error) {
	id := m.ID
	if id == "" {
		id = fallbackID
	}
	ex := &domain.Exercise{
		ID:          TrimExtension(id),
		Title:       m.Title,
		Description: m.Description,
		Premise:     strings.TrimSpace(m.Premise),
		Goal:        strings.TrimSpace(m.Goal),
	}
	if ex.Description == "" {
		ex.Description = strings.TrimSpace(body)
	}

	for i, raw := range m.Steps {
		step, err := DecodeStep(raw)
		if err != nil {
			return nil, fmt.Errorf("exercise %s: step %d: %w", ex.ID, i+1, err)
		}
		ex.Steps = append(ex.Steps, step)
	}

	if err := ex.Validate(); err != nil {
		return nil, err
	}
	return ex, nil
}

// DecodeStep converts one loose step into a domain step. A step may also be
// written as a single string: "erasure 0,1".
func DecodeStep(raw any) (domain.Step, error) {
	if s, ok := raw.(string); ok {
		return parseStepLine(s)
	}

	var sm StepMetadata
	if err := weakDecode(raw, &sm); err != nil {
		return domain.Step{}, err
	}
	path, err := DecodePath(sm.Path)
	if err != nil {
		return domain.Step{}, err
	}
	return domain.Step{Rule: sm.Rule, Path: path, Members: sm.Members}, nil
}

// DecodePath accepts a path as a string ("0,1", "[0, 1]") or a list of numbers.
func DecodePath(raw any) ([]int, error) {
	switch v := raw.(type) {
	case nil:
		return []int{}, nil
	case string:
		p, err := graph.ParsePath(v)
		if err != nil {
			return nil, err
		}
		return []int(p), nil
	}
	var out []int
	if err := weakDecode(raw, &out); err != nil {
		return nil, fmt.Errorf("invalid path %v: %w", raw, err)
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}

func parseStepLine(line string) (domain.Step, error) {
	rule, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	if rule == "" {
		return domain.Step{}, fmt.Errorf("empty step")
	}
	pathText, membersText := splitPathField(strings.TrimSpace(rest))
	path, err := graph.ParsePath(pathText)
	if err != nil {
		return domain.Step{}, err
	}
	step := domain.Step{Rule: rule, Path: []int(path)}
	if membersText != "" {
		members, err := graph.ParsePath(membersText)
		if err != nil {
			return domain.Step{}, err
		}
		step.Members = []int(members)
	}
	return step, nil
}

// splitPathField returns the leading path of s and what follows it. A
// bracketed path may contain spaces.
func splitPathField(s string) (string, string) {
	if strings.HasPrefix(s, "[") {
		if end := strings.IndexByte(s, ']'); end >= 0 {
			return s[:end+1], strings.TrimSpace(s[end+1:])
		}
	}
	head, tail, _ := strings.Cut(s, " ")
	return head, strings.TrimSpace(tail)
}

func weakDecode(input, output any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// TrimExtension strips a known document extension from an ID, so that
// "mp.md" and "mp" name the same exercise.
func TrimExtension(id string) string {
	switch ext := filepath.Ext(id); ext {
	case ".md", ".json", ".yaml", ".yml":
		return strings.TrimSuffix(id, ext)
	}
	return id
}
