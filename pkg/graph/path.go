package graph

import (
	"strconv"
	"strings"
)

// Path addresses a member of a graph by repeated selection from the root.
// It is exchanged as an ordered sequence of non-negative integers.
type Path []int

// String renders the path as "[0, 1]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Child returns a new path extending p with idx. p is never modified.
func (p Path) Child(idx ...int) Path {
	out := make(Path, 0, len(p)+len(idx))
	out = append(out, p...)
	return append(out, idx...)
}

// Split returns the path of the level that holds the addressed member and the
// member's index within that level. p must not be empty.
func (p Path) Split() (Path, int) {
	return p[: len(p)-1 : len(p)-1], p[len(p)-1]
}

// Equal reports whether two paths select the same sequence of indices.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// ParsePath reads the CLI form of a path: indices separated by commas or
// whitespace, optionally wrapped in square brackets ("0,1", "[0, 1]", "0 1").
// A blank string or "[]" is the empty path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	p := make(Path, 0, len(fields))
	for _, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil || idx < 0 {
			return nil, &PathError{Path: p, Reason: "index " + quote(f) + " is not a non-negative integer"}
		}
		p = append(p, idx)
	}
	return p, nil
}
