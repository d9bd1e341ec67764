package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrMalformedInput indicates text that does not follow the graph grammar.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidPath indicates a path that is out of range for a graph or that
	// does not address the kind of member an operation requires.
	ErrInvalidPath = errors.New("invalid path")
)

// SyntaxError describes where and why parsing failed.
// Wraps ErrMalformedInput for errors.Is() compatibility.
type SyntaxError struct {
	Offset int    // Byte offset into the input, -1 when not tied to a position
	Reason string // Deterministic error message
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return ""
	}
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", ErrMalformedInput.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s at offset %d", ErrMalformedInput.Error(), e.Reason, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformedInput }

// PathError reports a path that could not be resolved or rewritten.
// Wraps ErrInvalidPath for errors.Is() compatibility.
type PathError struct {
	Path   Path
	Reason string
}

func (e *PathError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %s", ErrInvalidPath.Error(), e.Path, e.Reason)
}

func (e *PathError) Unwrap() error { return ErrInvalidPath }
