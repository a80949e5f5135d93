package pattern

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is wrapped in a *PatternError when a search is given no motif.
var ErrEmptyPattern = errors.New("empty pattern")

// PatternError reports a motif that cannot be turned into a matcher.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	if e.Pattern == "" {
		return "pattern: " + e.Err.Error()
	}
	return fmt.Sprintf("pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// StructureError is raised by Reverse when a negation marker or quantifier
// has no matching bracket. Classification only lets well-formed sources
// through, so seeing one is an internal invariant violation.
type StructureError struct {
	Source string
	Pos    int // byte offset into Source
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("internal: malformed pattern structure at offset %d of %q: %s", e.Pos, e.Source, e.Reason)
}
