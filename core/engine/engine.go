// core/engine/engine.go
package engine

import (
	"errors"
	"iter"

	"motifscan-core/pattern"
)

// Strategy names the matcher Search will use for a query.
type Strategy int

const (
	StrategyLiteral Strategy = iota
	StrategyReversing
	StrategyGeneral
)

func (s Strategy) String() string {
	switch s {
	case StrategyLiteral:
		return "literal"
	case StrategyReversing:
		return "reversing"
	case StrategyGeneral:
		return "general"
	}
	return "unknown"
}

// Plan reports which strategy Search picks for a pattern and strand.
// The reversing strategy is only used when both strands are wanted.
func Plan(p string, s Strand) Strategy {
	switch pattern.Classify(p) {
	case pattern.Literal:
		return StrategyLiteral
	case pattern.Reversible:
		if s == StrandBoth {
			return StrategyReversing
		}
	}
	return StrategyGeneral
}

// Search validates q and returns a cursor over its matches in seq. Pattern
// and strand problems are reported here; problems with the buffer content
// surface from the cursor.
func Search(seq []byte, q Query) (Cursor, error) {
	if q.Pattern == "" {
		return nil, &pattern.PatternError{Err: pattern.ErrEmptyPattern}
	}
	if !q.Strand.valid() {
		return nil, &StrandError{Strand: q.Strand}
	}
	switch Plan(q.Pattern, q.Strand) {
	case StrategyLiteral:
		return NewLiteralCursor(seq, q)
	case StrategyReversing:
		return NewReversingCursor(seq, q)
	}
	return NewGeneralCursor(seq, q)
}

// All adapts a cursor to a range-over-func iterator. Iteration stops after
// the first error.
func All(c Cursor) iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		for c.HasMore() {
			m, err := c.Next()
			if errors.Is(err, ErrExhausted) {
				return
			}
			if !yield(m, err) || err != nil {
				return
			}
		}
	}
}

// Collect drains c.
func Collect(c Cursor) ([]Match, error) {
	var out []Match
	for m, err := range All(c) {
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, nil
}
