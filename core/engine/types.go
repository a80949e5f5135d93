// core/engine/types.go
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Strand is a strand restriction on a query, or the strand of a match.
type Strand int8

const (
	StrandBoth     Strand = iota // no restriction (queries only)
	StrandPositive               // as written
	StrandNegative               // reverse complement
)

func (s Strand) String() string {
	switch s {
	case StrandBoth:
		return "both"
	case StrandPositive:
		return "+"
	case StrandNegative:
		return "-"
	}
	return fmt.Sprintf("Strand(%d)", int8(s))
}

// ParseStrand accepts "+", "-", "both" and "" (both), plus the spelled-out
// "positive"/"negative".
func ParseStrand(s string) (Strand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "*", ".":
		return StrandBoth, nil
	case "+", "positive", "plus":
		return StrandPositive, nil
	case "-", "negative", "minus":
		return StrandNegative, nil
	}
	return StrandBoth, fmt.Errorf("invalid strand %q (want +, - or both)", s)
}

func (s Strand) valid() bool {
	return s == StrandBoth || s == StrandPositive || s == StrandNegative
}

func (s Strand) wantsPositive() bool { return s == StrandBoth || s == StrandPositive }
func (s Strand) wantsNegative() bool { return s == StrandBoth || s == StrandNegative }

// StrandError reports a strand value outside the three known ones.
type StrandError struct {
	Strand Strand
}

func (e *StrandError) Error() string {
	return fmt.Sprintf("unsupported strand %s", e.Strand)
}

// ErrExhausted is returned by Cursor.Next once every match has been read.
var ErrExhausted = errors.New("engine: no more matches")

// Match is one motif occurrence. Start and End are inclusive and already
// shifted by Query.Offset.
type Match struct {
	Contig   string
	Start    int
	End      int
	Strand   Strand
	Sequence string // buffer text in original case; empty unless requested
}

// Query describes one search over one buffer.
type Query struct {
	Pattern         string
	Strand          Strand
	Contig          string
	Offset          int // added to every in-buffer position
	IncludeSequence bool
}

// Cursor is a pull-based, position-ordered stream of matches.
//
// HasMore is idempotent: it may look ahead but never consumes. It also
// reports true when the next call to Next will return an error.
type Cursor interface {
	HasMore() bool
	Next() (Match, error)
}

// match converts the buffer-local half-open window [a,b) into a Match.
func (q *Query) match(seq []byte, a, b int, s Strand) Match {
	m := Match{Contig: q.Contig, Start: q.Offset + a, End: q.Offset + b - 1, Strand: s}
	if q.IncludeSequence {
		m.Sequence = string(seq[a:b])
	}
	return m
}
