// core/engine/reversing.go
package engine

import (
	"errors"

	"motifscan-core/pattern"
)

var errNotReversible = errors.New("pattern cannot be reversed textually")

// NewReversingCursor runs the forward fragment and the reversed complement
// fragment as two lazy scans over the same buffer. No reverse-complement
// copy of the buffer is made. Reversed-complement matches already sit in
// original coordinates.
func NewReversingCursor(seq []byte, q Query) (Cursor, error) {
	if q.Pattern == "" {
		return nil, &pattern.PatternError{Err: pattern.ErrEmptyPattern}
	}
	if !q.Strand.valid() {
		return nil, &StrandError{Strand: q.Strand}
	}
	fwd := pattern.CompileForward(q.Pattern)
	if !pattern.IsReversible(fwd) {
		return nil, &pattern.PatternError{Pattern: q.Pattern, Err: errNotReversible}
	}
	var pos, neg Producer
	if q.Strand.wantsPositive() {
		p, err := newRegexProducer(seq, q, fwd, StrandPositive)
		if err != nil {
			return nil, err
		}
		pos = p
	}
	if q.Strand.wantsNegative() {
		rev, err := pattern.Reverse(pattern.CompileComplement(q.Pattern))
		if err != nil {
			return nil, err
		}
		p, err := newRegexProducer(seq, q, rev, StrandNegative)
		if err != nil {
			return nil, err
		}
		neg = p
	}
	return Merge(pos, neg), nil
}

func newRegexProducer(seq []byte, q Query, expr string, s Strand) (*regexProducer, error) {
	sc, err := compileScanner(expr)
	if err != nil {
		return nil, &pattern.PatternError{Pattern: q.Pattern, Err: err}
	}
	return &regexProducer{
		sc:  sc,
		seq: seq,
		emit: func(a, b int) Match {
			return q.match(seq, a, b, s)
		},
	}, nil
}
