// core/engine/literal.go
package engine

import (
	"fmt"
	"strings"

	"motifscan-core/iupac"
	"motifscan-core/pattern"
)

// literalCursor compares every window against four reference arrays
// (forward and reverse complement, each in upper and lower case) in a
// single pass. A palindromic window yields both strands, positive first.
type literalCursor struct {
	q     Query
	seq   []byte
	fwdU  []byte
	fwdL  []byte
	rcU   []byte
	rcL   []byte
	pos   int // next window start to test
	negAt int // pending negative hit at this start, or -1
	next  Match
	ready bool
}

// NewLiteralCursor searches for a pattern made only of A, C, G, T.
func NewLiteralCursor(seq []byte, q Query) (Cursor, error) {
	if q.Pattern == "" {
		return nil, &pattern.PatternError{Err: pattern.ErrEmptyPattern}
	}
	if !q.Strand.valid() {
		return nil, &StrandError{Strand: q.Strand}
	}
	if !iupac.IsUnambiguous(q.Pattern) {
		return nil, &pattern.PatternError{Pattern: q.Pattern, Err: fmt.Errorf("not a literal motif")}
	}
	up := strings.ToUpper(q.Pattern)
	rc, err := iupac.RevComp([]byte(up))
	if err != nil {
		return nil, &pattern.PatternError{Pattern: q.Pattern, Err: err}
	}
	return &literalCursor{
		q:     q,
		seq:   seq,
		fwdU:  []byte(up),
		fwdL:  []byte(strings.ToLower(up)),
		rcU:   rc,
		rcL:   []byte(strings.ToLower(string(rc))),
		negAt: -1,
	}, nil
}

func (c *literalCursor) HasMore() bool {
	c.fill()
	return c.ready
}

func (c *literalCursor) Next() (Match, error) {
	c.fill()
	if !c.ready {
		return Match{}, ErrExhausted
	}
	c.ready = false
	return c.next, nil
}

func (c *literalCursor) fill() {
	if c.ready {
		return
	}
	n := len(c.fwdU)
	if c.negAt >= 0 {
		c.next = c.q.match(c.seq, c.negAt, c.negAt+n, StrandNegative)
		c.negAt = -1
		c.ready = true
		return
	}
	for ; c.pos+n <= len(c.seq); c.pos++ {
		fwd, rev := c.compare(c.pos)
		if !fwd && !rev {
			continue
		}
		at := c.pos
		c.pos++
		if fwd {
			c.next = c.q.match(c.seq, at, at+n, StrandPositive)
			if rev {
				c.negAt = at
			}
		} else {
			c.next = c.q.match(c.seq, at, at+n, StrandNegative)
		}
		c.ready = true
		return
	}
}

func (c *literalCursor) compare(at int) (fwd, rev bool) {
	fwd, rev = c.q.Strand.wantsPositive(), c.q.Strand.wantsNegative()
	for j := 0; j < len(c.fwdU) && (fwd || rev); j++ {
		b := c.seq[at+j]
		if fwd && b != c.fwdU[j] && b != c.fwdL[j] {
			fwd = false
		}
		if rev && b != c.rcU[j] && b != c.rcL[j] {
			rev = false
		}
	}
	return fwd, rev
}
