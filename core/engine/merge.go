// core/engine/merge.go
package engine

// Producer yields matches of a single strand in ascending start order.
//
// Peek returns the pending match without consuming it (ok=false once the
// producer is drained) and must be idempotent. Advance drops the pending
// match so that the next Peek searches again.
type Producer interface {
	Peek() (m Match, ok bool, err error)
	Advance()
}

type emptyProducer struct{}

func (emptyProducer) Peek() (Match, bool, error) { return Match{}, false, nil }
func (emptyProducer) Advance()                   {}

// sliceProducer serves a precomputed, already ordered list.
type sliceProducer struct {
	list []Match
	i    int
}

func (p *sliceProducer) Peek() (Match, bool, error) {
	if p.i >= len(p.list) {
		return Match{}, false, nil
	}
	return p.list[p.i], true, nil
}

func (p *sliceProducer) Advance() {
	if p.i < len(p.list) {
		p.i++
	}
}

// Merge interleaves a positive-strand and a negative-strand producer by
// start position. On equal starts the positive match is returned first.
// A nil producer counts as empty.
func Merge(pos, neg Producer) Cursor {
	if pos == nil {
		pos = emptyProducer{}
	}
	if neg == nil {
		neg = emptyProducer{}
	}
	return &mergeCursor{pos: pos, neg: neg}
}

type mergeCursor struct {
	pos, neg Producer
	err      error // sticky once Next has reported it
}

func (c *mergeCursor) HasMore() bool {
	if c.err != nil {
		return false
	}
	_, okP, errP := c.pos.Peek()
	if errP != nil {
		return true
	}
	_, okN, errN := c.neg.Peek()
	if errN != nil {
		return true
	}
	return okP || okN
}

func (c *mergeCursor) Next() (Match, error) {
	if c.err != nil {
		return Match{}, c.err
	}
	pm, okP, err := c.pos.Peek()
	if err != nil {
		c.err = err
		return Match{}, err
	}
	nm, okN, err := c.neg.Peek()
	if err != nil {
		c.err = err
		return Match{}, err
	}
	switch {
	case okP && (!okN || pm.Start <= nm.Start):
		c.pos.Advance()
		return pm, nil
	case okN:
		c.neg.Advance()
		return nm, nil
	}
	return Match{}, ErrExhausted
}
