// core/engine/general.go
package engine

import (
	"sort"

	"motifscan-core/iupac"
	"motifscan-core/pattern"
)

// NewGeneralCursor handles any pattern the regex engine accepts. Positive
// matches come from a lazy forward scan. Negative matches need a
// reverse-complement copy of the buffer; it is built, scanned to the end
// and translated back to original coordinates on the first request.
// A byte outside A/C/G/T/N in the buffer is reported then, by Next.
func NewGeneralCursor(seq []byte, q Query) (Cursor, error) {
	if q.Pattern == "" {
		return nil, &pattern.PatternError{Err: pattern.ErrEmptyPattern}
	}
	if !q.Strand.valid() {
		return nil, &StrandError{Strand: q.Strand}
	}
	var pos, neg Producer
	if q.Strand.wantsPositive() {
		p, err := newRegexProducer(seq, q, pattern.CompileForward(q.Pattern), StrandPositive)
		if err != nil {
			return nil, err
		}
		pos = p
	}
	if q.Strand.wantsNegative() {
		// rc(w) matching the forward fragment is the same as w matching the
		// reverse complement of the motif.
		sc, err := compileScanner(pattern.CompileForward(q.Pattern))
		if err != nil {
			return nil, &pattern.PatternError{Pattern: q.Pattern, Err: err}
		}
		neg = &complementProducer{q: q, seq: seq, sc: sc}
	}
	return Merge(pos, neg), nil
}

type complementProducer struct {
	q    Query
	seq  []byte
	sc   *scanner
	list *sliceProducer
	err  error
}

func (p *complementProducer) load() {
	if p.list != nil || p.err != nil {
		return
	}
	rc, err := iupac.RevComp(p.seq)
	if err != nil {
		p.err = err
		return
	}
	n := len(p.seq)
	var out []Match
	for from := 0; ; {
		loc := p.sc.find(rc, from)
		if loc == nil {
			break
		}
		from = loc[0] + 1
		if loc[1] == loc[0] {
			continue
		}
		// rc [a,b) covers original [n-b, n-a)
		out = append(out, p.q.match(p.seq, n-loc[1], n-loc[0], StrandNegative))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	p.list = &sliceProducer{list: out}
}

func (p *complementProducer) Peek() (Match, bool, error) {
	p.load()
	if p.err != nil {
		return Match{}, false, p.err
	}
	return p.list.Peek()
}

func (p *complementProducer) Advance() {
	if p.list != nil {
		p.list.Advance()
	}
}
