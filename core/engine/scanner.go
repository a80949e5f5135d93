// core/engine/scanner.go
package engine

import (
	"errors"
	"regexp"
	"regexp/syntax"
)

var errWordBoundary = errors.New(`word boundaries (\b, \B) are not supported`)

// scanner finds the leftmost match of a regex at or after a position,
// ignoring case. Two programs are kept because a resumed search slices
// the buffer: at a slice start > 0, ^ and \A must not match, so the
// tail program has those assertions replaced by "never matches".
type scanner struct {
	head *regexp.Regexp
	tail *regexp.Regexp
}

func compileScanner(src string) (*scanner, error) {
	expr := "(?i)" + src
	tree, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, err
	}
	if walk(tree, isWordBoundary) {
		return nil, errWordBoundary
	}
	head, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	sc := &scanner{head: head, tail: head}
	if walk(tree, isBeginAnchor) {
		walk(tree, func(re *syntax.Regexp) bool {
			if isBeginAnchor(re) {
				re.Op = syntax.OpNoMatch
			}
			return false
		})
		if sc.tail, err = regexp.Compile(tree.String()); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// walk visits every node and reports whether f returned true for any.
func walk(re *syntax.Regexp, f func(*syntax.Regexp) bool) bool {
	found := f(re)
	for _, sub := range re.Sub {
		if walk(sub, f) {
			found = true
		}
	}
	return found
}

func isWordBoundary(re *syntax.Regexp) bool {
	return re.Op == syntax.OpWordBoundary || re.Op == syntax.OpNoWordBoundary
}

func isBeginAnchor(re *syntax.Regexp) bool {
	return re.Op == syntax.OpBeginText || re.Op == syntax.OpBeginLine
}

// find returns the absolute [start,end) of the leftmost match at or after
// from, or nil.
func (s *scanner) find(seq []byte, from int) []int {
	if from > len(seq) {
		return nil
	}
	re := s.head
	if from > 0 {
		re = s.tail
	}
	loc := re.FindIndex(seq[from:])
	if loc == nil {
		return nil
	}
	loc[0] += from
	loc[1] += from
	return loc
}

// regexProducer lazily walks the scanner over a buffer. Each Peek that
// needs a new match runs one search; the resume point is the previous
// match start plus one, so overlapping hits are found. Empty matches are
// stepped over.
type regexProducer struct {
	sc     *scanner
	seq    []byte
	from   int
	emit   func(a, b int) Match
	next   Match
	loaded bool
	done   bool
}

func (p *regexProducer) Peek() (Match, bool, error) {
	for !p.loaded && !p.done {
		loc := p.sc.find(p.seq, p.from)
		if loc == nil {
			p.done = true
			break
		}
		p.from = loc[0] + 1
		if loc[1] == loc[0] {
			continue
		}
		p.next = p.emit(loc[0], loc[1])
		p.loaded = true
	}
	return p.next, p.loaded, nil
}

func (p *regexProducer) Advance() { p.loaded = false }
