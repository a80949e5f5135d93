// core/pattern/width.go
package pattern

import "regexp/syntax"

// MaxWidth returns the longest stretch of sequence a match of p can cover.
// bounded is false for motifs with *, + or open {m,} repeats, and for
// patterns the regex parser rejects.
func MaxWidth(p string) (width int, bounded bool) {
	if p == "" {
		return 0, true
	}
	if Classify(p) == Literal {
		return len(p), true
	}
	re, err := syntax.Parse(CompileForward(p), syntax.Perl)
	if err != nil {
		return 0, false
	}
	return maxWidth(re)
}

func maxWidth(re *syntax.Regexp) (int, bool) {
	switch re.Op {
	case syntax.OpLiteral:
		return len(re.Rune), true
	case syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return 1, true
	case syntax.OpStar, syntax.OpPlus:
		return 0, false
	case syntax.OpRepeat:
		if re.Max < 0 {
			return 0, false
		}
		w, ok := maxWidth(re.Sub[0])
		return w * re.Max, ok
	case syntax.OpQuest, syntax.OpCapture:
		return maxWidth(re.Sub[0])
	case syntax.OpConcat:
		total := 0
		for _, sub := range re.Sub {
			w, ok := maxWidth(sub)
			if !ok {
				return 0, false
			}
			total += w
		}
		return total, true
	case syntax.OpAlternate:
		best := 0
		for _, sub := range re.Sub {
			w, ok := maxWidth(sub)
			if !ok {
				return 0, false
			}
			best = max(best, w)
		}
		return best, true
	}
	// anchors, empty match, no match
	return 0, true
}

// Anchored reports whether p ties matches to the buffer edges with ^, $,
// \A or \z.
func Anchored(p string) bool {
	re, err := syntax.Parse(CompileForward(p), syntax.Perl)
	if err != nil {
		return false
	}
	return anchored(re)
}

func anchored(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText:
		return true
	}
	for _, sub := range re.Sub {
		if anchored(sub) {
			return true
		}
	}
	return false
}
