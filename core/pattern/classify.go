// core/pattern/classify.go
package pattern

import "motifscan-core/iupac"

// Dialect selects the matching strategy for a motif.
type Dialect int

const (
	// Literal motifs name exact bases only (A/C/G/T, any case).
	Literal Dialect = iota
	// Reversible motifs compile to a regex the textual reversal can handle.
	Reversible
	// General covers everything else.
	General
)

func (d Dialect) String() string {
	switch d {
	case Literal:
		return "literal"
	case Reversible:
		return "reversible"
	case General:
		return "general"
	}
	return "unknown"
}

// Classify returns the dialect of p. It does not look at strand
// restrictions; the dispatcher downgrades Reversible to General when only
// one strand is wanted.
func Classify(p string) Dialect {
	if iupac.IsUnambiguous(p) {
		return Literal
	}
	if IsReversible(CompileForward(p)) {
		return Reversible
	}
	return General
}

// IsReversible reports whether a compiled regex source stays inside the
// grammar Reverse can rewrite.
func IsReversible(src string) bool {
	if src == "" {
		return false
	}
	_, err := tokenize(src)
	return err == nil
}

// Analysis is the compiled view of one motif.
type Analysis struct {
	Pattern    string
	Dialect    Dialect
	Forward    string
	Complement string
	Reversed   string // set for Reversible only
}

// Analyze compiles p for both strands and, when p is Reversible, runs the
// reversal transform on the complement source.
func Analyze(p string) (Analysis, error) {
	if p == "" {
		return Analysis{}, &PatternError{Err: ErrEmptyPattern}
	}
	a := Analysis{
		Pattern:    p,
		Dialect:    Classify(p),
		Forward:    CompileForward(p),
		Complement: CompileComplement(p),
	}
	if a.Dialect == Reversible {
		rev, err := Reverse(a.Complement)
		if err != nil {
			return a, err
		}
		a.Reversed = rev
	}
	return a, nil
}
