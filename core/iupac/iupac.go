// core/iupac/iupac.go
package iupac

/* ------------------------ IUPAC fragment table ------------------------ */

// code is one row of the table. fwd/comp are regex fragments for use
// outside a character class; bases/cbases are the bare letters for use
// inside one.
type code struct {
	fwd, comp     string
	bases, cbases string
}

var table [256]*code

func init() {
	set := func(c byte, fwd, comp, bases, cbases string) {
		e := &code{fwd: fwd, comp: comp, bases: bases, cbases: cbases}
		table[c] = e
		table[c+'a'-'A'] = e
	}
	set('A', "A", "T", "A", "T")
	set('C', "C", "G", "C", "G")
	set('G', "G", "C", "G", "C")
	set('T', "T", "A", "T", "A")
	set('R', "[AG]", "[CT]", "AG", "CT")     // purine ↔ pyrimidine
	set('Y', "[CT]", "[AG]", "CT", "AG")     // pyrimidine ↔ purine
	set('M', "[AC]", "[GT]", "AC", "GT")     // amino ↔ keto
	set('K', "[GT]", "[AC]", "GT", "AC")     // keto ↔ amino
	set('S', "[GC]", "[GC]", "GC", "GC")     // self-complementary
	set('W', "[AT]", "[AT]", "AT", "AT")     // self-complementary
	set('H', "[ACT]", "[AGT]", "ACT", "AGT") // H ↔ D
	set('B', "[GTC]", "[CAG]", "GTC", "CAG") // B ↔ V
	set('V', "[CAG]", "[GTC]", "CAG", "GTC") // V ↔ B
	set('D', "[AGT]", "[ACT]", "AGT", "ACT") // D ↔ H
	set('N', ".", ".", "ACGTN", "ACGTN")
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Forward returns the forward-strand regex fragment for c. Letters outside
// the table are returned verbatim, lower-cased.
func Forward(c byte) string {
	if e := table[c]; e != nil {
		return e.fwd
	}
	return string(lower(c))
}

// Complement returns the complement-strand regex fragment for c, with the
// same pass-through rule as Forward.
func Complement(c byte) string {
	if e := table[c]; e != nil {
		return e.comp
	}
	return string(lower(c))
}

// Bases returns the letters c stands for when it appears inside a [...]
// class, where a nested class is not expressible.
func Bases(c byte) (string, bool) {
	if e := table[c]; e != nil {
		return e.bases, true
	}
	return "", false
}

// ComplementBases is Bases for the complement strand.
func ComplementBases(c byte) (string, bool) {
	if e := table[c]; e != nil {
		return e.cbases, true
	}
	return "", false
}

// Known reports whether c is an IUPAC nucleotide code (either case).
func Known(c byte) bool { return table[c] != nil }

// IsUnambiguous reports whether every byte of p is A, C, G or T in either
// case. The empty string is not unambiguous.
func IsUnambiguous(p string) bool {
	if p == "" {
		return false
	}
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		default:
			return false
		}
	}
	return true
}
