package pretty

import (
	"fmt"
	"strings"

	"motifscan-core/engine"
	"motifscan-core/iupac"
)

// Options control the ASCII rendering.
type Options struct {
	// Flank adds this many dots on both sides of the site.
	Flank int

	// Glyphs
	ExactGlyph   string // default "|"
	PartialGlyph string // default "¦"
	DotGlyph     string // default "."
}

var DefaultOptions = Options{
	Flank:        3,
	ExactGlyph:   "|",
	PartialGlyph: "¦",
	DotGlyph:     ".",
}

func (o Options) ExactGlyphOrDefault() string {
	if o.ExactGlyph == "" {
		return DefaultOptions.ExactGlyph
	}
	return o.ExactGlyph
}

func (o Options) PartialGlyphOrDefault() string {
	if o.PartialGlyph == "" {
		return DefaultOptions.PartialGlyph
	}
	return o.PartialGlyph
}

func (o Options) dotGlyphOrDefault() string {
	if o.DotGlyph == "" {
		return DefaultOptions.DotGlyph
	}
	return o.DotGlyph
}

const (
	linePrefix  = "# "
	prefixPlus  = "5'-"
	suffixPlus  = "-3'"
	prefixMinus = "3'-"
	suffixMinus = "-5'"
	arrowRight  = "-->"
	arrowLeft   = "<--"
)

func reverseString(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

// complementString complements A/C/G/T/N; other bytes pass through.
func complementString(s string) string {
	out := make([]byte, len(s))
	for i := range s {
		if c, ok := iupac.ComplementByte(s[i]); ok {
			out[i] = c
		} else {
			out[i] = s[i]
		}
	}
	return string(out)
}

func isACGT(b byte) bool { return b == 'A' || b == 'C' || b == 'G' || b == 'T' }

// plainMotif reports whether motif is a bare run of IUPAC letters that
// lines up one-to-one with a site of length n.
func plainMotif(motif string, n int) bool {
	if n == 0 || len(motif) != n {
		return false
	}
	for i := 0; i < len(motif); i++ {
		if !iupac.Known(motif[i]) {
			return false
		}
	}
	return true
}

// Motif bars under a site: exact glyph for A/C/G/T, partial for codes.
func barLine(motif, exactGlyph, partialGlyph string) string {
	var b strings.Builder
	b.Grow(len(motif))
	for i := 0; i < len(motif); i++ {
		if isACGT(motif[i]) {
			b.WriteString(exactGlyph)
		} else {
			b.WriteString(partialGlyph)
		}
	}
	return b.String()
}

// RenderMatch prints a match as a small duplex block. Positive hits get
// the motif above the (+) line; negative hits get it below the (-) line,
// read 3'->5'. Regex motifs only get the duplex.
func RenderMatch(m engine.Match, motifID, pattern string, opt Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s:%d-%d (%s) %s %s\n", linePrefix, m.Contig, m.Start, m.End, m.Strand, motifID, pattern)

	if m.Sequence == "" {
		fmt.Fprintf(&b, "%s(pretty not available: sequence missing)\n#\n", linePrefix)
		return b.String()
	}

	site := strings.ToUpper(m.Sequence)
	motif := strings.ToUpper(pattern)
	flank := max(opt.Flank, 0)
	dots := strings.Repeat(opt.dotGlyphOrDefault(), flank)
	indent := len(prefixPlus) + flank
	pad := strings.Repeat(" ", indent)
	plain := plainMotif(motif, len(site))
	bars := barLine(motif, opt.ExactGlyphOrDefault(), opt.PartialGlyphOrDefault())

	if plain && m.Strand == engine.StrandPositive {
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, motif)
		fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, pad, bars, arrowRight)
	}

	fmt.Fprintf(&b, "%s%s%s%s%s%s # (+)\n", linePrefix, prefixPlus, dots, site, dots, suffixPlus)
	fmt.Fprintf(&b, "%s%s%s%s%s%s # (-)\n", linePrefix, prefixMinus, dots, complementString(site), dots, suffixMinus)

	if plain && m.Strand == engine.StrandNegative {
		padBars := max(indent-len(arrowLeft), 0)
		fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, strings.Repeat(" ", padBars), arrowLeft, reverseString(bars))
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, reverseString(motif))
	}

	b.WriteString("#\n")
	return b.String()
}
