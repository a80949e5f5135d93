// core/pattern/compile.go
package pattern

import (
	"strings"

	"motifscan-core/iupac"
)

// CompileForward translates an IUPAC motif (optionally using regex syntax)
// into a forward-strand regex source.
func CompileForward(p string) string {
	return compile(p, iupac.Forward, iupac.Bases)
}

// CompileComplement translates p into complement-strand fragments without
// reversing their order. Reverse turns the result into a pattern that runs
// over the original strand; left as is it runs over a reverse-complemented
// copy.
func CompileComplement(p string) string {
	return compile(p, iupac.Complement, iupac.ComplementBases)
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// compile is a single left-to-right scan. Escapes, {m,n} bodies and (?...)
// group headers are regex syntax and copied verbatim; letters inside a
// [...] class expand to bare bases since RE2 has no nested classes.
func compile(p string, frag func(byte) string, bases func(byte) (string, bool)) string {
	var b strings.Builder
	b.Grow(len(p) * 3)

	inClass := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '\\':
			b.WriteByte(c)
			if i+1 < len(p) {
				b.WriteByte(p[i+1])
				i++
			}

		case inClass:
			if c == ']' {
				inClass = false
				b.WriteByte(c)
				continue
			}
			if s, ok := bases(c); ok {
				b.WriteString(s)
			} else {
				b.WriteByte(lowerByte(c))
			}

		case c == '[':
			inClass = true
			b.WriteByte(c)
			if i+1 < len(p) && p[i+1] == '^' {
				b.WriteByte('^')
				i++
			}

		case c == '{':
			if j := braceEnd(p, i); j > 0 {
				b.WriteString(p[i : j+1])
				i = j
				continue
			}
			b.WriteByte(c)

		case c == '(' && i+1 < len(p) && p[i+1] == '?':
			j := strings.IndexAny(p[i+2:], ":)>")
			if j < 0 {
				b.WriteString(p[i:])
				return b.String()
			}
			end := i + 2 + j
			b.WriteString(p[i : end+1])
			i = end

		default:
			b.WriteString(frag(c))
		}
	}
	return b.String()
}

// braceEnd returns the index of the '}' closing a {m}, {m,} or {m,n}
// repetition starting at p[i], or -1.
func braceEnd(p string, i int) int {
	digits := 0
	for j := i + 1; j < len(p); j++ {
		switch c := p[j]; {
		case c >= '0' && c <= '9':
			digits++
		case c == ',':
		case c == '}':
			if digits == 0 {
				return -1
			}
			return j
		default:
			return -1
		}
	}
	return -1
}
