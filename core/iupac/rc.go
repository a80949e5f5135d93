// core/iupac/rc.go
package iupac

import "fmt"

// complement is restricted to A/C/G/T/N. Case is preserved so that a
// materialized reverse strand keeps soft-masking.
var complement [256]byte

func init() {
	pairs := []struct{ a, b byte }{{'A', 'T'}, {'C', 'G'}, {'N', 'N'}}
	for _, p := range pairs {
		complement[p.a], complement[p.b] = p.b, p.a
		complement[lower(p.a)], complement[lower(p.b)] = lower(p.b), lower(p.a)
	}
}

// InvalidByteError reports a byte outside A/C/G/T/N met while building a
// reverse-complement. Pos is the index in the input buffer.
type InvalidByteError struct {
	Byte byte
	Pos  int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("invalid nucleotide %q at offset %d (want A, C, G, T or N)", e.Byte, e.Pos)
}

// ComplementByte returns the complement of b and whether b is one of
// A/C/G/T/N (either case).
func ComplementByte(b byte) (byte, bool) {
	c := complement[b]
	return c, c != 0
}

// RevComp returns a freshly allocated reverse-complement of seq. Unlike the
// fragment table it does not pass unknown bytes through: a stray byte would
// shift every coordinate translated through the copy.
func RevComp(seq []byte) ([]byte, error) {
	n := len(seq)
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			return nil, &InvalidByteError{Byte: b, Pos: n - 1 - i}
		}
		out[i] = c
	}
	return out, nil
}
