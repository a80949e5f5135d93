package pattern

import "fmt"

type tokKind uint8

const (
	tokAtom       tokKind = iota // word character or '.'
	tokClassOpen                 // [
	tokClassClose                // ]
	tokNegate                    // ^ directly inside [
	tokGroupOpen                 // (
	tokGroupClose                // )
	tokAlt                       // |
	tokQuant                     // *, +, ?, {m,n}, each optionally lazy
)

type token struct {
	kind tokKind
	text string
	pos  int // byte offset in the source
}

func isWord(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tokenize splits src according to the structurally reversible grammar:
// word characters, '.', flat [..] classes with an optional leading '^',
// ( ) groups, '|', and postfix quantifiers that follow an operand. Any
// other syntax is an error, which is also how Classify rejects it.
func tokenize(src string) ([]token, error) {
	toks := make([]token, 0, len(src))
	depth := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case isWord(c) || c == '.':
			toks = append(toks, token{kind: tokAtom, text: src[i : i+1], pos: i})

		case c == '[':
			toks = append(toks, token{kind: tokClassOpen, text: "[", pos: i})
			j := i + 1
			if j < len(src) && src[j] == '^' {
				toks = append(toks, token{kind: tokNegate, text: "^", pos: j})
				j++
			}
			members := 0
			for ; j < len(src) && isWord(src[j]); j++ {
				toks = append(toks, token{kind: tokAtom, text: src[j : j+1], pos: j})
				members++
			}
			if j >= len(src) || src[j] != ']' {
				return nil, fmt.Errorf("offset %d: class is not a flat list of word characters", i)
			}
			if members == 0 {
				return nil, fmt.Errorf("offset %d: empty class", i)
			}
			toks = append(toks, token{kind: tokClassClose, text: "]", pos: j})
			i = j

		case c == '(':
			depth++
			toks = append(toks, token{kind: tokGroupOpen, text: "(", pos: i})

		case c == ')':
			if depth == 0 {
				return nil, fmt.Errorf("offset %d: unbalanced ')'", i)
			}
			depth--
			toks = append(toks, token{kind: tokGroupClose, text: ")", pos: i})

		case c == '|':
			toks = append(toks, token{kind: tokAlt, text: "|", pos: i})

		case c == '*' || c == '+' || c == '?' || c == '{':
			end := i
			if c == '{' {
				if end = braceEnd(src, i); end < 0 {
					return nil, fmt.Errorf("offset %d: malformed repetition", i)
				}
			}
			if end+1 < len(src) && src[end+1] == '?' {
				end++
			}
			if n := len(toks); n == 0 || !quantifiable(toks[n-1].kind) {
				return nil, fmt.Errorf("offset %d: quantifier without operand", i)
			}
			toks = append(toks, token{kind: tokQuant, text: src[i : end+1], pos: i})
			i = end

		default:
			return nil, fmt.Errorf("offset %d: %q is outside the reversible grammar", i, c)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '('")
	}
	return toks, nil
}

func quantifiable(k tokKind) bool {
	return k == tokAtom || k == tokClassClose || k == tokGroupClose
}
