// core/pattern/reverse.go
package pattern

import "strings"

/*
Reverse rewrites a complement-strand regex source so that a forward scan
over the original sequence finds the places where the reverse-complement
of the motif occurs.

The rewrite works on tokens and rebuilds into a fresh slice at every step:

 1. a class negation '^' moves to just before its class's ']'
 2. a quantifier moves to just before its operand (the atom, or the '[' /
    '(' matching the ']' / ')' it follows)
 3. '[' <-> ']' and '(' <-> ')' are swapped
 4. the token order is reversed

Tokens are never split, so "+?" and "{2,5}" survive step 4 intact.
*/
func Reverse(src string) (string, error) {
	toks, err := tokenize(src)
	if err != nil {
		return "", &StructureError{Source: src, Pos: 0, Reason: err.Error()}
	}
	if toks, err = relocateNegations(src, toks); err != nil {
		return "", err
	}
	if toks, err = relocateQuantifiers(src, toks); err != nil {
		return "", err
	}
	swapBrackets(toks)

	var b strings.Builder
	b.Grow(len(src))
	for i := len(toks) - 1; i >= 0; i-- {
		b.WriteString(toks[i].text)
	}
	return b.String(), nil
}

func relocateNegations(src string, toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var pending *token
	for i := range toks {
		t := toks[i]
		switch {
		case t.kind == tokNegate:
			if i == 0 || toks[i-1].kind != tokClassOpen {
				return nil, &StructureError{Source: src, Pos: t.pos, Reason: "negation outside a class"}
			}
			pending = &toks[i]
			continue
		case t.kind == tokClassClose && pending != nil:
			out = append(out, *pending)
			pending = nil
		case t.kind == tokClassOpen && pending != nil:
			return nil, &StructureError{Source: src, Pos: pending.pos, Reason: "negation without closing ']'"}
		}
		out = append(out, t)
	}
	if pending != nil {
		return nil, &StructureError{Source: src, Pos: pending.pos, Reason: "negation without closing ']'"}
	}
	return out, nil
}

func relocateQuantifiers(src string, toks []token) ([]token, error) {
	// before[k] holds the quantifiers to emit ahead of toks[k].
	before := make(map[int][]token)
	for i, t := range toks {
		if t.kind != tokQuant {
			continue
		}
		target, err := operandStart(src, toks, i)
		if err != nil {
			return nil, err
		}
		before[target] = append(before[target], t)
	}

	out := make([]token, 0, len(toks))
	for i, t := range toks {
		if t.kind == tokQuant {
			continue
		}
		out = append(out, before[i]...)
		out = append(out, t)
	}
	return out, nil
}

// operandStart returns the index of the first token of the operand the
// quantifier at toks[q] applies to.
func operandStart(src string, toks []token, q int) (int, error) {
	if q == 0 {
		return 0, &StructureError{Source: src, Pos: toks[q].pos, Reason: "quantifier without operand"}
	}
	prev := toks[q-1]
	var openK, closeK tokKind
	switch prev.kind {
	case tokAtom:
		return q - 1, nil
	case tokClassClose:
		openK, closeK = tokClassOpen, tokClassClose
	case tokGroupClose:
		openK, closeK = tokGroupOpen, tokGroupClose
	default:
		return 0, &StructureError{Source: src, Pos: toks[q].pos, Reason: "quantifier without operand"}
	}
	depth := 0
	for j := q - 1; j >= 0; j-- {
		switch toks[j].kind {
		case closeK:
			depth++
		case openK:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, &StructureError{Source: src, Pos: toks[q].pos, Reason: "no opening bracket for quantified group"}
}

func swapBrackets(toks []token) {
	for i := range toks {
		switch toks[i].kind {
		case tokClassOpen:
			toks[i].kind, toks[i].text = tokClassClose, "]"
		case tokClassClose:
			toks[i].kind, toks[i].text = tokClassOpen, "["
		case tokGroupOpen:
			toks[i].kind, toks[i].text = tokGroupClose, ")"
		case tokGroupClose:
			toks[i].kind, toks[i].text = tokGroupOpen, "("
		}
	}
}
