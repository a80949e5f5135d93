package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Dialect
	}{
		{"ACGT", Literal},
		{"acgt", Literal},
		{"AcGt", Literal},
		{"GAR", Reversible},
		{"GA[AG]{2,3}", Reversible},
		{"(GAT|CCA)N+", Reversible},
		{"[^A]T", Reversible},
		{"GA.*?TC", Reversible},
		{"^GAR", General},
		{"GAR$", General},
		{`GA\d`, General},
		{"(?:GA)T", General},
		{"(?=A)T", General},
		{"G[A-C]", General},
		{"GA**", General},
		{"", General},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.in), "Classify(%q)", tc.in)
	}
}

func TestClassify_UnambiguousIsAlwaysLiteral(t *testing.T) {
	bases := "ACGTacgt"
	// every 1..3-mer over the alphabet
	var walk func(prefix string, depth int)
	walk = func(prefix string, depth int) {
		if prefix != "" {
			assert.Equal(t, Literal, Classify(prefix), prefix)
		}
		if depth == 0 {
			return
		}
		for i := 0; i < len(bases); i++ {
			walk(prefix+bases[i:i+1], depth-1)
		}
	}
	walk("", 3)
}

func TestClassify_OutsideGrammarNeverReversible(t *testing.T) {
	for _, meta := range []string{"^", "$", `\`, "-", "(?", "{,}", ",", "#", " "} {
		p := "GAR" + meta + "T"
		assert.NotEqual(t, Reversible, Classify(p), p)
	}
}

func TestAnalyze(t *testing.T) {
	a, err := Analyze("GAR")
	require.NoError(t, err)
	assert.Equal(t, Reversible, a.Dialect)
	assert.Equal(t, "GA[AG]", a.Forward)
	assert.Equal(t, "CT[CT]", a.Complement)
	assert.Equal(t, "[TC]TC", a.Reversed)

	lit, err := Analyze("ACGT")
	require.NoError(t, err)
	assert.Equal(t, Literal, lit.Dialect)
	assert.Empty(t, lit.Reversed)

	_, err = Analyze("")
	assert.True(t, errors.Is(err, ErrEmptyPattern))
	var pe *PatternError
	assert.True(t, errors.As(err, &pe))
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "literal", Literal.String())
	assert.Equal(t, "reversible", Reversible.String())
	assert.Equal(t, "general", General.String())
}
