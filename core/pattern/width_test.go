package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxWidth(t *testing.T) {
	cases := []struct {
		in      string
		width   int
		bounded bool
	}{
		{"ACGT", 4, true},
		{"GAR", 3, true},
		{"GAN{2,5}T", 8, true},
		{"(GAT|CC)A", 4, true},
		{"^GA?C$", 3, true},
		{"[^N]T", 2, true},
		{"GA.*TC", 0, false},
		{"GA+", 0, false},
		{"A{3,}", 0, false},
		{"(?=A)", 0, false},
		{"", 0, true},
	}
	for _, tc := range cases {
		w, ok := MaxWidth(tc.in)
		assert.Equal(t, tc.bounded, ok, tc.in)
		assert.Equal(t, tc.width, w, tc.in)
	}
}

func TestAnchored(t *testing.T) {
	assert.True(t, Anchored("^GAR"))
	assert.True(t, Anchored("(GA|T$)"))
	assert.True(t, Anchored(`\AGA`))
	assert.False(t, Anchored("GA[^C]T"))
	assert.False(t, Anchored("GAATTC"))
}
