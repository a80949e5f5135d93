package iupac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevCompSimple(t *testing.T) {
	got, err := RevComp([]byte("AGTC"))
	require.NoError(t, err)
	assert.Equal(t, "GACT", string(got))
}

func TestRevCompPreservesCaseAndN(t *testing.T) {
	got, err := RevComp([]byte("acgtNNAc"))
	require.NoError(t, err)
	assert.Equal(t, "gTNNacgt", string(got))
}

func TestRevCompDoesNotAliasInput(t *testing.T) {
	in := []byte("AAAA")
	out, err := RevComp(in)
	require.NoError(t, err)
	out[0] = 'G'
	assert.Equal(t, "AAAA", string(in))
}

func TestRevCompRejectsAmbiguityCodes(t *testing.T) {
	_, err := RevComp([]byte("ACRT"))
	require.Error(t, err)

	var ib *InvalidByteError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, byte('R'), ib.Byte)
	assert.Equal(t, 2, ib.Pos)
}

func TestRevCompEmpty(t *testing.T) {
	got, err := RevComp(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComplementByte(t *testing.T) {
	c, ok := ComplementByte('g')
	assert.True(t, ok)
	assert.Equal(t, byte('c'), c)

	_, ok = ComplementByte('-')
	assert.False(t, ok)
}
