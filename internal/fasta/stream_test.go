package fasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2
NNnn
`

func collect(t *testing.T, path string, chunk, overlap int) []Record {
	t.Helper()
	var out []Record
	err := StreamChunksCtx(context.Background(), path, chunk, overlap, func(r Record) error {
		out = append(out, r)
		return nil
	})
	require.NoError(t, err)
	return out
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestWholeRecords(t *testing.T) {
	recs := collect(t, writeFile(t, "x.fa", []byte(plain)), 0, 0)
	require.Len(t, recs, 2)
	assert.Equal(t, Record{ID: "seq1", Seq: []byte("ACGTacgt"), Last: true}, recs[0])
	assert.Equal(t, Record{ID: "seq2", Index: 1, Seq: []byte("NNnn"), Last: true}, recs[1])
}

func TestCompressedInput(t *testing.T) {
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := io.WriteString(gw, plain)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = io.WriteString(zw, plain)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	// magic bytes win over a misleading name
	for name, data := range map[string][]byte{"a.fa.gz": gz.Bytes(), "b.fa.zst": zs.Bytes(), "c.fa": zs.Bytes()} {
		recs := collect(t, writeFile(t, name, data), 0, 0)
		require.Len(t, recs, 2, name)
		assert.Equal(t, "seq1", recs[0].ID, name)
		assert.Equal(t, "NNnn", string(recs[1].Seq), name)
	}
}

func TestChunksOverlap(t *testing.T) {
	p := writeFile(t, "c.fa", []byte(">r\n0123456789\n"))
	recs := collect(t, p, 4, 1)
	var offs []int
	var seqs []string
	for _, r := range recs {
		assert.Equal(t, "r", r.ID)
		offs = append(offs, r.Offset)
		seqs = append(seqs, string(r.Seq))
	}
	assert.Equal(t, []int{0, 3, 6}, offs)
	assert.Equal(t, []string{"0123", "3456", "6789"}, seqs)
	assert.False(t, recs[1].Last)
	assert.True(t, recs[2].Last)

	// no usable step: whole record
	recs = collect(t, p, 4, 4)
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Offset)
}

func TestStdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()
	assert.Len(t, collect(t, "-", 0, 0), 2)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := StreamReaderCtx(ctx, strings.NewReader(plain), 0, 0, func(Record) error { n++; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestErrors(t *testing.T) {
	err := StreamReaderCtx(context.Background(), strings.NewReader("ACGT\n>x\nA\n"), 0, 0, func(Record) error { return nil })
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.fa"))
	assert.Error(t, err)

	stop := io.ErrClosedPipe
	err = StreamReaderCtx(context.Background(), strings.NewReader(plain), 0, 0, func(Record) error { return stop })
	assert.ErrorIs(t, err, stop)
}

func TestRecordIndexCountsDuplicateIDs(t *testing.T) {
	recs := collect(t, writeFile(t, "dup.fa", []byte(">r\nACGTACGT\n>r x\nTTTT\n")), 5, 1)
	require.Len(t, recs, 3)
	assert.Equal(t, []int{0, 0, 1}, []int{recs[0].Index, recs[1].Index, recs[2].Index})
	assert.Equal(t, "r", recs[2].ID)
}
