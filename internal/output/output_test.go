package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motifscan-core/engine"
	"motifscan/internal/pipeline"
	"motifscan/pkg/api"
)

var sample = []pipeline.Hit{
	{Match: engine.Match{Contig: "chr1", Start: 2, End: 4, Strand: engine.StrandPositive, Sequence: "GAA"}, MotifID: "gar", Pattern: "GAR", SourceFile: "a.fa"},
	{Match: engine.Match{Contig: "chr1", Start: 7, End: 9, Strand: engine.StrandNegative, Sequence: "TTC"}, MotifID: "gar", Pattern: "GAR", SourceFile: "a.fa"},
}

func TestHeaderStable(t *testing.T) {
	assert.Equal(t, "source_file\tmotif_id\tcontig\tstart\tend\tstrand", TSVHeader)
	assert.Equal(t, TSVHeader+"\tsequence", TSVHeaderSeq)
	assert.Equal(t, []string{"text", "bed", "json", "jsonl", "pretty"}, Formats)
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteText(&b, sample, TextOptions{Header: true, Sequence: true}))
	assert.Equal(t, TSVHeaderSeq+"\n"+
		"a.fa\tgar\tchr1\t2\t4\t+\tGAA\n"+
		"a.fa\tgar\tchr1\t7\t9\t-\tTTC\n", b.String())

	b.Reset()
	require.NoError(t, WriteText(&b, sample[:1], TextOptions{}))
	assert.Equal(t, "a.fa\tgar\tchr1\t2\t4\t+\n", b.String())
}

func TestTextColor(t *testing.T) {
	row := FormatRowTSV(sample[1], TextOptions{Color: true})
	assert.Contains(t, row, "\x1b[")
	assert.Contains(t, row, "-")

	plain := FormatRowTSV(sample[1], TextOptions{})
	assert.NotContains(t, plain, "\x1b[")
}

func TestStreamTextHeaderOnly(t *testing.T) {
	in := make(chan pipeline.Hit)
	close(in)
	var b bytes.Buffer
	require.NoError(t, StreamText(&b, in, TextOptions{Header: true}))
	assert.Equal(t, TSVHeader+"\n", b.String())
}

func TestBED(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteBED(&b, sample))
	assert.Equal(t, "chr1\t2\t5\tgar\t0\t+\nchr1\t7\t10\tgar\t0\t-\n", b.String())

	in := make(chan pipeline.Hit, 1)
	in <- sample[0]
	close(in)
	b.Reset()
	require.NoError(t, StreamBED(&b, in))
	assert.Equal(t, "chr1\t2\t5\tgar\t0\t+\n", b.String())
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteJSON(&b, sample))
	var got []api.MatchV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, api.MatchV1{SourceFile: "a.fa", MotifID: "gar", Pattern: "GAR", Contig: "chr1", Start: 7, End: 9, Strand: "-", Seq: "TTC"}, got[1])

	b.Reset()
	require.NoError(t, WriteJSON(&b, nil))
	assert.Equal(t, "[]", strings.TrimSpace(b.String()))
}

func TestPretty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WritePretty(&b, sample[1:]))
	assert.Equal(t, ""+
		"# chr1:7-9 (-) gar GAR\n"+
		"# 5'-...TTC...-3' # (+)\n"+
		"# 3'-...AAG...-5' # (-)\n"+
		"#    <--¦||\n"+
		"#       RAG\n"+
		"#\n", b.String())
}
