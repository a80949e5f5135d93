package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motifscan-core/engine"
	"motifscan/internal/pipeline"
)

func hit(contig string, start, end int, s engine.Strand, motif string) pipeline.Hit {
	return pipeline.Hit{Match: engine.Match{Contig: contig, Start: start, End: end, Strand: s}, MotifID: motif}
}

func TestSortHits(t *testing.T) {
	hs := []pipeline.Hit{
		hit("chr2", 0, 3, engine.StrandPositive, "a"),
		hit("chr1", 5, 8, engine.StrandNegative, "a"),
		hit("chr1", 5, 8, engine.StrandPositive, "b"),
		hit("chr1", 5, 8, engine.StrandPositive, "a"),
		hit("chr1", 5, 6, engine.StrandNegative, "z"),
		hit("chr1", 1, 9, engine.StrandNegative, "z"),
	}
	SortHits(hs)
	var got []string
	for _, h := range hs {
		got = append(got, h.Contig+":"+h.MotifID+h.Strand.String())
	}
	assert.Equal(t, []string{"chr1:z-", "chr1:z-", "chr1:a+", "chr1:b+", "chr1:a-", "chr2:a+"}, got)
	assert.Equal(t, 6, hs[1].End)
}
