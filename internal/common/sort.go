// internal/common/sort.go
package common

import (
	"sort"

	"motifscan/internal/pipeline"
)

// LessHit orders hits by contig, start, end, strand, motif and file (for --sort).
func LessHit(a, b pipeline.Hit) bool {
	if a.Contig != b.Contig {
		return a.Contig < b.Contig
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}
	if a.Strand != b.Strand {
		return a.Strand < b.Strand
	}
	if a.MotifID != b.MotifID {
		return a.MotifID < b.MotifID
	}
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	return a.Record < b.Record
}

func SortHits(hs []pipeline.Hit) {
	sort.SliceStable(hs, func(i, j int) bool { return LessHit(hs[i], hs[j]) })
}
