// internal/output/json.go
package output

import (
	"io"

	"motifscan/internal/jsonutil"
	"motifscan/internal/pipeline"
	"motifscan/pkg/api"
)

// ToAPIMatch converts a hit to the stable wire schema (v1).
func ToAPIMatch(h pipeline.Hit) api.MatchV1 {
	return api.MatchV1{
		SourceFile: h.SourceFile,
		MotifID:    h.MotifID,
		Pattern:    h.Pattern,
		Contig:     h.Contig,
		Start:      h.Start,
		End:        h.End,
		Strand:     h.Strand.String(),
		Seq:        h.Sequence,
	}
}

// WriteJSON writes a single indented JSON array of v1 matches.
func WriteJSON(w io.Writer, list []pipeline.Hit) error {
	out := make([]api.MatchV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIMatch(h))
	}
	return jsonutil.EncodePretty(w, out)
}
