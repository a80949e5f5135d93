// pkg/api/match_v1.go
package api

// MatchV1 is the stable JSON/JSONL schema for one motif hit.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchV1 struct {
	SourceFile string `json:"source_file,omitempty"`
	MotifID    string `json:"motif_id"`
	Pattern    string `json:"pattern"`
	Contig     string `json:"contig"`
	Start      int    `json:"start"`  // inclusive
	End        int    `json:"end"`    // inclusive
	Strand     string `json:"strand"` // "+" | "-"
	Seq        string `json:"seq,omitempty"`
}
