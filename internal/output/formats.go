package output

// Output formats accepted by --output.
const (
	FormatText   = "text"
	FormatBED    = "bed"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatPretty = "pretty"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatBED, FormatJSON, FormatJSONL, FormatPretty}

// TSVHeader is the header row for text output; TSVHeaderSeq adds the
// matched sequence column.
const (
	TSVHeader    = "source_file\tmotif_id\tcontig\tstart\tend\tstrand"
	TSVHeaderSeq = TSVHeader + "\tsequence"
)
