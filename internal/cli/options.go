// internal/cli/options.go
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"motifscan-core/engine"
	"motifscan/internal/cliutil"
	"motifscan/internal/config"
	"motifscan/internal/output"
)

// Options holds the resolved search settings: flags, then the config
// file, then built-in defaults.
type Options struct {
	// Motif and sequence input
	Patterns  []string
	MotifFile string
	SeqFiles  []string
	Strand    engine.Strand

	// Coordinates
	Offset int

	// Performance
	Threads   int
	ChunkSize int
	DedupeCap int

	// Output
	Output   string
	Sequence bool
	Sort     bool
	Header   bool
	Color    bool

	// Diagnostics
	ConfigFile      string
	Verbose         bool
	Quiet           bool
	NoMatchExitCode int
}

// UsageError marks a problem with the command line itself.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// flagValues are the raw flag targets before config merging.
type flagValues struct {
	patterns  []string
	motifFile string
	strand    string
	offset    int
	threads   int
	chunkSize int
	dedupeCap int
	output    string
	sequence  bool
	sort      bool
	noHeader  bool
	color     bool
	config    string
	verbose   bool
	quiet     bool
	noMatch   int
}

func (v *flagValues) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVarP(&v.patterns, "pattern", "p", nil, "IUPAC motif or regex (repeatable)")
	f.StringVarP(&v.motifFile, "motifs", "m", "", "TSV motif file: id, pattern, optional strand")
	f.StringVarP(&v.strand, "strand", "s", "both", "strand for --pattern motifs: both | + | -")
	f.IntVar(&v.offset, "offset", 0, "added to every reported coordinate")
	f.IntVarP(&v.threads, "threads", "t", 0, "worker goroutines (0 = all CPUs)")
	f.IntVar(&v.chunkSize, "chunk-size", 0, "split records into N-bp windows (0 = no chunking)")
	f.IntVar(&v.dedupeCap, "dedupe-cap", 0, "hits remembered for duplicate suppression (0 = default)")
	f.StringVarP(&v.output, "output", "o", output.FormatText, "output format: text | bed | json | jsonl | pretty")
	f.BoolVar(&v.sequence, "sequence", false, "include the matched sequence")
	f.BoolVar(&v.sort, "sort", false, "sort output by contig, start, end, strand, motif")
	f.BoolVar(&v.noHeader, "no-header", false, "omit the text header line")
	f.BoolVar(&v.color, "color", false, "colour the text output")
	f.StringVar(&v.config, "config", "", "YAML defaults file (or $"+config.EnvVar+")")
	f.BoolVarP(&v.verbose, "verbose", "v", false, "debug logging on stderr")
	f.BoolVarP(&v.quiet, "quiet", "q", false, "errors only on stderr")
	f.IntVar(&v.noMatch, "no-match-exit-code", 0, "exit code when nothing matched")
}

// resolve merges flags, config defaults and positional FASTA paths.
func (v *flagValues) resolve(cmd *cobra.Command, args []string) (Options, error) {
	cfgPath := config.Resolve(v.config)
	d, err := config.Load(cfgPath)
	if err != nil {
		return Options{}, usagef("%v", err)
	}
	files, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return Options{}, usagef("%v", err)
	}
	changed := cmd.Flags().Changed

	str := func(name string, flag string, def *string) string {
		if !changed(name) && def != nil {
			return *def
		}
		return flag
	}
	num := func(name string, flag int, def *int) int {
		if !changed(name) && def != nil {
			return *def
		}
		return flag
	}
	boolean := func(name string, flag bool, def *bool) bool {
		if !changed(name) && def != nil {
			return *def
		}
		return flag
	}

	o := Options{
		Patterns:        v.patterns,
		MotifFile:       v.motifFile,
		SeqFiles:        files,
		Offset:          v.offset,
		Threads:         num("threads", v.threads, d.Threads),
		ChunkSize:       num("chunk-size", v.chunkSize, d.ChunkSize),
		DedupeCap:       num("dedupe-cap", v.dedupeCap, d.DedupeCap),
		Output:          str("output", v.output, d.Output),
		Sequence:        boolean("sequence", v.sequence, d.IncludeSequence),
		Sort:            boolean("sort", v.sort, d.Sort),
		Color:           boolean("color", v.color, d.Color),
		ConfigFile:      cfgPath,
		Verbose:         v.verbose,
		Quiet:           v.quiet,
		NoMatchExitCode: v.noMatch,
	}
	o.Header = !v.noHeader
	if !changed("no-header") && d.Header != nil {
		o.Header = *d.Header
	}
	if o.Strand, err = engine.ParseStrand(str("strand", v.strand, d.Strand)); err != nil {
		return o, &UsageError{Err: err}
	}
	return o, Validate(o)
}

// Validate checks option combinations.
func Validate(o Options) error {
	switch {
	case len(o.Patterns) == 0 && o.MotifFile == "":
		return usagef("provide --pattern or --motifs")
	case len(o.SeqFiles) == 0:
		return usagef("at least one FASTA file (or '-') is required")
	case o.Threads < 0:
		return usagef("--threads must be >= 0")
	case o.ChunkSize < 0:
		return usagef("--chunk-size must be >= 0")
	case o.DedupeCap < 0:
		return usagef("--dedupe-cap must be >= 0")
	case !slices.Contains(output.Formats, o.Output):
		return usagef("invalid --output %q", o.Output)
	case o.Verbose && o.Quiet:
		return usagef("--verbose conflicts with --quiet")
	case o.NoMatchExitCode < 0 || o.NoMatchExitCode > 125:
		return usagef("--no-match-exit-code must be within 0..125")
	}
	for _, p := range o.Patterns {
		if p == "" {
			return usagef("empty --pattern")
		}
	}
	stdin := 0
	for _, f := range o.SeqFiles {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return usagef("stdin ('-') given more than once")
	}
	return nil
}
