// internal/cli/command.go
package cli

import (
	"github.com/spf13/cobra"

	"motifscan/internal/version"
)

// Handlers receive parsed input from the command tree.
type Handlers struct {
	Search  func(cmd *cobra.Command, o Options) error
	Explain func(cmd *cobra.Command, pattern string) error
}

// NewRootCommand builds `motifscan [flags] FASTA...` with the explain and
// version subcommands.
func NewRootCommand(h Handlers) *cobra.Command {
	var v flagValues
	root := &cobra.Command{
		Use:   "motifscan [flags] FASTA...",
		Short: "motifscan - find IUPAC motifs on both strands of FASTA sequences",
		Long: `motifscan reports every occurrence of one or more motifs on the forward
strand and the reverse-complement strand. Motifs use IUPAC codes
(R, Y, N, ...) and may use a regular-expression dialect over them.
FASTA input may be plain, gzip or zstd compressed, or '-' for stdin.`,
		Example: `  motifscan -p GAATTC genome.fa
  motifscan -p 'TATAWAWR' -p GATC --strand + -o bed genome.fa.gz
  motifscan --motifs motifs.tsv --sequence --sort -o jsonl reads.fa.zst`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(v.patterns) == 0 && v.motifFile == "" {
				return cmd.Help()
			}
			o, err := v.resolve(cmd, args)
			if err != nil {
				return err
			}
			return h.Search(cmd, o)
		},
	}
	v.bind(root)
	root.SetVersionTemplate("motifscan version {{.Version}}\n")

	root.AddCommand(&cobra.Command{
		Use:   "explain PATTERN",
		Short: "Show how a motif is compiled and which matcher runs it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Explain(cmd, args[0])
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("motifscan version %s\n", version.Version)
		},
	})
	return root
}
