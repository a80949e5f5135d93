// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"motifscan-core/pattern"
	"motifscan/internal/appcore"
	"motifscan/internal/cli"
	"motifscan/internal/cmdutil"
	"motifscan/internal/motif"
	"motifscan/internal/writers"
)

// RunContext parses argv, runs the requested command and returns the exit
// code: 0 ok, 2 usage or motif errors, 3 runtime errors, 130 cancelled,
// or --no-match-exit-code when nothing matched.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	root := cli.NewRootCommand(cli.Handlers{
		Search: func(cmd *cobra.Command, o cli.Options) error {
			code = search(cmd.Context(), stdout, stderr, o)
			return nil
		},
		Explain: func(cmd *cobra.Command, p string) error {
			return Explain(cmd.OutOrStdout(), p)
		},
	})
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(parent); err != nil {
		if writers.IsBrokenPipe(err) {
			return appcore.ExitOK
		}
		fmt.Fprintln(stderr, "error:", err)
		var ue *cli.UsageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		}
		return appcore.ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func search(ctx context.Context, stdout, stderr io.Writer, o cli.Options) int {
	log := cmdutil.NewLogger(stderr, o.Verbose, o.Quiet)
	defer func() { _ = log.Sync() }()

	var motifs []motif.Motif
	if o.MotifFile != "" {
		ms, err := motif.LoadTSV(o.MotifFile)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return appcore.ExitUsage
		}
		motifs = append(motifs, ms...)
	}
	motifs = motif.Unique(append(motifs, motif.Inline(o.Patterns, o.Strand)...))
	if len(motifs) == 0 {
		fmt.Fprintln(stderr, "error:", &pattern.PatternError{Err: pattern.ErrEmptyPattern})
		return appcore.ExitUsage
	}

	wf := appcore.NewMatchWriterFactory(o.Output, writers.Options{
		Sort:     o.Sort,
		Header:   o.Header,
		Color:    o.Color,
		Sequence: o.Sequence,
	})
	return appcore.Run(ctx, stdout, stderr, log, appcore.Options{
		SeqFiles:        o.SeqFiles,
		Offset:          o.Offset,
		Threads:         o.Threads,
		ChunkSize:       o.ChunkSize,
		DedupeCap:       o.DedupeCap,
		Quiet:           o.Quiet,
		NoMatchExitCode: o.NoMatchExitCode,
	}, motifs, wf)
}
