// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"go.uber.org/zap"

	"motifscan-core/engine"
	"motifscan/internal/cmdutil"
	"motifscan/internal/motif"
	"motifscan/internal/pipeline"
	"motifscan/internal/runutil"
	"motifscan/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

type Options struct {
	SeqFiles []string

	Offset    int
	Threads   int
	ChunkSize int
	DedupeCap int

	Quiet           bool
	NoMatchExitCode int
}

// CheckMotifs compiles every motif once so pattern problems are reported
// before any input is read.
func CheckMotifs(motifs []motif.Motif) error {
	for _, m := range motifs {
		if _, err := engine.Search(nil, engine.Query{Pattern: m.Pattern, Strand: m.Strand}); err != nil {
			return fmt.Errorf("motif %s: %w", m.ID, err)
		}
	}
	return nil
}

// Run scans o.SeqFiles for motifs and streams hits to the writer from wf.
// It returns the process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	log *zap.Logger,
	o Options,
	motifs []motif.Motif,
	wf WriterFactory,
) int {
	if log == nil {
		log = zap.NewNop()
	}
	outw := bufio.NewWriter(stdout)

	if err := CheckMotifs(motifs); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	patterns := make([]string, len(motifs))
	for i, m := range motifs {
		patterns[i] = m.Pattern
	}
	chunkSize, overlap, warns := runutil.ValidateChunking(o.ChunkSize, patterns)
	for _, w := range warns {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	log.Debug("starting scan",
		zap.Int("motifs", len(motifs)),
		zap.Int("files", len(o.SeqFiles)),
		zap.Int("threads", thr),
		zap.Int("chunk_size", chunkSize),
		zap.Int("overlap", overlap))

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	tally, perr := cmdutil.RunStream[pipeline.Hit](
		ctx,
		pipeline.Config{
			Threads:         thr,
			ChunkSize:       chunkSize,
			Overlap:         overlap,
			BaseOffset:      o.Offset,
			IncludeSequence: wf.NeedSeq(),
			DedupeCap:       o.DedupeCap,
			Logger:          log,
		},
		o.SeqFiles,
		motifs,
		func(h pipeline.Hit) (bool, pipeline.Hit, error) { return true, h, nil },
		func(h pipeline.Hit) error {
			select {
			case inCh <- h:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return ExitRuntime
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCancelled
		}
		fmt.Fprintln(stderr, "error:", perr)
		return ExitRuntime
	}
	for _, m := range motifs {
		log.Debug("motif done", zap.String("motif", m.ID), zap.Int("hits", tally.PerMotif[m.ID]))
	}
	if tally.Total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
