// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"motifscan-core/engine"
	"motifscan/internal/fasta"
	"motifscan/internal/motif"
	"motifscan/internal/runutil"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads         int  // worker goroutines (>=1)
	ChunkSize       int  // FASTA window; 0 disables chunking
	Overlap         int  // bytes shared by consecutive windows
	BaseOffset      int  // added to every reported coordinate
	IncludeSequence bool // fill Match.Sequence
	DedupeCap       int  // LRU capacity for duplicate suppression (0 = default)

	// Search defaults to engine.Search.
	Search Searcher
	Logger *zap.Logger
}

// Searcher runs one motif query over one buffer.
type Searcher func(seq []byte, q engine.Query) (engine.Cursor, error)

// Hit is a match tagged with the motif and file it came from.
type Hit struct {
	engine.Match
	MotifID    string
	Pattern    string
	SourceFile string
	Record     int // ordinal of the FASTA record within SourceFile
}

// Key identifies a hit in record-global coordinates.
type Key struct {
	File, Contig, Motif string
	Record              int
	Start, End          int
	Strand              engine.Strand
}

func (h Hit) Key() Key {
	return Key{File: h.SourceFile, Contig: h.Contig, Motif: h.MotifID, Record: h.Record, Start: h.Start, End: h.End, Strand: h.Strand}
}

type job struct {
	rec        fasta.Record
	sourceFile string
}

// ForEachMatch streams every hit of every motif over seqFiles to visit.
// Chunks are searched in parallel; each hit is reported by the one window
// that sees it whole, so matches never come out truncated at a window
// edge. visit runs on a single goroutine. The first error (engine,
// input, visit or ctx) stops the run and is returned.
func ForEachMatch(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	motifs []motif.Motif,
	visit func(Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Search == nil {
		cfg.Search = engine.Search
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	step := cfg.ChunkSize - cfg.Overlap

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	jobs := make(chan job, cfg.Threads*2)
	results := make(chan []Hit, cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				hits, err := searchRecord(ctx, cfg, step, j, motifs)
				if err != nil {
					fail(err)
					continue
				}
				if len(hits) == 0 {
					continue
				}
				select {
				case results <- hits:
				case <-ctx.Done():
				}
			}
		}()
	}

	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		seen := runutil.NewLRUSet[Key](cfg.DedupeCap)
		for hs := range results {
			if ctx.Err() != nil {
				continue
			}
			for _, h := range hs {
				if seen.Add(h.Key()) {
					continue
				}
				if err := visit(h); err != nil {
					fail(err)
					break
				}
			}
		}
	}()

	for _, fa := range seqFiles {
		if ctx.Err() != nil {
			break
		}
		log.Debug("scanning", zap.String("file", fa), zap.Int("motifs", len(motifs)))
		err := fasta.StreamChunksCtx(ctx, fa, cfg.ChunkSize, cfg.Overlap, func(r fasta.Record) error {
			select {
			case jobs <- job{rec: r, sourceFile: fa}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil && ctx.Err() == nil {
			fail(fmt.Errorf("%s: %w", fa, err))
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func searchRecord(ctx context.Context, cfg Config, step int, j job, motifs []motif.Motif) ([]Hit, error) {
	var hits []Hit
	offset := cfg.BaseOffset + j.rec.Offset
	for _, mo := range motifs {
		// The general strategy finds negative matches from their right end,
		// so those are assigned to windows by end rather than by start.
		byEnd := engine.Plan(mo.Pattern, mo.Strand) == engine.StrategyGeneral
		owned := func(m engine.Match) bool {
			if cfg.ChunkSize <= 0 {
				return true
			}
			if byEnd && m.Strand == engine.StrandNegative {
				e := m.End - offset
				return (j.rec.Offset == 0 || e >= cfg.Overlap) && (j.rec.Last || e < step+cfg.Overlap)
			}
			return j.rec.Last || m.Start-offset < step
		}
		cur, err := cfg.Search(j.rec.Seq, engine.Query{
			Pattern:         mo.Pattern,
			Strand:          mo.Strand,
			Contig:          j.rec.ID,
			Offset:          offset,
			IncludeSequence: cfg.IncludeSequence,
		})
		if err != nil {
			return nil, fmt.Errorf("motif %s: %w", mo.ID, err)
		}
		n := 0
		for m, err := range engine.All(cur) {
			if err != nil {
				return nil, fmt.Errorf("%s: %s: motif %s: %w", j.sourceFile, j.rec.ID, mo.ID, err)
			}
			if n++; n%4096 == 0 && ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !owned(m) {
				continue
			}
			hits = append(hits, Hit{Match: m, MotifID: mo.ID, Pattern: mo.Pattern, SourceFile: j.sourceFile, Record: j.rec.Index})
		}
	}
	return hits, nil
}
