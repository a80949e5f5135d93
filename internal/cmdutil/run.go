package cmdutil

import (
	"context"

	"motifscan/internal/motif"
	"motifscan/internal/pipeline"
)

// Tally counts the hits that were passed on, overall and per motif.
type Tally struct {
	Total    int
	PerMotif map[string]int
}

// RunStream runs the pipeline, lets keep filter or transform each hit and
// hands the survivors to send. It returns what was sent and the first error.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	motifs []motif.Motif,
	keep func(pipeline.Hit) (bool, T, error),
	send func(T) error,
) (Tally, error) {
	t := Tally{PerMotif: make(map[string]int, len(motifs))}
	err := pipeline.ForEachMatch(ctx, cfg, seqFiles, motifs, func(h pipeline.Hit) error {
		ok, out, err := keep(h)
		if err != nil || !ok {
			return err
		}
		if err := send(out); err != nil {
			return err
		}
		t.Total++
		t.PerMotif[h.MotifID]++
		return nil
	})
	return t, err
}
