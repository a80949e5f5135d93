package appcore

import (
	"io"

	"motifscan/internal/output"
	"motifscan/internal/pipeline"
	"motifscan/internal/writers"
)

// WriterFactory starts the output side of a run.
type WriterFactory interface {
	NeedSeq() bool
	Start(out io.Writer, bufSize int) (chan<- pipeline.Hit, <-chan error)
}

// MatchWriterFactory writes hits in one of the registered formats.
type MatchWriterFactory struct {
	Format string
	Opts   writers.Options
}

func NewMatchWriterFactory(format string, o writers.Options) MatchWriterFactory {
	return MatchWriterFactory{Format: format, Opts: o}
}

// NeedSeq reports whether matched text must be captured. BED has no
// column for it; pretty always draws it.
func (w MatchWriterFactory) NeedSeq() bool {
	switch w.Format {
	case output.FormatPretty:
		return true
	case output.FormatBED:
		return false
	}
	return w.Opts.Sequence
}

func (w MatchWriterFactory) Start(out io.Writer, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	if w.Format == output.FormatJSONL && !w.Opts.Sort {
		return writers.StartMatchJSONLWriter(out, bufSize)
	}
	return writers.StartMatchWriter(out, w.Format, w.Opts, bufSize)
}
