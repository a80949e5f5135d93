// internal/writers/match.go
package writers

import (
	"encoding/json"
	"io"

	"motifscan/internal/common"
	"motifscan/internal/jsonlutil"
	"motifscan/internal/output"
	"motifscan/internal/pipeline"
)

func init() {
	Register(output.FormatText, func(w io.Writer, in <-chan pipeline.Hit, o Options) error {
		to := output.TextOptions{Header: o.Header, Sequence: o.Sequence, Color: o.Color}
		if o.Sort {
			return output.WriteText(w, collect(in), to)
		}
		return output.StreamText(w, in, to)
	})
	Register(output.FormatBED, func(w io.Writer, in <-chan pipeline.Hit, o Options) error {
		if o.Sort {
			return output.WriteBED(w, collect(in))
		}
		return output.StreamBED(w, in)
	})
	Register(output.FormatJSON, func(w io.Writer, in <-chan pipeline.Hit, o Options) error {
		list := drain(in)
		if o.Sort {
			common.SortHits(list)
		}
		return output.WriteJSON(w, list)
	})
	Register(output.FormatJSONL, func(w io.Writer, in <-chan pipeline.Hit, o Options) error {
		if o.Sort {
			in = replay(collect(in))
		}
		return jsonlutil.Drain(w, in, encodeJSONL, IsBrokenPipe)
	})
	Register(output.FormatPretty, func(w io.Writer, in <-chan pipeline.Hit, o Options) error {
		if o.Sort {
			return output.WritePretty(w, collect(in))
		}
		return output.StreamPretty(w, in)
	})
}

func encodeJSONL(enc *json.Encoder, h pipeline.Hit) error {
	return enc.Encode(output.ToAPIMatch(h))
}

func drain(in <-chan pipeline.Hit) []pipeline.Hit {
	var buf []pipeline.Hit
	for h := range in {
		buf = append(buf, h)
	}
	return buf
}

// collect drains and sorts.
func collect(in <-chan pipeline.Hit) []pipeline.Hit {
	buf := drain(in)
	common.SortHits(buf)
	return buf
}

func replay(list []pipeline.Hit) <-chan pipeline.Hit {
	ch := make(chan pipeline.Hit, len(list))
	for _, h := range list {
		ch <- h
	}
	close(ch)
	return ch
}

// StartMatchWriter spins up a writer goroutine for format. The error
// channel yields exactly one value once in is closed and drained. On a
// write failure the remaining hits are discarded so senders never block.
func StartMatchWriter(out io.Writer, format string, o Options, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Hit, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := Write(format, out, in, o)
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// StartMatchJSONLWriter streams each hit as one JSON line (v1).
func StartMatchJSONLWriter(out io.Writer, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	return jsonlutil.Start[pipeline.Hit](out, bufSize, encodeJSONL, IsBrokenPipe)
}
