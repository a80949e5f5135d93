// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"motifscan/internal/pipeline"
)

// Options are the presentation switches shared by all formats.
type Options struct {
	Sort     bool
	Header   bool
	Color    bool
	Sequence bool
}

// Sink consumes hits until in is closed.
type Sink func(w io.Writer, in <-chan pipeline.Hit, o Options) error

var sinks = map[string]Sink{}

// Register installs (or replaces) the sink for a format.
func Register(format string, fn Sink) { sinks[format] = fn }

// Registered lists the known formats in sorted order.
func Registered() []string {
	out := make([]string, 0, len(sinks))
	for f := range sinks {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the sink registered for format.
func Write(format string, w io.Writer, in <-chan pipeline.Hit, o Options) error {
	fn, ok := sinks[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, in, o)
}
