// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"motifscan-core/engine"
	"motifscan/internal/pipeline"
)

// TextOptions controls the TSV writer.
type TextOptions struct {
	Header   bool
	Sequence bool // add the matched text column
	Color    bool // force ANSI colour on, regardless of the terminal
}

type palette struct {
	plus, minus, motif *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		plus:  color.New(color.FgGreen, color.Bold),
		minus: color.New(color.FgRed, color.Bold),
		motif: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.plus, p.minus, p.motif} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) strand(s engine.Strand) string {
	if s == engine.StrandNegative {
		return p.minus.Sprint(s)
	}
	return p.plus.Sprint(s)
}

// FormatRowTSV returns one text row without the trailing newline.
func FormatRowTSV(h pipeline.Hit, o TextOptions) string {
	return formatRow(h, o, newPalette(o.Color))
}

func formatRow(h pipeline.Hit, o TextOptions, p palette) string {
	row := fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%s",
		h.SourceFile, p.motif.Sprint(h.MotifID), h.Contig, h.Start, h.End, p.strand(h.Strand))
	if o.Sequence {
		row += "\t" + h.Sequence
	}
	return row
}

func writeHeader(w io.Writer, o TextOptions) error {
	if !o.Header {
		return nil
	}
	hdr := TSVHeader
	if o.Sequence {
		hdr = TSVHeaderSeq
	}
	_, err := fmt.Fprintln(w, hdr)
	return err
}

// WriteText writes hits as TSV rows.
func WriteText(w io.Writer, list []pipeline.Hit, o TextOptions) error {
	if err := writeHeader(w, o); err != nil {
		return err
	}
	p := newPalette(o.Color)
	for _, h := range list {
		if _, err := fmt.Fprintln(w, formatRow(h, o, p)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel. The header is written even when
// no hit arrives.
func StreamText(w io.Writer, in <-chan pipeline.Hit, o TextOptions) error {
	if err := writeHeader(w, o); err != nil {
		return err
	}
	p := newPalette(o.Color)
	for h := range in {
		if _, err := fmt.Fprintln(w, formatRow(h, o, p)); err != nil {
			return err
		}
	}
	return nil
}
