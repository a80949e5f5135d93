// internal/output/bed.go
package output

import (
	"fmt"
	"io"

	"motifscan/internal/pipeline"
)

// FormatRowBED renders a hit as BED6. Hit coordinates are inclusive, BED
// ends are exclusive; starts are written as reported, so callers wanting
// strict BED keep --offset at 0.
func FormatRowBED(h pipeline.Hit) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t0\t%s", h.Contig, h.Start, h.End+1, h.MotifID, h.Strand)
}

func WriteBED(w io.Writer, list []pipeline.Hit) error {
	for _, h := range list {
		if _, err := fmt.Fprintln(w, FormatRowBED(h)); err != nil {
			return err
		}
	}
	return nil
}

func StreamBED(w io.Writer, in <-chan pipeline.Hit) error {
	for h := range in {
		if _, err := fmt.Fprintln(w, FormatRowBED(h)); err != nil {
			return err
		}
	}
	return nil
}
