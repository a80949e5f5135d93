package output

import (
	"io"

	"motifscan/internal/pipeline"
	"motifscan/internal/pretty"
)

func WritePretty(w io.Writer, list []pipeline.Hit) error {
	for _, h := range list {
		if _, err := io.WriteString(w, pretty.RenderMatch(h.Match, h.MotifID, h.Pattern, pretty.DefaultOptions)); err != nil {
			return err
		}
	}
	return nil
}

func StreamPretty(w io.Writer, in <-chan pipeline.Hit) error {
	for h := range in {
		if _, err := io.WriteString(w, pretty.RenderMatch(h.Match, h.MotifID, h.Pattern, pretty.DefaultOptions)); err != nil {
			return err
		}
	}
	return nil
}
