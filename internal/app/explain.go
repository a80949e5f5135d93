// internal/app/explain.go
package app

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"motifscan-core/engine"
	"motifscan-core/pattern"
)

// Explain prints how p compiles for each strand and which matcher each
// strand setting uses.
func Explain(w io.Writer, p string) error {
	a, err := pattern.Analyze(p)
	if err != nil {
		return err
	}
	if _, err := engine.Search(nil, engine.Query{Pattern: p}); err != nil {
		return err
	}
	width := "unbounded"
	if n, ok := pattern.MaxWidth(p); ok {
		width = strconv.Itoa(n)
	}
	reversed := a.Reversed
	if reversed == "" {
		reversed = "-"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "pattern\t%s\n", a.Pattern)
	fmt.Fprintf(tw, "dialect\t%s\n", a.Dialect)
	fmt.Fprintf(tw, "forward\t%s\n", a.Forward)
	fmt.Fprintf(tw, "complement\t%s\n", a.Complement)
	fmt.Fprintf(tw, "reversed\t%s\n", reversed)
	fmt.Fprintf(tw, "max_width\t%s\n", width)
	fmt.Fprintf(tw, "anchored\t%t\n", pattern.Anchored(p))
	for _, s := range []engine.Strand{engine.StrandBoth, engine.StrandPositive, engine.StrandNegative} {
		fmt.Fprintf(tw, "strategy[%s]\t%s\n", s, engine.Plan(p, s))
	}
	return tw.Flush()
}
