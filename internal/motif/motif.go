// internal/motif/motif.go
package motif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"motifscan-core/engine"
	"motifscan-core/pattern"
)

// Motif is one named search pattern with its strand restriction.
type Motif struct {
	ID      string
	Pattern string
	Strand  engine.Strand
}

// LoadTSV reads motifs from path. Lines are "id<TAB>pattern[<TAB>strand]";
// blank lines and lines starting with '#' are skipped.
func LoadTSV(path string) ([]Motif, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadTSV(fh, path)
}

// ReadTSV is LoadTSV over a reader; name prefixes error messages.
func ReadTSV(r io.Reader, name string) ([]Motif, error) {
	var list []Motif
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 || len(f) > 3 {
			return nil, fmt.Errorf("%s:%d bad field count (want id, pattern and optional strand)", name, ln)
		}
		m := Motif{ID: f[0], Pattern: f[1]}
		if len(f) == 3 {
			s, err := engine.ParseStrand(f[2])
			if err != nil {
				return nil, fmt.Errorf("%s:%d %w", name, ln, err)
			}
			m.Strand = s
		}
		list = append(list, m)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Inline turns --pattern values into motifs named motif1..motifN.
func Inline(patterns []string, s engine.Strand) []Motif {
	out := make([]Motif, 0, len(patterns))
	for i, p := range patterns {
		out = append(out, Motif{ID: fmt.Sprintf("motif%d", i+1), Pattern: p, Strand: s})
	}
	return out
}

// Unique trims patterns, drops empty ones and removes repeats of the same
// (pattern, strand), keeping the first ID seen. Patterns are compared in
// compiled form: letter case is ignored, escapes such as \s vs \S are not.
func Unique(in []Motif) []Motif {
	type key struct {
		p string
		s engine.Strand
	}
	seen := make(map[key]struct{}, len(in))
	out := make([]Motif, 0, len(in))
	for _, m := range in {
		m.Pattern = strings.TrimSpace(m.Pattern)
		if m.Pattern == "" {
			continue
		}
		k := key{pattern.CompileForward(m.Pattern), m.Strand}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, m)
	}
	return out
}
