// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	front := []string{
		"motifscan/internal/appcore", "motifscan/internal/app",
		"motifscan/internal/cli", "motifscan/cmd/",
	}
	bans := map[string][]string{
		"motifscan/internal/fasta":    append([]string{"motifscan/internal/pipeline"}, front...),
		"motifscan/internal/motif":    append([]string{"motifscan/internal/pipeline"}, front...),
		"motifscan/internal/runutil":  append([]string{"motifscan/internal/pipeline"}, front...),
		"motifscan/internal/pipeline": append([]string{"motifscan/internal/writers", "motifscan/internal/output"}, front...),
		"motifscan/internal/output":   append([]string{"motifscan/internal/writers"}, front...),
		"motifscan/internal/writers":  front,
		"motifscan/internal/pretty": append([]string{
			"motifscan/internal/pipeline", "motifscan/internal/output", "motifscan/internal/writers",
		}, front...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "motifscan/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "motifscan/") {
					continue
				}
				for _, ban := range forbidden {
					if dep == ban || (strings.HasSuffix(ban, "/") && strings.HasPrefix(dep, ban)) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
