// internal/runutil/runutil.go
package runutil

import (
	"fmt"

	"motifscan-core/pattern"
)

// ComputeOverlap returns the overlap consecutive chunks must share so that
// every occurrence of a motif no wider than maxSpan lies whole in at least
// one chunk.
func ComputeOverlap(maxSpan int) int {
	if maxSpan <= 1 {
		return 0
	}
	return maxSpan - 1
}

// MaxSpan is the widest possible match over patterns. ok is false when any
// pattern can match an unbounded stretch.
func MaxSpan(patterns []string) (span int, ok bool) {
	for _, p := range patterns {
		w, bounded := pattern.MaxWidth(p)
		if !bounded {
			return 0, false
		}
		span = max(span, w)
	}
	return span, true
}

// ValidateChunking decides whether chunking is allowed and returns
// (chunkSize, overlap, warnings).
//   - chunkSize <= 0 means no chunking
//   - an unbounded or anchored motif disables chunking
//   - chunkSize must exceed the widest motif
func ValidateChunking(chunkSize int, patterns []string) (int, int, []string) {
	if chunkSize <= 0 {
		return 0, 0, nil
	}
	for _, p := range patterns {
		if pattern.Anchored(p) {
			return 0, 0, []string{fmt.Sprintf("motif %q is anchored to the sequence ends; --chunk-size disabled", p)}
		}
	}
	span, ok := MaxSpan(patterns)
	if !ok {
		return 0, 0, []string{"a motif has no maximum length; --chunk-size disabled"}
	}
	if chunkSize <= span {
		return 0, 0, []string{fmt.Sprintf("--chunk-size must be > the widest motif (%d); disabled", span)}
	}
	return chunkSize, ComputeOverlap(span), nil
}
