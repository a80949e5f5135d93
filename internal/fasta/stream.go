// internal/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is a FASTA sequence or one window of it. Index is the 0-based
// ordinal of the record in its file, so records sharing an ID stay apart.
// Offset is the 0-based position of Seq[0] within the full record; Last
// marks the final window.
type Record struct {
	ID     string
	Index  int
	Offset int
	Seq    []byte
	Last   bool
}

// StreamChunksCtx opens path and emits overlapping windows of every record.
//
// chunkSize <= 0 emits each record whole. Consecutive windows share
// overlap bytes so a motif no longer than overlap+1 is seen whole in at
// least one window. Return an error from emit to stop early.
func StreamChunksCtx(ctx context.Context, path string, chunkSize, overlap int, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamReaderCtx(ctx, rc, chunkSize, overlap, emit)
}

// StreamReaderCtx is StreamChunksCtx over an already open reader.
func StreamReaderCtx(ctx context.Context, r io.Reader, chunkSize, overlap int, emit func(Record) error) error {
	if overlap < 0 {
		overlap = 0
	}
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // single-line genomes
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id   string
		idx  = -1
		seen bool
		seq  = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if !seen {
			return nil
		}
		step := chunkSize - overlap
		if chunkSize <= 0 || chunkSize >= len(seq) || step <= 0 {
			return emit(Record{ID: id, Index: idx, Seq: append([]byte(nil), seq...), Last: true})
		}
		for off := 0; off < len(seq); off += step {
			if err := ctx.Err(); err != nil {
				return err
			}
			end := min(off+chunkSize, len(seq))
			last := end == len(seq)
			if err := emit(Record{ID: id, Index: idx, Offset: off, Seq: append([]byte(nil), seq[off:end]...), Last: last}); err != nil {
				return err
			}
			if last {
				break
			}
		}
		return nil
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			id = parseHeaderID(line[1:])
			idx++
			seen = true
			continue
		}
		if !seen {
			return fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
