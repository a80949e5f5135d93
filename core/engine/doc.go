// Package engine finds every occurrence of a nucleotide motif on the
// forward strand and the reverse-complement strand of an in-memory buffer.
//
// Search picks one of three strategies by the shape of the motif:
//
//   - literal: exact bases only; one byte-compare pass checks both strands.
//   - reversing: two regex scans over the original buffer, the second using
//     a textually reversed complement pattern.
//   - general: a forward scan plus a scan of a materialized
//     reverse-complement copy, translated back to original coordinates.
//
// All of them return a Cursor producing matches in ascending start order;
// on equal starts the positive-strand match comes first. Overlapping
// occurrences are reported.
package engine
