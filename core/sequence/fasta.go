package sequence

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// maxFASTALine caps the scanner's line buffer, which starts at 64 KiB and
// grows as needed: a single line longer than 64 MiB fails with a scan
// error. Mirrors the teacher's fasta.StreamChunksCtx.
const maxFASTALine = 64 * 1024 * 1024

// ParseFASTA reads one or more FASTA records from r and returns the
// concatenation of every sequence line across every record, trimmed of
// whitespace. Header lines (starting with '>') are discarded; only the
// sequence content is retained, per §4.1. Case normalization and alphabet
// checks are deferred to Validate.
func ParseFASTA(r io.Reader) ([]byte, error) {
	return ParseFASTACtx(context.Background(), r)
}

// ParseFASTACtx is the context-aware variant, canceled promptly mid-scan —
// the same cancellation shape the teacher uses for its chunk streamer.
func ParseFASTACtx(ctx context.Context, r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxFASTALine)

	seq := make([]byte, 0, 1<<20)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			continue // header line: diagnostic only, discarded
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return seq, nil
}
