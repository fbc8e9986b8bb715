// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one named FASTA sequence. ID is the first whitespace-delimited
// token of the header line. Seq is kept verbatim: matching downstream is
// case-sensitive, so no case folding happens here.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx parses FASTA from r and emits one Record per entry, in file
// order. Cancellation via ctx is honored between lines. emit may return a
// non-nil error (e.g. ctx.Err()) to stop early.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id   string
		seen bool
		seq  = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if !seen {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			seen = true
			seq = seq[:0]
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path (plain, gzip, or "-" for stdin) and streams
// its records via StreamCtx.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// ReadAllCtx materializes every record of path in file order.
func ReadAllCtx(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadAll is ReadAllCtx with a background context.
func ReadAll(path string) ([]Record, error) {
	return ReadAllCtx(context.Background(), path)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
