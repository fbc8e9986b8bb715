// internal/writers/match.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"kmpmatch-core/engine"

	"kmpmatch/internal/jsonlutil"
	"kmpmatch/internal/output"
)

// StartMatchWriter spins up a writer goroutine for engine.Match items and
// returns the input channel plus a one-shot error channel. The caller
// closes the channel when the run is done and then receives the writer's
// final error. Matches arrive already in canonical order, so text and
// jsonl stream line by line; json buffers to emit one array.
func StartMatchWriter(out io.Writer, format string, bufSize int) (chan<- engine.Match, <-chan error) {
	if format == output.FormatJSONL {
		return jsonlutil.Start[engine.Match](out, bufSize,
			func(enc *json.Encoder, m engine.Match) error {
				return enc.Encode(output.ToAPIMatch(m))
			},
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Match, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []engine.Match
			for m := range in {
				buf = append(buf, m)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatText:
			err = output.StreamText(out, in)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
