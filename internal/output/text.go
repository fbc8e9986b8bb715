// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"kmpmatch-core/engine"
)

// StreamText writes one tab-separated line per match as they arrive:
// pattern_id, genome record id, 0-based offset. No header line and no
// trailing summary; the line layout is a documented contract, covered by
// tests, not an implementation detail.
func StreamText(w io.Writer, in <-chan engine.Match) error {
	for m := range in {
		if err := WriteTextLine(w, m); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextLine writes a single match line.
func WriteTextLine(w io.Writer, m engine.Match) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\n", m.PatternID, m.RecordID, m.Pos)
	return err
}
