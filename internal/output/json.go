// internal/output/json.go
package output

import (
	"io"

	"kmpmatch-core/engine"

	"kmpmatch/internal/jsonutil"
	"kmpmatch/pkg/api"
)

// ToAPIMatch converts a domain Match to the stable wire schema (v1).
func ToAPIMatch(m engine.Match) api.MatchV1 {
	return api.MatchV1{
		PatternID:  m.PatternID,
		SequenceID: m.RecordID,
		Pos:        m.Pos,
		SourceFile: m.SourceFile,
	}
}

// WriteJSON writes a single JSON array of v1 matches (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Match) error {
	out := make([]api.MatchV1, 0, len(list))
	for _, m := range list {
		out = append(out, ToAPIMatch(m))
	}
	return jsonutil.EncodePretty(w, out)
}
