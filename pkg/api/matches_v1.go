// pkg/api/matches_v1.go
package api

// MatchV1 is the stable JSON/JSONL schema for pattern matches.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchV1 struct {
	PatternID  string `json:"pattern_id"`
	SequenceID string `json:"sequence_id"`
	Pos        int    `json:"pos"`
	SourceFile string `json:"source_file,omitempty"`
}
