// core/engine/match.go
package engine

import "sort"

// Match is one occurrence of a pattern at a specific offset inside a
// genome record. Pos is 0-based within that record. Indices refer to the
// original pattern-file and genome order; they, not worker identity,
// define the output order.
type Match struct {
	PatternIdx int
	PatternID  string
	RecordIdx  int
	RecordID   string
	Pos        int
	SourceFile string
}

// Less is the canonical output order: genome record first (original FASTA
// order), then start offset, then pattern (original pattern-file order)
// as the tie-break.
func Less(a, b Match) bool {
	if a.RecordIdx != b.RecordIdx {
		return a.RecordIdx < b.RecordIdx
	}
	if a.Pos != b.Pos {
		return a.Pos < b.Pos
	}
	return a.PatternIdx < b.PatternIdx
}

// SortMatches sorts ms by Less.
func SortMatches(ms []Match) {
	sort.Slice(ms, func(i, j int) bool { return Less(ms[i], ms[j]) })
}
