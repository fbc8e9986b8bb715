// core/kmp/table.go
package kmp

import "fmt"

// InvalidPatternError reports a pattern that cannot be indexed. The only
// invalid pattern is the empty one: it would occur at every offset, so it
// is rejected up front instead of producing degenerate output.
type InvalidPatternError struct {
	ID string // pattern identifier, empty when unknown to the caller
}

func (e *InvalidPatternError) Error() string {
	if e.ID == "" {
		return "kmp: empty pattern"
	}
	return fmt.Sprintf("kmp: empty pattern %q", e.ID)
}

// BuildTable computes the prefix-failure function for pat in O(m).
// table[i] is the length of the longest proper prefix of pat[:i+1] that
// is also a suffix of pat[:i+1]. The table is read-only after build.
func BuildTable(pat []byte) ([]int, error) {
	if len(pat) == 0 {
		return nil, &InvalidPatternError{}
	}
	table := make([]int, len(pat))
	k := 0
	for i := 1; i < len(pat); i++ {
		for k > 0 && pat[i] != pat[k] {
			k = table[k-1]
		}
		if pat[i] == pat[k] {
			k++
		}
		table[i] = k
	}
	return table, nil
}
