// core/kmp/scan.go
package kmp

// Scan reports every start offset at which pat occurs in seq, ascending,
// via emit. table must come from BuildTable(pat). A completed match
// resets the pattern pointer through the table rather than rewinding the
// text pointer, so overlapping occurrences are all reported and the scan
// stays O(n+m). A pattern longer than seq emits nothing. Comparison is
// byte-literal: no case folding, no ambiguity codes.
//
// Scan stops at the first error emit returns and passes it through.
func Scan(seq, pat []byte, table []int, emit func(pos int) error) error {
	n, m := len(seq), len(pat)
	if m == 0 || m > n {
		return nil
	}
	j := 0
	for i := 0; i < n; i++ {
		for j > 0 && seq[i] != pat[j] {
			j = table[j-1]
		}
		if seq[i] == pat[j] {
			j++
		}
		if j == m {
			if err := emit(i - m + 1); err != nil {
				return err
			}
			j = table[j-1]
		}
	}
	return nil
}

// FindAll materializes Scan into a slice of offsets.
func FindAll(seq, pat []byte, table []int) []int {
	var out []int
	_ = Scan(seq, pat, table, func(pos int) error {
		out = append(out, pos)
		return nil
	})
	return out
}
