// core/kmp/table_test.go
package kmp

import (
	"errors"
	"testing"
)

func TestBuildTableKnownValues(t *testing.T) {
	cases := []struct {
		pat  string
		want []int
	}{
		{"A", []int{0}},
		{"AA", []int{0, 1}},
		{"AAAA", []int{0, 1, 2, 3}},
		{"ACGT", []int{0, 0, 0, 0}},
		{"ACACAG", []int{0, 0, 1, 2, 3, 0}},
		{"AABAACAABAA", []int{0, 1, 0, 1, 2, 0, 1, 2, 3, 4, 5}},
		{"ABCDABD", []int{0, 0, 0, 0, 1, 2, 0}},
	}
	for _, c := range cases {
		got, err := BuildTable([]byte(c.pat))
		if err != nil {
			t.Fatalf("BuildTable(%q): %v", c.pat, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("BuildTable(%q) len=%d want %d", c.pat, len(got), len(c.want))
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("BuildTable(%q)[%d]=%d want %d", c.pat, i, got[i], c.want[i])
			}
		}
	}
}

func TestBuildTableEmptyPattern(t *testing.T) {
	_, err := BuildTable(nil)
	if err == nil {
		t.Fatal("expected error for empty pattern")
	}
	var ipe *InvalidPatternError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected *InvalidPatternError, got %T: %v", err, err)
	}
}

// The table entry is always a proper prefix length: 0 <= table[i] <= i.
func TestBuildTableBounds(t *testing.T) {
	pat := []byte("ACGTACGTACGTAAACCCGGGTTT")
	table, err := BuildTable(pat)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range table {
		if v < 0 || v > i {
			t.Errorf("table[%d]=%d out of [0,%d]", i, v, i)
		}
	}
}
