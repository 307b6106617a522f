// SPDX-License-Identifier: MPL-2.0

package sortcheck

import (
	"slices"
	"testing"
)

func TestCompareShort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b rune
		want int
	}{
		{"same letter same case", 'a', 'a', 0},
		{"lowercase before uppercase", 'i', 'I', -1},
		{"uppercase after lowercase", 'I', 'i', 1},
		{"case-insensitive primary order", 'B', 'a', 1},
		{"lowercase before later uppercase", 'a', 'B', -1},
		{"digits before letters", '1', 'a', -1},
		{"uppercase before later lowercase", 'V', 'x', -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CompareShort(tt.a, tt.b); sign(got) != tt.want {
				t.Errorf("CompareShort(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSortedShortTieBreak(t *testing.T) {
	t.Parallel()

	got := Sorted([]rune{'V', 'I', 'v', 'i', 'a'}, CompareShort)
	want := []rune{'a', 'i', 'I', 'v', 'V'}
	if !slices.Equal(got, want) {
		t.Errorf("Sorted() = %q, want %q", got, want)
	}
}

func TestIsSortedEdgeCases(t *testing.T) {
	t.Parallel()

	if !IsSorted([]string{}, CompareNames) {
		t.Error("empty sequence must be sorted")
	}
	if !IsSorted([]string{"only"}, CompareNames) {
		t.Error("single-element sequence must be sorted")
	}
	if IsSorted([]string{"list", "add"}, CompareNames) {
		t.Error("[list add] must not be sorted")
	}
	// Byte-wise ordering puts uppercase names first.
	if !IsSorted([]string{"Zed", "add"}, CompareNames) {
		t.Error("[Zed add] must be sorted byte-wise")
	}
}

func TestSortedDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := []string{"update", "add", "list"}
	out := Sorted(in, CompareNames)

	if !slices.Equal(in, []string{"update", "add", "list"}) {
		t.Errorf("input modified: %v", in)
	}
	if !slices.Equal(out, []string{"add", "list", "update"}) {
		t.Errorf("Sorted() = %v", out)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
