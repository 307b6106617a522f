// SPDX-License-Identifier: MPL-2.0

package sortcheck

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// CompareNames orders subcommand names, long flag names and positional ids
// byte-wise.
func CompareNames(a, b string) int {
	return strings.Compare(a, b)
}

// CompareShort orders short flag characters case-insensitively. On a tie
// between the two cases of one letter, lowercase sorts first: 'i' < 'I'.
func CompareShort(a, b rune) int {
	if c := cmp.Compare(unicode.ToLower(a), unicode.ToLower(b)); c != 0 {
		return c
	}
	switch {
	case unicode.IsLower(a) && unicode.IsUpper(b):
		return -1
	case unicode.IsUpper(a) && unicode.IsLower(b):
		return 1
	default:
		return 0
	}
}

// IsSorted reports whether seq is in non-decreasing order under compare.
// Empty and single-element sequences are sorted.
func IsSorted[T any](seq []T, compare func(a, b T) int) bool {
	return slices.IsSortedFunc(seq, compare)
}

// Sorted returns a stably sorted copy of seq. The input is not modified.
func Sorted[T any](seq []T, compare func(a, b T) int) []T {
	out := slices.Clone(seq)
	slices.SortStableFunc(out, compare)
	return out
}
