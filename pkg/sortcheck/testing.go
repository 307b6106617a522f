// SPDX-License-Identifier: MPL-2.0

package sortcheck

// TB is the subset of testing.TB used by MustBeSorted.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
}

// MustBeSorted validates root under the CollectAll policy and reports every
// violation through t.Errorf. It returns true when the tree is sorted.
//
// Typical use in a host CLI's test suite:
//
//	func TestCommandsSorted(t *testing.T) {
//		sortcheck.MustBeSorted(t, cobrasort.FromCobra(newRootCommand()))
//	}
func MustBeSorted(t TB, root Command) bool {
	t.Helper()
	violations, err := Validate(root)
	if err != nil {
		t.Errorf("validate command tree: %v", err)
		return false
	}
	for _, v := range violations {
		t.Errorf("%s", v.Message())
	}
	return len(violations) == 0
}
