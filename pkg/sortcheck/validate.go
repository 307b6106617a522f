// SPDX-License-Identifier: MPL-2.0

package sortcheck

import (
	"errors"
	"slices"
)

// walker holds the traversal state of one Validate call.
type walker struct {
	policy     Policy
	violations []Violation
}

// Validate checks root and all of its descendants.
//
// Under CollectAll the returned slice holds every violation in traversal
// order and the error is nil. Under FailFast traversal stops at the first
// failing check; that violation is returned both in the slice and as a
// *ViolationError. An invalid policy returns an *InvalidPolicyError.
//
// The tree is only read. Validating the same tree twice yields the same result.
func Validate(root Command, opts ...Option) ([]Violation, error) {
	o := options{policy: CollectAll}
	for _, opt := range opts {
		opt(&o)
	}
	if ok, errs := o.policy.IsValid(); !ok {
		return nil, errors.Join(errs...)
	}
	if root == nil {
		return nil, nil
	}

	w := &walker{policy: o.policy}
	if err := w.visit(root, nil); err != nil {
		return w.violations, err
	}
	return w.violations, nil
}

// Check validates root under the FailFast policy and returns the first
// violation as a *ViolationError, or nil.
func Check(root Command) error {
	_, err := Validate(root, WithPolicy(FailFast))
	return err
}

// visit runs the per-command checks and recurses into the children.
// parent is never modified; each command gets its own path copy.
func (w *walker) visit(cmd Command, parent []string) error {
	path := appendPath(parent, cmd.Name())
	children := cmd.Children()
	groups := Classify(cmd.Arguments())
	args := classified(cmd.Arguments())

	checks := []func() (Violation, bool){
		func() (Violation, bool) { return checkSubcommands(path, children) },
		func() (Violation, bool) { return checkShortFlags(path, groups.Short) },
		func() (Violation, bool) { return checkLongFlags(path, groups.LongOnly) },
		func() (Violation, bool) { return checkGroupOrder(path, args, groups) },
	}
	for _, check := range checks {
		v, failed := check()
		if !failed {
			continue
		}
		w.violations = append(w.violations, v)
		if w.policy == FailFast {
			return &ViolationError{Violation: v}
		}
	}

	for _, child := range children {
		if child == nil {
			continue
		}
		if err := w.visit(child, path); err != nil {
			return err
		}
	}
	return nil
}

func checkSubcommands(path []string, children []Command) (Violation, bool) {
	names := make([]string, 0, len(children))
	for _, c := range children {
		if c != nil {
			names = append(names, c.Name())
		}
	}
	if IsSorted(names, CompareNames) {
		return Violation{}, false
	}
	return Violation{
		Kind:     SubcommandOrder,
		Path:     path,
		Actual:   names,
		Expected: Sorted(names, CompareNames),
	}, true
}

func checkShortFlags(path []string, short []Argument) (Violation, bool) {
	compare := func(a, b Argument) int { return CompareShort(a.Short, b.Short) }
	if IsSorted(short, compare) {
		return Violation{}, false
	}
	return Violation{
		Kind:     ShortFlagOrder,
		Path:     path,
		Actual:   display(short, shortSpelling),
		Expected: display(Sorted(short, compare), shortSpelling),
	}, true
}

func checkLongFlags(path []string, long []Argument) (Violation, bool) {
	compare := func(a, b Argument) int { return CompareNames(a.Long, b.Long) }
	if IsSorted(long, compare) {
		return Violation{}, false
	}
	return Violation{
		Kind:     LongFlagOrder,
		Path:     path,
		Actual:   display(long, longSpelling),
		Expected: display(Sorted(long, compare), longSpelling),
	}, true
}

func checkGroupOrder(path []string, args []Argument, groups Groups) (Violation, bool) {
	actual := display(args, Argument.DisplayName)
	expected := display(groups.Ordered(), Argument.DisplayName)
	if slices.Equal(actual, expected) {
		return Violation{}, false
	}
	return Violation{
		Kind:     ArgumentGroupOrder,
		Path:     path,
		Actual:   actual,
		Expected: expected,
	}, true
}

// classified drops arguments of KindNone, keeping declaration order.
func classified(args []Argument) []Argument {
	return slices.DeleteFunc(slices.Clone(args), func(a Argument) bool {
		return a.Kind() == KindNone
	})
}

func appendPath(parent []string, name string) []string {
	path := make([]string, len(parent), len(parent)+1)
	copy(path, parent)
	return append(path, name)
}

func display(args []Argument, spell func(Argument) string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = spell(a)
	}
	return out
}

func shortSpelling(a Argument) string { return "-" + string(a.Short) }

func longSpelling(a Argument) string { return "--" + a.Long }
