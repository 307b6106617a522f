// SPDX-License-Identifier: MPL-2.0

package sortcheck

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// SubcommandOrder reports subcommands not sorted by name.
	SubcommandOrder ViolationKind = "subcommand-order"
	// ArgumentGroupOrder reports arguments not laid out as positional,
	// short flags, long-only flags.
	ArgumentGroupOrder ViolationKind = "argument-group-order"
	// ShortFlagOrder reports short flags not sorted by their short name.
	ShortFlagOrder ViolationKind = "short-flag-order"
	// LongFlagOrder reports long-only flags not sorted by their long name.
	LongFlagOrder ViolationKind = "long-flag-order"
)

var (
	// ErrUnsorted is wrapped by every *ViolationError.
	ErrUnsorted = errors.New("command tree is not sorted")
	// ErrInvalidViolationKind is the sentinel error wrapped by InvalidViolationKindError.
	ErrInvalidViolationKind = errors.New("invalid violation kind")
)

type (
	// ViolationKind names the check that failed.
	ViolationKind string

	// InvalidViolationKindError is returned when a ViolationKind value is not recognized.
	// It wraps ErrInvalidViolationKind for errors.Is() compatibility.
	InvalidViolationKindError struct {
		Value ViolationKind
	}

	// Violation is one ordering defect. Path lists the command names from the
	// root down to the offending command. Actual and Expected hold the display
	// strings of the offending sequence as declared and as it should be.
	Violation struct {
		Kind     ViolationKind `json:"kind" yaml:"kind"`
		Path     []string      `json:"path" yaml:"path"`
		Actual   []string      `json:"actual" yaml:"actual"`
		Expected []string      `json:"expected" yaml:"expected"`
	}

	// ViolationError carries the first violation found under the FailFast policy.
	ViolationError struct {
		Violation Violation
	}
)

// ViolationKinds returns all violation kinds in check order.
func ViolationKinds() []ViolationKind {
	return []ViolationKind{SubcommandOrder, ShortFlagOrder, LongFlagOrder, ArgumentGroupOrder}
}

// String returns the string representation of the ViolationKind.
func (k ViolationKind) String() string { return string(k) }

// IsValid returns whether the ViolationKind is one of the defined kinds.
func (k ViolationKind) IsValid() (bool, []error) {
	if slices.Contains(ViolationKinds(), k) {
		return true, nil
	}
	return false, []error{&InvalidViolationKindError{Value: k}}
}

// Error implements the error interface for InvalidViolationKindError.
func (e *InvalidViolationKindError) Error() string {
	return fmt.Sprintf("invalid violation kind %q (valid: subcommand-order, short-flag-order, long-flag-order, argument-group-order)", e.Value)
}

// Unwrap returns ErrInvalidViolationKind for errors.Is() compatibility.
func (e *InvalidViolationKindError) Unwrap() error { return ErrInvalidViolationKind }

// Command returns the path joined the way the command is invoked,
// e.g. "git remote add".
func (v Violation) Command() string {
	return strings.Join(v.Path, " ")
}

// Headline returns the one-line summary of the violation.
func (v Violation) Headline() string {
	cmd := v.Command()
	switch v.Kind {
	case SubcommandOrder:
		return fmt.Sprintf("subcommands in %q are not sorted alphabetically", cmd)
	case ShortFlagOrder:
		return fmt.Sprintf("flags with short options in %q are not sorted", cmd)
	case LongFlagOrder:
		return fmt.Sprintf("long-only flags in %q are not sorted", cmd)
	case ArgumentGroupOrder:
		return fmt.Sprintf("arguments in %q are not in group order (positional, short flags, long-only flags)", cmd)
	default:
		return fmt.Sprintf("%s in %q", v.Kind, cmd)
	}
}

// Message returns the full diagnostic: headline, actual and expected order.
func (v Violation) Message() string {
	return fmt.Sprintf("%s\n  actual:   %s\n  expected: %s",
		v.Headline(), FormatList(v.Actual), FormatList(v.Expected))
}

// Equal reports whether two violations describe the same defect.
func (v Violation) Equal(o Violation) bool {
	return v.Kind == o.Kind &&
		slices.Equal(v.Path, o.Path) &&
		slices.Equal(v.Actual, o.Actual) &&
		slices.Equal(v.Expected, o.Expected)
}

// Error implements the error interface.
func (e *ViolationError) Error() string {
	return e.Violation.Message()
}

// Unwrap returns ErrUnsorted for errors.Is() compatibility.
func (e *ViolationError) Unwrap() error { return ErrUnsorted }

// FormatList renders an ordering as [a, b, c].
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
