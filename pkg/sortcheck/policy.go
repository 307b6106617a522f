// SPDX-License-Identifier: MPL-2.0

package sortcheck

import (
	"errors"
	"fmt"
)

const (
	// CollectAll walks the whole tree and returns every violation.
	CollectAll Policy = "collect-all"
	// FailFast stops at the first violation and returns it as an error.
	FailFast Policy = "fail-fast"
)

// ErrInvalidPolicy is the sentinel error wrapped by InvalidPolicyError.
var ErrInvalidPolicy = errors.New("invalid policy")

type (
	// Policy selects the control flow on a violation.
	Policy string

	// InvalidPolicyError is returned when a Policy value is not recognized.
	// It wraps ErrInvalidPolicy for errors.Is() compatibility.
	InvalidPolicyError struct {
		Value Policy
	}

	// Option configures Validate.
	Option func(*options)

	options struct {
		policy Policy
	}
)

// WithPolicy selects the validation policy. The zero value means CollectAll.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p != "" {
			o.policy = p
		}
	}
}

// String returns the string representation of the Policy.
func (p Policy) String() string { return string(p) }

// IsValid returns whether the Policy is valid.
func (p Policy) IsValid() (bool, []error) {
	switch p {
	case CollectAll, FailFast:
		return true, nil
	default:
		return false, []error{&InvalidPolicyError{Value: p}}
	}
}

// Error implements the error interface for InvalidPolicyError.
func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("invalid policy %q (valid: collect-all, fail-fast)", e.Value)
}

// Unwrap returns ErrInvalidPolicy for errors.Is() compatibility.
func (e *InvalidPolicyError) Unwrap() error { return ErrInvalidPolicy }
