// SPDX-License-Identifier: MPL-2.0

package report

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// FormatText prints one styled line per file, failures with details.
	FormatText Format = "text"
	// FormatJSON prints a single JSON document.
	FormatJSON Format = "json"
	// FormatYAML prints a single YAML document.
	FormatYAML Format = "yaml"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid report format")

type (
	// Format selects the report encoding.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	// It wraps ErrInvalidFormat for errors.Is() compatibility.
	InvalidFormatError struct {
		Value Format
	}
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is one of the supported formats.
func (f Format) IsValid() (bool, []error) {
	if slices.Contains(Formats(), f) {
		return true, nil
	}
	return false, []error{&InvalidFormatError{Value: f}}
}

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid report format %q (valid: text, json, yaml)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }
