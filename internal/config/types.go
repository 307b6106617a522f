// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/clisort/internal/report"
	"github.com/invowk/clisort/pkg/sortcheck"
)

var (
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidJobs is returned for a negative job count.
	ErrInvalidJobs = errors.New("jobs must not be negative")
)

type (
	// Config is the resolved clisort configuration.
	Config struct {
		// Policy is the traversal policy.
		Policy sortcheck.Policy `json:"policy" mapstructure:"policy"`
		// Format is the report format of the check command.
		Format report.Format `json:"format" mapstructure:"format"`
		// Jobs bounds concurrent file checks; 0 uses GOMAXPROCS.
		Jobs int `json:"jobs" mapstructure:"jobs"`
		// Exclude lists path substrings skipped during directory expansion.
		Exclude []string `json:"exclude" mapstructure:"exclude"`
		// Baseline is the accepted-findings file. Empty disables it.
		Baseline string `json:"baseline" mapstructure:"baseline"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Color enables styled output.
		Color bool `json:"color" mapstructure:"color"`
		// Verbose enables debug logging and report summaries.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Policy:  sortcheck.CollectAll,
		Format:  report.FormatText,
		Jobs:    0,
		Exclude: []string{},
		UI: UIConfig{
			Color:   true,
			Verbose: false,
		},
	}
}

// IsValid validates every field, collecting all errors.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.Policy.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.Format.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidJobs, c.Jobs))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
