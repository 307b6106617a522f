// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize bounds the size of a CUE document (1MB).
const DefaultMaxFileSize int64 = 1 << 20

type (
	options struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option configures Unify.
	Option func(*options)
)

func defaultOptions() options {
	return options{maxFileSize: DefaultMaxFileSize, filename: "<input>"}
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithConcrete requires every field to be concrete after unification.
// The default allows optional fields to stay open.
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}

// WithFilename names the document in error messages.
func WithFilename(name string) Option {
	return func(o *options) {
		if name != "" {
			o.filename = name
		}
	}
}
