// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on error,
// reducing boilerplate in fixture setup.
package testutil
