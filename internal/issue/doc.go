// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and Markdown issue pages.
//
// ActionableError carries the failed operation, the file involved and
// remediation hints. Issue pages are rendered with glamour by the explain
// command and when a file fails to load.
package issue
