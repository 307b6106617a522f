// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema and
// formats CUE errors with JSON-style field paths.
package cueutil
