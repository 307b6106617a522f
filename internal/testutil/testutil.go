// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/exp/maps"
)

// MustMkdirAll creates a directory along with any necessary parents.
// The test fails immediately if the operation fails.
func MustMkdirAll(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// MustWriteFile writes content to path, creating parent directories.
// The test fails immediately if the operation fails.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MustWriteTree writes files, keyed by slash-separated relative path, under
// dir and returns dir. Files are written in path order.
//
//	dir := testutil.MustWriteTree(t, t.TempDir(), map[string]string{
//	    "cmd/root.go":       src,
//	    "vendor/dep/dep.go": src,
//	})
func MustWriteTree(t testing.TB, dir string, files map[string]string) string {
	t.Helper()
	names := maps.Keys(files)
	slices.Sort(names)
	for _, name := range names {
		MustWriteFile(t, filepath.Join(dir, filepath.FromSlash(name)), files[name])
	}
	return dir
}
