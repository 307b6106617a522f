// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Config: {
	policy?: "collect-all" | "fail-fast"
	jobs?:   int & >=0
	exclude?: [...string]
}
`

func TestUnify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "valid", data: `policy: "fail-fast"` + "\njobs: 4\n"},
		{name: "empty", data: ``},
		{name: "syntax error", data: `policy: "fail-fast`, wantErr: "config.cue"},
		{name: "wrong enum", data: `policy: "random"`, wantErr: "policy"},
		{name: "negative jobs", data: `jobs: -1`, wantErr: "jobs"},
		{name: "list element", data: `exclude: ["ok", 3]`, wantErr: "exclude[1]"},
		{name: "unknown field", data: `colour: true`, wantErr: "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Unify([]byte(testSchema), []byte(tt.data), "#Config", WithFilename("config.cue"))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Unify() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Unify() error = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Unify() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestUnifyFileSize(t *testing.T) {
	t.Parallel()

	_, err := Unify([]byte(testSchema), []byte(`jobs: 1`), "#Config", WithMaxFileSize(3))
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("Unify() error = %v, want size error", err)
	}
}

func TestUnifyMissingDefinition(t *testing.T) {
	t.Parallel()

	if _, err := Unify([]byte(testSchema), nil, "#Nope"); err == nil {
		t.Error("Unify() with unknown definition should fail")
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"":             nil,
		"policy":       {"policy"},
		"ui.color":     {"ui", "color"},
		"exclude[1]":   {"exclude", "1"},
		"a[0].b[12].c": {"a", "0", "b", "12", "c"},
	}
	for want, path := range tests {
		if got := formatPath(path); got != want {
			t.Errorf("formatPath(%v) = %q, want %q", path, got, want)
		}
	}
}
