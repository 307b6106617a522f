// SPDX-License-Identifier: MPL-2.0

package extract

import "testing"

func TestDefaultName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ident string
		want  string
	}{
		{"Add", "add"},
		{"AddCmd", "add-cmd"},
		{"HTTPServer", "http-server"},
		{"Add_Item", "add-item"},
		{"add_item", "add-item"},
		{"ID", "id"},
		{"V2Beta", "v2-beta"},
		{"NoColor", "no-color"},
		{"Trailing_", "trailing"},
		{"list", "list"},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			t.Parallel()
			if got := DefaultName(tt.ident); got != tt.want {
				t.Errorf("DefaultName(%q) = %q, want %q", tt.ident, got, tt.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		has     []string
		missing []string
		values  map[string]string
	}{
		{
			name:   "key value pairs",
			raw:    `cmd:"" name:"rm" help:"Remove files."`,
			has:    []string{"cmd", "name", "help"},
			values: map[string]string{"name": "rm", "help": "Remove files."},
		},
		{
			name:    "kong bare keys",
			raw:     `cmd help:"List paths."`,
			has:     []string{"cmd", "help"},
			missing: []string{"name"},
		},
		{
			name:   "bare key in the middle",
			raw:    `arg optional help:"Paths."`,
			has:    []string{"arg", "optional"},
			values: map[string]string{"help": "Paths."},
		},
		{
			name:   "combined kong tag",
			raw:    `kong:"cmd,name=foo"`,
			has:    []string{"cmd"},
			values: map[string]string{"name": "foo"},
		},
		{
			name: "skip marker",
			raw:  `kong:"-"`,
			has:  []string{"-"},
		},
		{
			name:   "first value wins",
			raw:    `name:"a" name:"b"`,
			values: map[string]string{"name": "a"},
		},
		{
			name:    "empty",
			raw:     ``,
			missing: []string{"cmd"},
		},
		{
			name:    "unterminated value",
			raw:     `name:"oops`,
			has:     []string{"name"},
			missing: []string{"cmd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tag := parseTag(tt.raw)
			for _, k := range tt.has {
				if !tag.Has(k) {
					t.Errorf("parseTag(%q).Has(%q) = false", tt.raw, k)
				}
			}
			for _, k := range tt.missing {
				if tag.Has(k) {
					t.Errorf("parseTag(%q).Has(%q) = true", tt.raw, k)
				}
			}
			for k, want := range tt.values {
				if got := tag.Get(k); got != want {
					t.Errorf("parseTag(%q).Get(%q) = %q, want %q", tt.raw, k, got, want)
				}
			}
		})
	}
}
