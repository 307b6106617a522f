// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/invowk/clisort/internal/issue"
	"github.com/invowk/clisort/internal/report"
	"github.com/invowk/clisort/internal/testutil"
	"github.com/invowk/clisort/pkg/sortcheck"
)

// isolated returns options that never touch the real user config.
func isolated(t *testing.T) LoadOptions {
	t.Helper()
	return LoadOptions{WorkDir: t.TempDir(), ConfigDirPath: t.TempDir()}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewProvider().Load(context.Background(), isolated(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := DefaultConfig()
	if cfg.Policy != want.Policy || cfg.Format != want.Format || cfg.Jobs != 0 || !cfg.UI.Color {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadLookupOrder(t *testing.T) {
	t.Parallel()

	opts := isolated(t)
	testutil.MustWriteFile(t, filepath.Join(opts.ConfigDirPath, ConfigFileName), `policy: "fail-fast"`+"\njobs: 2\n")

	path, err := Resolve(opts)
	if err != nil || path != filepath.Join(opts.ConfigDirPath, ConfigFileName) {
		t.Fatalf("Resolve() = %q, %v, want user config", path, err)
	}
	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Policy != sortcheck.FailFast || cfg.Jobs != 2 {
		t.Errorf("user config not applied: %+v", cfg)
	}

	testutil.MustWriteFile(t, filepath.Join(opts.WorkDir, ProjectFileName), `format: "json"`+"\nexclude: [\"gen/\"]\n")
	cfg, err = NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != report.FormatJSON || !slices.Equal(cfg.Exclude, []string{"gen/"}) {
		t.Errorf("project config not applied: %+v", cfg)
	}
	if cfg.Policy != sortcheck.CollectAll {
		t.Errorf("project config should shadow the user config, got policy %s", cfg.Policy)
	}

	explicit := filepath.Join(t.TempDir(), "custom.cue")
	testutil.MustWriteFile(t, explicit, "ui: {verbose: true, color: false}\n")
	opts.ConfigFilePath = explicit
	cfg, err = NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.UI.Verbose || cfg.UI.Color || cfg.Format != report.FormatText {
		t.Errorf("explicit config not applied exclusively: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad policy", content: `policy: "sometimes"`, wantErr: "policy"},
		{name: "bad format", content: `format: "xml"`, wantErr: "format"},
		{name: "negative jobs", content: `jobs: -2`, wantErr: "jobs"},
		{name: "unknown key", content: `colour: true`, wantErr: "colour"},
		{name: "syntax", content: `policy: `, wantErr: "clisort.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := isolated(t)
			testutil.MustWriteFile(t, filepath.Join(opts.WorkDir, ProjectFileName), tt.content)
			_, err := NewProvider().Load(context.Background(), opts)
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) || ae.IssueId != issue.ConfigLoadFailedId {
				t.Errorf("error %v is not a config ActionableError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	opts := isolated(t)
	opts.ConfigFilePath = filepath.Join(opts.WorkDir, "nope.cue")
	if _, err := NewProvider().Load(context.Background(), opts); err == nil {
		t.Error("Load() with a missing --config file should fail")
	}
}

func TestLoadCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewProvider().Load(ctx, isolated(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestGenerateCUERoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Policy:   sortcheck.FailFast,
		Format:   report.FormatYAML,
		Jobs:     3,
		Exclude:  []string{"vendor/", "zz_"},
		Baseline: "clisort-baseline.toml",
		UI:       UIConfig{Color: false, Verbose: true},
	}

	opts := isolated(t)
	testutil.MustWriteFile(t, filepath.Join(opts.WorkDir, ProjectFileName), GenerateCUE(cfg))
	got, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load(GenerateCUE()) error = %v", err)
	}
	if got.Policy != cfg.Policy || got.Format != cfg.Format || got.Jobs != cfg.Jobs ||
		got.Baseline != cfg.Baseline || got.UI != cfg.UI || !slices.Equal(got.Exclude, cfg.Exclude) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
	if _, err := CreateDefaultConfig(path, false); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if _, err := CreateDefaultConfig(path, false); !errors.Is(err, ErrConfigExists) {
		t.Errorf("second CreateDefaultConfig() error = %v, want ErrConfigExists", err)
	}
	if _, err := CreateDefaultConfig(path, true); err != nil {
		t.Errorf("forced CreateDefaultConfig() error = %v", err)
	}
}

func TestConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if ok, errs := cfg.IsValid(); !ok {
		t.Fatalf("DefaultConfig().IsValid() = %v", errs)
	}

	cfg.Policy = "never"
	cfg.Jobs = -1
	ok, errs := cfg.IsValid()
	if ok || len(errs) != 1 {
		t.Fatalf("IsValid() = %v, %v", ok, errs)
	}
	var ice *InvalidConfigError
	if !errors.As(errs[0], &ice) || len(ice.FieldErrors) != 2 {
		t.Errorf("errors = %v, want one InvalidConfigError with 2 field errors", errs)
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Error("InvalidConfigError should wrap ErrInvalidConfig")
	}
}
