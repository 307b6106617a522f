// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/invowk/clisort/internal/cueutil"
	"github.com/invowk/clisort/internal/issue"
)

const (
	// AppName is the application name.
	AppName = "clisort"
	// ConfigFileName is the user-level config file name.
	ConfigFileName = "config.cue"
	// ProjectFileName is the project-level config file name.
	ProjectFileName = "clisort.cue"
)

// ErrConfigExists is returned by CreateDefaultConfig when the file exists
// and force is not set.
var ErrConfigExists = errors.New("config file already exists")

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the clisort configuration directory using platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on macOS
// and $XDG_CONFIG_HOME (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// resolvePath applies the lookup order. An explicit path that does not
// exist is an error; missing implicit files fall through to defaults.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'clisort config init' to create a configuration file").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	if local := filepath.Join(workDir, ProjectFileName); fileExists(local) {
		return local, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		cfgDir = dir
	}
	if user := filepath.Join(cfgDir, ConfigFileName); fileExists(user) {
		return user, nil
	}
	return "", nil
}

// loadWithOptions layers the resolved file over the defaults.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("policy", defaults.Policy)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("baseline", defaults.Baseline)
	v.SetDefault("ui.color", defaults.UI.Color)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	path, err := resolvePath(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if ok, errs := cfg.IsValid(); !ok {
		return nil, "", errors.Join(errs...)
	}
	return &cfg, path, nil
}

// loadCUEIntoViper validates a CUE file against #Config and merges it into
// v over the defaults. Fields stay optional, so the value is decoded into a
// map rather than a struct.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	unified, err := cueutil.Unify(configSchema, data, "#Config", cueutil.WithFilename(path))
	if err != nil {
		return err
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to path, or to the
// user config file when path is empty. It returns the written path.
func CreateDefaultConfig(path string, force bool) (string, error) {
	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, ConfigFileName)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return path, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return path, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// GenerateCUE renders cfg as a CUE document accepted by the schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// clisort configuration\n")
	sb.WriteString("// See 'clisort config --help' for the lookup order.\n\n")

	fmt.Fprintf(&sb, "policy: %q\n", cfg.Policy)
	fmt.Fprintf(&sb, "format: %q\n", cfg.Format)
	fmt.Fprintf(&sb, "jobs:   %d\n", cfg.Jobs)

	sb.WriteString("\nexclude: [")
	for i, e := range cfg.Exclude {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", e)
	}
	sb.WriteString("]\n")

	if cfg.Baseline != "" {
		fmt.Fprintf(&sb, "baseline: %q\n", cfg.Baseline)
	}

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor:   %v\n", cfg.UI.Color)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}
