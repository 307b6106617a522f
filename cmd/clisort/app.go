// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/invowk/clisort/internal/config"
)

type (
	// App wires CLI services and shared dependencies. All command handlers
	// receive an App and read configuration and streams through it.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer
		flags  globalFlags
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// globalFlags holds the persistent flags of the root command.
	globalFlags struct {
		verbose    bool
		configPath string
		noColor    bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadConfig loads the configuration selected by --config and applies the
// global flag overrides.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		return nil, err
	}
	if a.flags.verbose {
		cfg.UI.Verbose = true
	}
	if a.flags.noColor {
		cfg.UI.Color = false
	}
	return cfg, nil
}

// logger builds the process logger. Debug events are shown only in
// verbose mode.
func (a *App) logger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(a.stderr, log.Options{Prefix: config.AppName})
	logger.SetLevel(log.WarnLevel)
	if cfg.UI.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
