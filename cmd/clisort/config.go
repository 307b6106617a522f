// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/invowk/clisort/internal/config"
	"github.com/invowk/clisort/internal/issue"
)

// newConfigCommand creates the `clisort config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage clisort configuration",
		Long: `Manage clisort configuration.

Configuration is read from the first file found:
  1. the file given with --config
  2. ./clisort.cue
  3. the user config file:
     - Linux: ~/.config/clisort/config.cue
     - macOS: ~/Library/Application Support/clisort/config.cue
     - Windows: %APPDATA%\clisort\config.cue

Command-line flags override configured values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [FILE]",
		Short: "Create a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return initConfig(app, path, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(
		initCmd,
		&cobra.Command{
			Use:   "path",
			Short: "Show configuration file paths",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfigPath(app)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfig(cmd.Context(), app)
			},
		},
	)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		var ae *issue.ActionableError
		if errors.As(err, &ae) && ae.IssueId != 0 {
			rendered, _ := issue.Get(ae.IssueId).Render("notty")
			_, _ = fmt.Fprint(app.stderr, rendered)
		}
		return err
	}

	p := newPainter(cfg.UI.Color)
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	w := app.stdout
	_, _ = fmt.Fprintln(w, p.render(TitleStyle, "Current Configuration"))
	_, _ = fmt.Fprintln(w)

	source := p.render(SubtitleStyle, "(using defaults)")
	if path, err := config.Resolve(config.LoadOptions{ConfigFilePath: app.flags.configPath}); err == nil && path != "" {
		source = path
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", p.render(keyStyle, "Config file"), source)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintf(w, "%s: %s\n", p.render(keyStyle, "policy"), p.render(valueStyle, cfg.Policy.String()))
	_, _ = fmt.Fprintf(w, "%s: %s\n", p.render(keyStyle, "format"), p.render(valueStyle, cfg.Format.String()))
	_, _ = fmt.Fprintf(w, "%s: %s\n", p.render(keyStyle, "jobs"), p.render(valueStyle, fmt.Sprint(cfg.Jobs)))

	baselinePath := p.render(SubtitleStyle, "(none)")
	if cfg.Baseline != "" {
		baselinePath = p.render(valueStyle, cfg.Baseline)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", p.render(keyStyle, "baseline"), baselinePath)

	_, _ = fmt.Fprintf(w, "%s:\n", p.render(keyStyle, "exclude"))
	if len(cfg.Exclude) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", p.render(SubtitleStyle, "(none configured)"))
	}
	for _, e := range cfg.Exclude {
		_, _ = fmt.Fprintf(w, "  - %s\n", p.render(valueStyle, e))
	}

	_, _ = fmt.Fprintf(w, "%s:\n", p.render(keyStyle, "ui"))
	_, _ = fmt.Fprintf(w, "  color: %s\n", p.render(valueStyle, fmt.Sprint(cfg.UI.Color)))
	_, _ = fmt.Fprintf(w, "  verbose: %s\n", p.render(valueStyle, fmt.Sprint(cfg.UI.Verbose)))
	return nil
}

func initConfig(app *App, path string, force bool) error {
	written, err := config.CreateDefaultConfig(path, force)
	if err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return issue.NewErrorContext().
				WithOperation("create configuration").
				WithResource(written).
				WithSuggestion("Use --force to overwrite it").
				Wrap(err).
				BuildError()
		}
		return fmt.Errorf("failed to create config: %w", err)
	}

	p := newPainter(!app.flags.noColor)
	_, _ = fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", p.render(SuccessStyle, "✓"), written)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	w := app.stdout
	_, _ = fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	_, _ = fmt.Fprintf(w, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName))
	_, _ = fmt.Fprintf(w, "Project file: %s\n", config.ProjectFileName)

	active, err := config.Resolve(config.LoadOptions{ConfigFilePath: app.flags.configPath})
	if err != nil {
		return err
	}
	if active == "" {
		active = "(using defaults)"
	}
	_, _ = fmt.Fprintf(w, "Active: %s\n", active)
	return nil
}

// painter renders styles only when color output is enabled.
type painter struct {
	color bool
}

func newPainter(color bool) painter {
	return painter{color: color}
}

func (p painter) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}
