// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/invowk/clisort/internal/baseline"
	"github.com/invowk/clisort/internal/config"
	"github.com/invowk/clisort/internal/report"
	"github.com/invowk/clisort/internal/runner"
	"github.com/invowk/clisort/pkg/sortcheck"
)

// defaultBaselineFile is written when neither --output nor the configured
// baseline names a file.
const defaultBaselineFile = "clisort-baseline.toml"

func newBaselineCommand(app *App) *cobra.Command {
	var output string

	baselineCmd := &cobra.Command{
		Use:   "baseline [flags] PATH...",
		Short: "Record the current findings as accepted",
		Long: `Check the given paths and write every finding to a TOML baseline.

Findings listed in a baseline are suppressed by 'clisort check --baseline'.
Only new findings are reported afterwards. Nothing is written when a file
cannot be read or parsed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = cfg.Baseline
			}
			if path == "" {
				path = defaultBaselineFile
			}
			return runBaseline(cmd.Context(), app, cfg, args, path)
		},
	}

	baselineCmd.Flags().StringVarP(&output, "output", "o", "", "baseline file to write (default is the configured baseline or "+defaultBaselineFile+")")

	return baselineCmd
}

func runBaseline(ctx context.Context, app *App, cfg *config.Config, paths []string, output string) error {
	results, err := runner.Run(ctx, paths, runner.Options{
		Policy:  sortcheck.CollectAll,
		Jobs:    cfg.Jobs,
		Exclude: cfg.Exclude,
		Logger:  app.logger(cfg),
	})
	if err != nil {
		return runError(err)
	}

	failed := slices.DeleteFunc(slices.Clone(results), func(r runner.FileResult) bool { return r.Err == nil })
	if len(failed) > 0 {
		reporter := report.New(report.FormatText, app.stdout, app.stderr,
			report.WithColor(cfg.UI.Color),
			report.WithVerbose(cfg.UI.Verbose),
		)
		if err := reporter.Write(failed); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return &ExitError{Code: 1}
	}

	var findings []sortcheck.Violation
	for _, r := range results {
		findings = append(findings, r.Violations...)
	}
	if err := baseline.Write(output, findings); err != nil {
		return fmt.Errorf("failed to write baseline: %w", err)
	}

	p := newPainter(cfg.UI.Color)
	_, _ = fmt.Fprintf(app.stdout, "%s Wrote %d finding(s) to %s\n", p.render(SuccessStyle, "✓"), len(findings), output)
	return nil
}
