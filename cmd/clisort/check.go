// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/clisort/internal/baseline"
	"github.com/invowk/clisort/internal/config"
	"github.com/invowk/clisort/internal/issue"
	"github.com/invowk/clisort/internal/report"
	"github.com/invowk/clisort/internal/runner"
	"github.com/invowk/clisort/pkg/sortcheck"
)

// checkFlags holds the flags of the check command. Unset flags leave the
// configured values in place.
type checkFlags struct {
	format   string
	baseline string
	failFast bool
	jobs     int
}

func newCheckCommand(app *App) *cobra.Command {
	var flags checkFlags

	checkCmd := &cobra.Command{
		Use:   "check [flags] PATH...",
		Short: "Check that subcommand sets are declared in sorted order",
		Long: `Check Go source files for unsorted command declarations.

Directories are walked recursively; vendor, testdata, hidden directories
and _test.go files are skipped. Each file is reported on its own: a file
that cannot be read or parsed does not stop the others.

The exit status is 1 when any file has violations or failed to load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			applyCheckFlags(cmd, cfg, flags)
			return runCheck(cmd.Context(), app, cfg, args)
		},
	}

	checkCmd.Flags().StringVarP(&flags.format, "format", "f", string(report.FormatText), "report format (text, json, yaml)")
	checkCmd.Flags().StringVar(&flags.baseline, "baseline", "", "suppress findings accepted in this baseline file")
	checkCmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "stop each file at its first violation")
	checkCmd.Flags().IntVar(&flags.jobs, "jobs", 0, "files checked concurrently (0 uses all CPUs)")

	return checkCmd
}

// applyCheckFlags overrides configuration values with explicitly set flags.
func applyCheckFlags(cmd *cobra.Command, cfg *config.Config, flags checkFlags) {
	if cmd.Flags().Changed("format") {
		cfg.Format = report.Format(flags.format)
	}
	if cmd.Flags().Changed("baseline") {
		cfg.Baseline = flags.baseline
	}
	if cmd.Flags().Changed("fail-fast") {
		cfg.Policy = sortcheck.CollectAll
		if flags.failFast {
			cfg.Policy = sortcheck.FailFast
		}
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
}

func runCheck(ctx context.Context, app *App, cfg *config.Config, paths []string) error {
	if ok, errs := cfg.IsValid(); !ok {
		return errors.Join(errs...)
	}

	base, err := loadBaseline(cfg.Baseline)
	if err != nil {
		return err
	}

	results, err := runner.Run(ctx, paths, runner.Options{
		Policy:   cfg.Policy,
		Jobs:     cfg.Jobs,
		Exclude:  cfg.Exclude,
		Baseline: base,
		Logger:   app.logger(cfg),
	})
	if err != nil {
		return runError(err)
	}

	reporter := report.New(cfg.Format, app.stdout, app.stderr,
		report.WithColor(cfg.UI.Color),
		report.WithVerbose(cfg.UI.Verbose),
	)
	if err := reporter.Write(results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if report.Summarize(results).Failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

func loadBaseline(path string) (*baseline.Baseline, error) {
	base, err := baseline.Load(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load baseline").
			WithResource(path).
			WithSuggestion("Check that the file is valid TOML").
			WithSuggestion("Regenerate it with 'clisort baseline --output " + path + "'").
			WithIssue(issue.BaselineLoadFailedId).
			Wrap(err).
			BuildError()
	}
	return base, nil
}

// runError turns the run-level failures of runner.Run into user errors.
func runError(err error) error {
	if errors.Is(err, runner.ErrNoInputs) {
		return issue.NewErrorContext().
			WithOperation("check sources").
			WithSuggestion("Pass one or more Go files or directories").
			WithIssue(issue.NoInputsId).
			Wrap(err).
			BuildError()
	}
	return err
}
