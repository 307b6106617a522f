// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/invowk/clisort/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

func init() {
	// Help output keeps declaration order, which is already alphabetical.
	cobra.EnableCommandSorting = false
}

// NewRootCommand builds the clisort command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clisort",
		Short: "Check that CLI subcommands and arguments are declared in sorted order",
		Long: TitleStyle.Render("clisort") + SubtitleStyle.Render(" - structural linter for CLI declarations") + `

clisort reads Go sources declaring kong-style command structs and checks
that subcommands are alphabetical, that short flags and long-only flags are
each sorted, and that arguments appear as positionals, then short flags,
then long-only flags.

` + SubtitleStyle.Render("Examples:") + `
  clisort check .                  Check a source tree
  clisort check -f json cmd/       Emit a JSON report
  clisort baseline -o base.toml .  Accept the current findings
  clisort explain subcommand-order Explain a violation kind`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is ./clisort.cue, then the user config)")
	rootCmd.PersistentFlags().BoolVar(&app.flags.noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(
		newBaselineCommand(app),
		newCheckCommand(app),
		newConfigCommand(app),
		newExplainCommand(app),
	)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with the resulting status.
// It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			handleError(w, styles, err, app.flags.verbose)
		}),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// handleError prints err unless it was already reported. Actionable errors
// keep their suggestions; everything else goes through fang's handler.
func handleError(w io.Writer, styles fang.Styles, err error, verbose bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		_, _ = fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// formatErrorForDisplay formats an error for user display. ActionableError
// values use their Format method, which shows the error chain in verbose
// mode.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
