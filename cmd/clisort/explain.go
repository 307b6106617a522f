// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/clisort/internal/issue"
	"github.com/invowk/clisort/pkg/sortcheck"
)

func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [KIND]",
		Short: "Explain a violation kind",
		Long: `Explain what a violation kind checks and how to fix it.

Without an argument, the known kinds are listed.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return kindNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range kindNames() {
					_, _ = fmt.Fprintln(app.stdout, name)
				}
				return nil
			}
			return explain(app, sortcheck.ViolationKind(args[0]))
		},
	}
}

func explain(app *App, kind sortcheck.ViolationKind) error {
	if ok, errs := kind.IsValid(); !ok {
		return issue.NewErrorContext().
			WithOperation("explain violation kind").
			WithResource(string(kind)).
			WithSuggestion("Known kinds: " + strings.Join(kindNames(), ", ")).
			Wrap(errs[0]).
			BuildError()
	}

	style := "dark"
	if app.flags.noColor {
		style = "notty"
	}
	rendered, err := issue.ForKind(kind).Render(style)
	if err != nil {
		return fmt.Errorf("failed to render explanation: %w", err)
	}
	_, _ = fmt.Fprint(app.stdout, rendered)
	return nil
}

func kindNames() []string {
	kinds := sortcheck.ViolationKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
