// SPDX-License-Identifier: MPL-2.0

// Package report renders check results as styled text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/invowk/clisort/internal/issue"
	"github.com/invowk/clisort/internal/runner"
	"github.com/invowk/clisort/pkg/sortcheck"
)

type (
	// Summary aggregates a run.
	Summary struct {
		Files      int `json:"files" yaml:"files"`
		Failed     int `json:"failed" yaml:"failed"`
		Violations int `json:"violations" yaml:"violations"`
		Errors     int `json:"errors" yaml:"errors"`
		Suppressed int `json:"suppressed" yaml:"suppressed"`
	}

	// Reporter writes results in one format. Text output sends clean files
	// to out and failing files to errOut; structured formats use out only.
	Reporter struct {
		format  Format
		out     io.Writer
		errOut  io.Writer
		verbose bool
		styles  styles
	}

	// Option configures a Reporter.
	Option func(*Reporter)

	styles struct {
		ok      lipgloss.Style
		fail    lipgloss.Style
		path    lipgloss.Style
		muted   lipgloss.Style
		summary lipgloss.Style
	}

	fileDoc struct {
		Path         string         `json:"path" yaml:"path"`
		Declarations int            `json:"declarations" yaml:"declarations"`
		Error        string         `json:"error,omitempty" yaml:"error,omitempty"`
		Violations   []violationDoc `json:"violations" yaml:"violations"`
		Suppressed   int            `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
	}

	violationDoc struct {
		sortcheck.Violation `yaml:",inline"`

		Command string `json:"command" yaml:"command"`
		Message string `json:"message" yaml:"message"`
	}

	document struct {
		Files   []fileDoc `json:"files" yaml:"files"`
		Summary Summary   `json:"summary" yaml:"summary"`
	}
)

// WithColor enables or disables ANSI styling of text output.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		if !enabled {
			r.styles = plainStyles()
		}
	}
}

// WithVerbose appends error chains to input errors and a summary line.
func WithVerbose(verbose bool) Option {
	return func(r *Reporter) { r.verbose = verbose }
}

// New creates a Reporter. An invalid format falls back to text.
func New(format Format, out, errOut io.Writer, opts ...Option) *Reporter {
	if ok, _ := format.IsValid(); !ok {
		format = FormatText
	}
	if errOut == nil {
		errOut = out
	}
	r := &Reporter{
		format: format,
		out:    out,
		errOut: errOut,
		styles: colorStyles(lipgloss.NewRenderer(out)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Summarize counts files, failures, violations and input errors.
func Summarize(results []runner.FileResult) Summary {
	var s Summary
	s.Files = len(results)
	for _, r := range results {
		s.Suppressed += r.Suppressed
		s.Violations += len(r.Violations)
		if r.Err != nil {
			s.Errors++
		}
		if !r.OK() {
			s.Failed++
		}
	}
	return s
}

// Write renders results.
func (r *Reporter) Write(results []runner.FileResult) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(results))
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(results)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.writeText(results)
	}
}

func (r *Reporter) writeText(results []runner.FileResult) error {
	for _, res := range results {
		if err := r.writeFile(res); err != nil {
			return err
		}
	}
	if !r.verbose {
		return nil
	}
	s := Summarize(results)
	line := fmt.Sprintf("%d file(s) checked, %d failed, %d violation(s), %d suppressed",
		s.Files, s.Failed, s.Violations, s.Suppressed)
	_, err := fmt.Fprintln(r.out, r.styles.summary.Render(line))
	return err
}

func (r *Reporter) writeFile(res runner.FileResult) error {
	st := r.styles
	switch {
	case res.Err != nil:
		_, err := fmt.Fprintf(r.errOut, "%s %s: %s\n",
			st.fail.Render("✗"), st.path.Render(res.Path), indent(errorText(res.Err, r.verbose)))
		return err
	case len(res.Violations) == 0:
		_, err := fmt.Fprintf(r.out, "%s %s: all subcommand sets are sorted\n",
			st.ok.Render("✓"), st.path.Render(res.Path))
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: found %d error(s)\n",
		st.fail.Render("✗"), st.path.Render(res.Path), len(res.Violations))
	for _, v := range res.Violations {
		b.WriteString("  ")
		b.WriteString(indent(v.Message()))
		b.WriteString("\n")
	}
	if r.verbose {
		fmt.Fprintf(&b, "  %s\n", st.muted.Render("run 'clisort explain <kind>' for details"))
	}
	_, err := io.WriteString(r.errOut, b.String())
	return err
}

func errorText(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// indent prefixes continuation lines so multi-line messages stay nested
// under their file.
func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}

func newDocument(results []runner.FileResult) document {
	doc := document{Files: make([]fileDoc, 0, len(results)), Summary: Summarize(results)}
	for _, res := range results {
		fd := fileDoc{
			Path:         res.Path,
			Declarations: res.Declarations,
			Violations:   make([]violationDoc, 0, len(res.Violations)),
			Suppressed:   res.Suppressed,
		}
		if res.Err != nil {
			fd.Error = res.Err.Error()
		}
		for _, v := range res.Violations {
			fd.Violations = append(fd.Violations, violationDoc{Violation: v, Command: v.Command(), Message: v.Headline()})
		}
		doc.Files = append(doc.Files, fd)
	}
	return doc
}

func colorStyles(r *lipgloss.Renderer) styles {
	return styles{
		ok:      r.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
		fail:    r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		path:    r.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
		summary: r.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{ok: plain, fail: plain, path: plain, muted: plain, summary: plain}
}
