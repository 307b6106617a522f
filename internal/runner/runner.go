// SPDX-License-Identifier: MPL-2.0

// Package runner checks Go source files for ordering violations in parallel.
package runner

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/invowk/clisort/internal/baseline"
	"github.com/invowk/clisort/internal/extract"
	"github.com/invowk/clisort/internal/issue"
	"github.com/invowk/clisort/pkg/sortcheck"
)

// ErrNoInputs is returned when Run has no Go source file to check, either
// because no paths were given or because the given directories hold none.
var ErrNoInputs = errors.New("no Go source files to check")

type (
	// Options configures a Run.
	Options struct {
		// Policy is applied to each declaration. Under FailFast a file stops
		// at its first violation; other files are unaffected.
		Policy sortcheck.Policy
		// Jobs bounds the number of files checked concurrently.
		// Zero means GOMAXPROCS.
		Jobs int
		// Exclude lists path substrings to skip during directory expansion.
		Exclude []string
		// Baseline suppresses accepted findings. Nil suppresses nothing.
		Baseline *baseline.Baseline
		// Logger receives debug events. Nil discards them.
		Logger *log.Logger
	}

	// FileResult is the outcome of checking one file.
	FileResult struct {
		Path string
		// Declarations counts the subcommand sets found in the file.
		Declarations int
		Violations   []sortcheck.Violation
		// Suppressed counts violations hidden by the baseline.
		Suppressed int
		// Err is set when the file could not be read, parsed or validated.
		Err error
	}
)

// OK reports whether the file was checked and has no violations.
func (r FileResult) OK() bool {
	return r.Err == nil && len(r.Violations) == 0
}

// Run expands paths and checks every file. Results are returned in input
// order, directories expanded in lexical order. A path that cannot be
// read produces a FileResult with Err set; it never aborts the run.
// The returned error is non-nil only for an invalid policy, ErrNoInputs or
// cancellation.
func Run(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	if err := validPolicy(opts.Policy); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	files := expand(paths, opts.Exclude, logger)
	if len(files) == 0 {
		logger.Debug("no files after expansion", "paths", paths)
		return nil, ErrNoInputs
	}
	results := make([]FileResult, len(files))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, f := range files {
		if f.err != nil {
			results[i] = FileResult{Path: f.path, Err: f.err}
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			logger.Debug("validating file", "path", f.path)
			results[i] = checkFile(f.path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Source checks in-memory source. filename is used in errors only.
// An invalid policy is reported through FileResult.Err.
func Source(filename string, src []byte, opts Options) FileResult {
	res := FileResult{Path: filename}
	if err := validPolicy(opts.Policy); err != nil {
		res.Err = err
		return res
	}
	decls, err := extract.Source(token.NewFileSet(), filename, src)
	if err != nil {
		res.Err = issue.NewErrorContext().
			WithOperation("parse source").
			WithResource(filename).
			WithSuggestion("Run 'go vet' on the package for the full error list").
			WithIssue(issue.ParseErrorId).
			Wrap(err).
			BuildError()
		return res
	}

	res.Declarations = len(decls)
	for _, d := range decls {
		violations, err := sortcheck.Validate(d.Command(), sortcheck.WithPolicy(opts.Policy))
		if err != nil && !errors.Is(err, sortcheck.ErrUnsorted) {
			res.Err = fmt.Errorf("validate %s: %w", d.Name, err)
			return res
		}
		kept, suppressed := opts.Baseline.Filter(violations)
		res.Violations = append(res.Violations, kept...)
		res.Suppressed += suppressed
		if opts.Policy == sortcheck.FailFast && len(kept) > 0 {
			break
		}
	}
	return res
}

// validPolicy accepts the zero Policy as CollectAll.
func validPolicy(p sortcheck.Policy) error {
	if p == "" {
		return nil
	}
	if ok, errs := p.IsValid(); !ok {
		return errors.Join(errs...)
	}
	return nil
}

func checkFile(path string, opts Options) FileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: readError(path, err)}
	}
	return Source(path, src, opts)
}

func readError(path string, err error) error {
	ctx := issue.NewErrorContext().WithOperation("read source").WithResource(path).Wrap(err)
	if errors.Is(err, fs.ErrNotExist) {
		ctx = ctx.WithSuggestion("Check the path for typos").WithIssue(issue.FileNotFoundId)
	}
	return ctx.BuildError()
}

type input struct {
	path string
	err  error
}

// expand turns paths into the list of files to check. Explicit file
// arguments are always kept; directories are walked for non-test .go files.
func expand(paths, exclude []string, logger *log.Logger) []input {
	var out []input
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			out = append(out, input{path: p, err: readError(p, err)})
			continue
		}
		if !info.IsDir() {
			out = append(out, input{path: p})
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				out = append(out, input{path: path, err: readError(path, err)})
				return nil
			}
			if d.IsDir() {
				if (path != p && skipDir(d.Name())) || excluded(path, exclude) {
					logger.Debug("directory skipped", "path", path)
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			if excluded(path, exclude) {
				logger.Debug("file skipped", "path", path)
				return nil
			}
			out = append(out, input{path: path})
			return nil
		})
		if err != nil {
			out = append(out, input{path: p, err: fmt.Errorf("walk %s: %w", p, err)})
		}
	}
	return out
}

func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		(len(name) > 1 && (name[0] == '.' || name[0] == '_'))
}

func excluded(path string, exclude []string) bool {
	slashed := filepath.ToSlash(path)
	for _, e := range exclude {
		if e != "" && strings.Contains(slashed, e) {
			return true
		}
	}
	return false
}
