// SPDX-License-Identifier: MPL-2.0

// Package analyzer reports kong-style command structs whose subcommands or
// arguments are declared out of order. It runs under singlechecker,
// multichecker or go vet -vettool.
package analyzer

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/invowk/clisort/internal/baseline"
	"github.com/invowk/clisort/internal/extract"
	"github.com/invowk/clisort/pkg/sortcheck"
)

// baselinePath is bound to the -baseline flag. run reads it once.
var baselinePath string

// Analyzer is the clisort analysis pass.
var Analyzer = &analysis.Analyzer{
	Name:     "clisort",
	Doc:      "reports subcommands and arguments of command structs that are not declared in sorted order",
	URL:      "https://github.com/invowk/clisort",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func init() {
	Analyzer.Flags.StringVar(&baselinePath, "baseline", "",
		"path to baseline TOML file (suppress known findings, report only new ones)")
}

func run(pass *analysis.Pass) (any, error) {
	bl, err := baseline.Load(baselinePath)
	if err != nil {
		return nil, err
	}

	var runErr error
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.File)(nil)}, func(n ast.Node) {
		f := n.(*ast.File)
		if strings.HasSuffix(pass.Fset.Position(f.Pos()).Filename, "_test.go") {
			return
		}
		for _, d := range extract.File(f) {
			positions := make(map[string]token.Pos)
			indexPositions(d, nil, positions)

			violations, err := sortcheck.Validate(d.Command())
			if err != nil {
				if runErr == nil {
					runErr = fmt.Errorf("validate %s: %w", d.Name, err)
				}
				continue
			}
			for _, v := range violations {
				if bl.Contains(v) {
					continue
				}
				pos, ok := positions[v.Command()]
				if !ok {
					pos = d.Pos
				}
				report(pass, pos, v)
			}
		}
	})
	return nil, runErr
}

// indexPositions maps each command path of d to the identifier declaring it.
func indexPositions(d extract.Declaration, parent []string, out map[string]token.Pos) {
	path := append(append([]string(nil), parent...), d.Name)
	out[strings.Join(path, " ")] = d.Pos
	for _, v := range d.Variants {
		if v.Nested != nil {
			indexPositions(*v.Nested, path, out)
		}
	}
}

func report(pass *analysis.Pass, pos token.Pos, v sortcheck.Violation) {
	pass.Report(analysis.Diagnostic{
		Pos:      pos,
		Category: v.Kind.String(),
		Message: fmt.Sprintf("%s: got %s, want %s",
			v.Headline(), sortcheck.FormatList(v.Actual), sortcheck.FormatList(v.Expected)),
		URL: baseline.URL(baseline.ID(v)),
	})
}
