// SPDX-License-Identifier: MPL-2.0

// clisortvet reports command structs whose subcommands or arguments are
// not declared in sorted order.
//
// Usage:
//
//	clisortvet [-baseline=clisort-baseline.toml] [-json] ./...
//	go vet -vettool=$(which clisortvet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/invowk/clisort/pkg/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
