// SPDX-License-Identifier: MPL-2.0

// clisort checks that CLI subcommands and arguments are declared in sorted
// order.
package main

import cmd "github.com/invowk/clisort/cmd/clisort"

func main() {
	cmd.Execute()
}
