// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the clisort CLI commands.
//
// The command tree is built by NewRootCommand around an App, which holds the
// configuration provider and output streams. Subcommands are added in
// alphabetical order and cobra's own sorting is disabled, so the tree
// itself passes the check it implements.
package cmd
