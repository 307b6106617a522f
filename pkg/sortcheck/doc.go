// SPDX-License-Identifier: MPL-2.0

// Package sortcheck validates that a command tree declares its subcommands and
// arguments in canonical alphabetical order.
//
// For every command, depth-first and pre-order, four checks run:
//
//  1. Subcommand names are sorted alphabetically.
//  2. Flags with a short option are sorted by that option, case-insensitively,
//     with lowercase before uppercase on a tie (-i before -I).
//  3. Long-only flags are sorted alphabetically by long name.
//  4. Arguments appear grouped as positional, then short flags, then long-only
//     flags. Positional arguments keep their declaration order, which is
//     significant for parsing, and are never sorted.
//
// The tree is supplied through the three-method Command interface. Adapters
// for cobra and urfave/cli live in the cobrasort and urfavesort subpackages;
// the static extractor builds Node trees from Go source.
//
// Two policies are available. CollectAll (the default) walks the whole tree
// and returns every violation. FailFast stops at the first failing check and
// returns it as a *ViolationError.
//
//	violations, err := sortcheck.Validate(root)
//	if err != nil {
//		return err
//	}
//	for _, v := range violations {
//		fmt.Println(v.Message())
//	}
package sortcheck
