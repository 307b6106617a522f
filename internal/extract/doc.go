// SPDX-License-Identifier: MPL-2.0

// Package extract finds subcommand sets in Go source without running it.
//
// A subcommand set is a struct type, declared as `type X struct{...}` or as a
// package-level `var X struct{...}`, with at least one field tagged `cmd`,
// following the kong convention:
//
//	type CLI struct {
//		Verbose bool `short:"v"`
//
//		List   ListCmd   `cmd:"" help:"List items."`
//		Add    AddCmd    `cmd:"" help:"Add an item."`
//		Remove RemoveCmd `cmd:"" name:"rm"`
//	}
//
// Each `cmd` field is a variant. Its external name is the `name` tag value when
// present, otherwise the field identifier in kebab case (AddCmd -> add-cmd).
// The remaining fields are the declaration's own arguments: `arg` fields are
// positional, fields with a `short` tag are short flags and other exported
// fields are long-only flags. Embedded fields and fields tagged `embed` are
// shared flag groups and are left out, as are fields tagged `-`.
//
// Variants whose type is an inline anonymous struct become nested commands of
// the same declaration. Named struct types are separate declarations and are
// validated on their own; no resolution happens across declarations.
//
// A `//clisort:ignore` directive in the doc comment of a declaration or field
// excludes it.
package extract
