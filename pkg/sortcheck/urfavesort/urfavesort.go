// SPDX-License-Identifier: MPL-2.0

// Package urfavesort adapts urfave/cli command trees to sortcheck.
package urfavesort

import (
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	"github.com/invowk/clisort/internal/extract"
	"github.com/invowk/clisort/pkg/sortcheck"
)

const helpName = "help"

// FromCommand snapshots the declaration order of c and its descendants.
//
// A flag's first single-character name is its short option and its first
// longer name is its long option. Positionals come first, taken from the
// declared Arguments or from ArgsUsage when none are declared, followed by
// the flags in definition order. The generated help command and flag are
// left out.
func FromCommand(c *cli.Command) sortcheck.Command {
	if c == nil {
		return nil
	}
	var children []sortcheck.Command
	for _, sub := range c.Commands {
		if sub == nil || sub.Name == helpName {
			continue
		}
		children = append(children, FromCommand(sub))
	}
	return sortcheck.NewNode(c.Name, arguments(c), children...)
}

// Validate is shorthand for sortcheck.Validate(FromCommand(c), opts...).
func Validate(c *cli.Command, opts ...sortcheck.Option) ([]sortcheck.Violation, error) {
	return sortcheck.Validate(FromCommand(c), opts...)
}

func arguments(c *cli.Command) []sortcheck.Argument {
	var args []sortcheck.Argument
	if len(c.Arguments) > 0 {
		for _, a := range c.Arguments {
			if name := usageName(a.Usage()); name != "" {
				args = append(args, sortcheck.Positional(name))
			}
		}
	} else {
		for field := range strings.FieldsSeq(c.ArgsUsage) {
			if name := usageName(field); name != "" {
				args = append(args, sortcheck.Positional(name))
			}
		}
	}

	for _, f := range c.Flags {
		if f == nil {
			continue
		}
		if a, ok := flagArgument(f.Names()); ok {
			args = append(args, a)
		}
	}
	return args
}

func flagArgument(names []string) (sortcheck.Argument, bool) {
	if len(names) == 0 || names[0] == helpName {
		return sortcheck.Argument{}, false
	}
	var short rune
	var long string
	for _, n := range names {
		switch {
		case utf8.RuneCountInString(n) == 1:
			if short == 0 {
				short, _ = utf8.DecodeRuneInString(n)
			}
		case long == "":
			long = n
		}
	}
	return sortcheck.Flag(names[0], short, long), true
}

// usageName extracts a positional name from usage text like "<src>",
// "[dst]" or "files...". Option placeholders such as "[options]" yield "".
func usageName(usage string) string {
	fields := strings.Fields(usage)
	if len(fields) == 0 {
		return ""
	}
	name := strings.Trim(fields[0], "<>[]{}.")
	switch strings.ToLower(name) {
	case "", "options", "flags", "command":
		return ""
	}
	return extract.DefaultName(name)
}
