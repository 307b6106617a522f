// SPDX-License-Identifier: MPL-2.0

// Package cobrasort adapts cobra command trees to sortcheck.
//
// cobra sorts subcommands when they are listed and pflag sorts flags when
// they are visited. Both would hide the declaration order this package
// needs to observe, so hosts must set cobra.EnableCommandSorting to false
// before adding subcommands. Flags are read through a copy of each flag set
// with sorting off; the host's flag sets keep their SortFlags setting.
//
// cobra builds a command's merged flag sets lazily on first access, so
// FromCobra must not run concurrently with other use of the same tree.
package cobrasort

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/invowk/clisort/pkg/sortcheck"
)

// helpName is the name cobra uses for its generated help command and flag.
const helpName = "help"

// FromCobra snapshots the declaration order of c and its descendants.
//
// Arguments are the positionals named in the Use line, followed by the
// command's local flags in definition order, followed by its own
// persistent flags. Flags inherited from parents and cobra's generated
// help command and flag are left out.
func FromCobra(c *cobra.Command) sortcheck.Command {
	if c == nil {
		return nil
	}
	var children []sortcheck.Command
	for _, sub := range c.Commands() {
		if sub.Name() == helpName {
			continue
		}
		children = append(children, FromCobra(sub))
	}
	return sortcheck.NewNode(c.Name(), arguments(c), children...)
}

// Validate is shorthand for sortcheck.Validate(FromCobra(c), opts...).
func Validate(c *cobra.Command, opts ...sortcheck.Option) ([]sortcheck.Violation, error) {
	return sortcheck.Validate(FromCobra(c), opts...)
}

func arguments(c *cobra.Command) []sortcheck.Argument {
	var args []sortcheck.Argument
	for _, name := range UsePositionals(c.Use) {
		args = append(args, sortcheck.Positional(name))
	}

	persistent := c.PersistentFlags()
	inherited := c.InheritedFlags()

	visitUnsorted(c.Flags(), func(f *pflag.Flag) {
		if persistent.Lookup(f.Name) != nil || inherited.Lookup(f.Name) != nil {
			return
		}
		args = append(args, flagArgument(f))
	})
	visitUnsorted(persistent, func(f *pflag.Flag) {
		args = append(args, flagArgument(f))
	})
	return args
}

// visitUnsorted visits the flags of fs in definition order. VisitAll on an
// unsorted set only reads it, so the shallow copy leaves fs untouched.
func visitUnsorted(fs *pflag.FlagSet, fn func(*pflag.Flag)) {
	unsorted := *fs
	unsorted.SortFlags = false
	unsorted.VisitAll(func(f *pflag.Flag) {
		if f.Name == helpName {
			return
		}
		fn(f)
	})
}

func flagArgument(f *pflag.Flag) sortcheck.Argument {
	var short rune
	if f.Shorthand != "" {
		short = []rune(f.Shorthand)[0]
	}
	return sortcheck.Flag(f.Name, short, f.Name)
}

// UsePositionals returns the positional argument names of a cobra Use line
// such as "add <name> [version] [files...]". The command name itself and
// the conventional "[flags]" placeholder are skipped.
func UsePositionals(use string) []string {
	fields := strings.Fields(use)
	if len(fields) < 2 {
		return nil
	}
	var names []string
	for _, field := range fields[1:] {
		for alt := range strings.SplitSeq(field, "|") {
			name := strings.Trim(alt, "<>[]{}.")
			name = strings.TrimSuffix(name, "...")
			if name == "" || strings.EqualFold(name, "flags") || strings.HasPrefix(name, "-") {
				continue
			}
			names = append(names, strings.ToLower(name))
		}
	}
	return names
}
