// SPDX-License-Identifier: MPL-2.0

package sortcheck

// Groups holds a command's arguments partitioned by kind. Each group keeps
// the relative declaration order of its members. Arguments of KindNone are
// in no group.
type Groups struct {
	Positional []Argument
	Short      []Argument
	LongOnly   []Argument
}

// Classify partitions args into positional, short-flag and long-only groups.
// An argument with both a short and a long name belongs to the short group.
func Classify(args []Argument) Groups {
	var g Groups
	for _, a := range args {
		switch a.Kind() {
		case KindPositional:
			g.Positional = append(g.Positional, a)
		case KindShort:
			g.Short = append(g.Short, a)
		case KindLongOnly:
			g.LongOnly = append(g.LongOnly, a)
		case KindNone:
			// Neither validated nor reported.
		}
	}
	return g
}

// Ordered returns the canonical argument layout: positional, short flags,
// long-only flags.
func (g Groups) Ordered() []Argument {
	out := make([]Argument, 0, g.Len())
	out = append(out, g.Positional...)
	out = append(out, g.Short...)
	out = append(out, g.LongOnly...)
	return out
}

// Len returns the number of classified arguments.
func (g Groups) Len() int {
	return len(g.Positional) + len(g.Short) + len(g.LongOnly)
}
