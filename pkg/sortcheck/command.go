// SPDX-License-Identifier: MPL-2.0

package sortcheck

import "slices"

const (
	// KindNone marks an argument with no positional marker and no flag name.
	// Such arguments are excluded from every check.
	KindNone ArgKind = iota
	// KindPositional marks an argument identified by position.
	KindPositional
	// KindShort marks a flag that carries a short (single character) name.
	KindShort
	// KindLongOnly marks a flag that carries a long name and no short name.
	KindLongOnly
)

type (
	// Command is the read-only view of one command in a tree.
	// Implementations must return children in declaration order and only the
	// command's own arguments: arguments inherited from an ancestor (global or
	// persistent flags) must not appear in Arguments.
	Command interface {
		Name() string
		Children() []Command
		Arguments() []Argument
	}

	// ArgKind is the group an argument is validated in.
	ArgKind int

	// Argument describes one declared argument. Its kind is derived from the
	// attributes in priority order: positional, short name, long name.
	Argument struct {
		// ID identifies the argument within its command.
		ID string `json:"id" yaml:"id"`
		// Positional is set for arguments identified by position.
		Positional bool `json:"positional,omitempty" yaml:"positional,omitempty"`
		// Short is the single-character flag name, or 0.
		Short rune `json:"short,omitempty" yaml:"short,omitempty"`
		// Long is the long flag name without leading dashes.
		Long string `json:"long,omitempty" yaml:"long,omitempty"`
	}

	// Node is an immutable Command built from plain values.
	Node struct {
		name     string
		children []Command
		args     []Argument
	}
)

// NewNode creates a Node. The argument and children slices are copied.
func NewNode(name string, args []Argument, children ...Command) *Node {
	return &Node{
		name:     name,
		children: slices.Clone(children),
		args:     slices.Clone(args),
	}
}

// Name returns the command name.
func (n *Node) Name() string { return n.name }

// Children returns a copy of the child commands in declaration order.
func (n *Node) Children() []Command { return slices.Clone(n.children) }

// Arguments returns a copy of the command's own arguments in declaration order.
func (n *Node) Arguments() []Argument { return slices.Clone(n.args) }

// Positional creates a positional argument.
func Positional(id string) Argument {
	return Argument{ID: id, Positional: true}
}

// Flag creates a flag argument. Pass 0 for short or "" for long when the
// flag has no such name.
func Flag(id string, short rune, long string) Argument {
	return Argument{ID: id, Short: short, Long: long}
}

// Kind classifies the argument.
func (a Argument) Kind() ArgKind {
	switch {
	case a.Positional:
		return KindPositional
	case a.Short != 0:
		return KindShort
	case a.Long != "":
		return KindLongOnly
	default:
		return KindNone
	}
}

// DisplayName returns the ID, falling back to the flag spelling when the
// argument has no ID.
func (a Argument) DisplayName() string {
	switch {
	case a.ID != "":
		return a.ID
	case a.Long != "":
		return "--" + a.Long
	case a.Short != 0:
		return "-" + string(a.Short)
	default:
		return ""
	}
}

// String returns the kind name.
func (k ArgKind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindShort:
		return "short"
	case KindLongOnly:
		return "long-only"
	default:
		return "none"
	}
}
