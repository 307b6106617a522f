// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"

	"github.com/invowk/clisort/pkg/sortcheck"
)

type Id int

const (
	FileNotFoundId Id = iota + 1
	ParseErrorId
	NoInputsId
	ConfigLoadFailedId
	BaselineLoadFailedId
	SubcommandOrderId
	ShortFlagOrderId
	LongFlagOrderId
	ArgumentGroupOrderId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue page with the named glamour style ("dark",
// "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# Input not found!

One of the paths given to clisort does not exist or cannot be read.

## Things you can try:
- Check the path for typos
- Run clisort from the module root and pass relative paths:
~~~
$ clisort check ./...
~~~`,
	}

	parseErrorIssue = &Issue{
		id: ParseErrorId,
		mdMsg: `
# Failed to parse Go source!

clisort reads command declarations from Go source. The file below could not
be parsed, so none of its declarations were checked. Other files are still
checked.

## Things you can try:
- Run the compiler to get the full error list:
~~~
$ go vet ./...
~~~
- Exclude generated or template files in clisort.cue:
~~~cue
exclude: ["zz_generated", "templates/"]
~~~`,
	}

	noInputsIssue = &Issue{
		id: NoInputsId,
		mdMsg: `
# Nothing to check!

clisort needs at least one file or directory.

## Things you can try:
~~~
$ clisort check main.go
$ clisort check ./cmd
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The clisort configuration file could not be loaded or does not match the schema.

## Things you can try:
- Print the resolved file location:
~~~
$ clisort config path
~~~
- Start over from the defaults:
~~~
$ clisort config init --force
~~~

## Example clisort.cue:
~~~cue
policy: "collect-all"
format: "text"
jobs:   0
exclude: ["vendor/"]
ui: {
	color:   true
	verbose: false
}
~~~`,
	}

	baselineLoadFailedIssue = &Issue{
		id: BaselineLoadFailedId,
		mdMsg: `
# Failed to load the baseline!

The baseline file exists but is not valid TOML, or lists an unknown violation kind.

## Things you can try:
- Regenerate it from the current findings:
~~~
$ clisort baseline --output clisort-baseline.toml ./...
~~~`,
	}

	subcommandOrderIssue = &Issue{
		id: SubcommandOrderId,
		mdMsg: `
# subcommand-order

The subcommands of a command are not declared in ascending name order.
Names are compared byte-wise, so uppercase sorts before lowercase.

## Incorrect
~~~go
type Commands struct {
	List   ListCmd   ` + "`cmd:\"\"`" + `
	Add    AddCmd    ` + "`cmd:\"\"`" + `
}
~~~

## Correct
~~~go
type Commands struct {
	Add    AddCmd    ` + "`cmd:\"\"`" + `
	List   ListCmd   ` + "`cmd:\"\"`" + `
}
~~~

The compared name is the external one: a ` + "`name:\"...\"`" + ` tag wins over the
field name, which is otherwise converted to kebab-case.`,
	}

	shortFlagOrderIssue = &Issue{
		id: ShortFlagOrderId,
		mdMsg: `
# short-flag-order

Flags that have a short option are not sorted by that option.
Comparison is case-insensitive; when two options differ only in case the
lowercase one comes first (` + "`-i`" + ` before ` + "`-I`" + `).

## Correct
~~~go
All     bool ` + "`short:\"a\"`" + `
Verbose bool ` + "`short:\"v\"`" + `
~~~`,
	}

	longFlagOrderIssue = &Issue{
		id: LongFlagOrderId,
		mdMsg: `
# long-flag-order

Flags without a short option are not sorted by their long name.

## Correct
~~~go
Color  string
Output string
~~~`,
	}

	argumentGroupOrderIssue = &Issue{
		id: ArgumentGroupOrderId,
		mdMsg: `
# argument-group-order

Arguments of a command must be laid out in three groups:

1. positional arguments, in any order
2. flags with a short option
3. long-only flags

## Correct
~~~go
Paths   []string ` + "`arg:\"\"`" + `
Force   bool     ` + "`short:\"f\"`" + `
NoColor bool
~~~`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():       fileNotFoundIssue,
		parseErrorIssue.Id():         parseErrorIssue,
		noInputsIssue.Id():           noInputsIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		baselineLoadFailedIssue.Id(): baselineLoadFailedIssue,
		subcommandOrderIssue.Id():    subcommandOrderIssue,
		shortFlagOrderIssue.Id():     shortFlagOrderIssue,
		longFlagOrderIssue.Id():      longFlagOrderIssue,
		argumentGroupOrderIssue.Id(): argumentGroupOrderIssue,
	}

	kindIssues = map[sortcheck.ViolationKind]Id{
		sortcheck.SubcommandOrder:    SubcommandOrderId,
		sortcheck.ShortFlagOrder:     ShortFlagOrderId,
		sortcheck.LongFlagOrder:      LongFlagOrderId,
		sortcheck.ArgumentGroupOrder: ArgumentGroupOrderId,
	}
)

// Values returns every issue ordered by ID.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}

// ForKind returns the page explaining a violation kind, or nil.
func ForKind(kind sortcheck.ViolationKind) *Issue {
	id, ok := kindIssues[kind]
	if !ok {
		return nil
	}
	return issues[id]
}
