package nested

var CLI struct { // want `subcommands in "CLI" are not sorted alphabetically`
	Rm struct { // want `flags with short options in "CLI rm" are not sorted` `arguments in "CLI rm" are not in group order`
		Recursive bool     `short:"r"`
		Force     bool     `short:"f"`
		Paths     []string `arg:""`
	} `cmd:"" help:"Remove files."`

	Ls struct {
		Paths []string `arg:"" optional:""`
	} `cmd:"" help:"List paths."`
}
