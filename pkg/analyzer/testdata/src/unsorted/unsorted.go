package unsorted

type Commands struct { // want `subcommands in "Commands" are not sorted alphabetically: got \[list, add, update, delete\], want \[add, delete, list, update\]`
	List   ListCmd   `cmd:""`
	Add    AddCmd    `cmd:""`
	Update UpdateCmd `cmd:""`
	Delete DeleteCmd `cmd:""`
}

type Flags struct { // want `flags with short options in "Flags" are not sorted` `long-only flags in "Flags" are not sorted` `arguments in "Flags" are not in group order`
	Verbose bool `short:"v"`
	Output  string
	All     bool `short:"a"`
	Color   string

	Run RunCmd `cmd:""`
}

//clisort:ignore
type Legacy struct {
	Zed ZedCmd `cmd:""`
	Add AddCmd `cmd:""`
}

type (
	AddCmd    struct{}
	DeleteCmd struct{}
	ListCmd   struct{}
	UpdateCmd struct{}
	RunCmd    struct{}
	ZedCmd    struct{}
)
