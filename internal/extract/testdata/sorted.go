package main

// Commands are listed in alphabetical order.
type Commands struct {
	Add    AddCmd    `cmd:"" help:"Add a new item."`
	Delete DeleteCmd `cmd:"" help:"Delete an item."`
	List   ListCmd   `cmd:"" help:"List all items."`
	Update UpdateCmd `cmd:"" help:"Update an existing item."`
}

type (
	AddCmd    struct{}
	DeleteCmd struct{}
	ListCmd   struct{}
	UpdateCmd struct{}
)
