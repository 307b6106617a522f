package main

// Commands are NOT listed in alphabetical order.
type Commands struct {
	List   ListCmd   `cmd:"" help:"List all items."`
	Add    AddCmd    `cmd:"" help:"Add a new item."`
	Update UpdateCmd `cmd:"" help:"Update an existing item."`
	Delete DeleteCmd `cmd:"" help:"Delete an item."`
}

type (
	AddCmd    struct{}
	DeleteCmd struct{}
	ListCmd   struct{}
	UpdateCmd struct{}
)
