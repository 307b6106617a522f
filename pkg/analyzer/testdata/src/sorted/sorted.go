package sorted

type Commands struct {
	Add    AddCmd    `cmd:""`
	Delete DeleteCmd `cmd:""`
	List   ListCmd   `cmd:""`
	Update UpdateCmd `cmd:""`
}

type CLI struct {
	Paths   []string `arg:"" optional:""`
	All     bool     `short:"a"`
	Verbose bool     `short:"v"`
	Color   string
	Output  string

	Serve ServeCmd `cmd:""`
}

type (
	AddCmd    struct{}
	DeleteCmd struct{}
	ListCmd   struct{}
	UpdateCmd struct{}
	ServeCmd  struct{}
)
