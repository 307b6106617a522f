// SPDX-License-Identifier: MPL-2.0

package urfavesort

import (
	"slices"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/invowk/clisort/pkg/sortcheck"
)

func TestFromCommand(t *testing.T) {
	t.Parallel()

	root := &cli.Command{
		Name: "app",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "service"},
			&cli.StringFlag{Name: "accelerator", Aliases: []string{"gpu"}},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
			&cli.BoolFlag{Name: "d", Aliases: []string{"debug"}},
		},
		ArgsUsage: "<src> [dst]",
		Commands: []*cli.Command{
			{Name: "recipe"},
			{Name: "bundle"},
			{Name: "help"},
		},
	}

	tree := FromCommand(root)

	var names []string
	for _, c := range tree.Children() {
		names = append(names, c.Name())
	}
	if want := []string{"recipe", "bundle"}; !slices.Equal(names, want) {
		t.Errorf("children = %v, want %v", names, want)
	}

	want := []sortcheck.Argument{
		sortcheck.Positional("src"),
		sortcheck.Positional("dst"),
		sortcheck.Flag("service", 0, "service"),
		sortcheck.Flag("accelerator", 0, "accelerator"),
		sortcheck.Flag("verbose", 'v', "verbose"),
		sortcheck.Flag("d", 'd', "debug"),
	}
	if got := tree.Arguments(); !slices.Equal(got, want) {
		t.Errorf("Arguments() = %+v, want %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  *cli.Command
		want []sortcheck.ViolationKind
	}{
		{
			name: "sorted",
			cmd: &cli.Command{
				Name: "app",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "all", Aliases: []string{"a"}},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}},
					&cli.StringFlag{Name: "format"},
					&cli.StringFlag{Name: "output"},
				},
				Commands: []*cli.Command{{Name: "bundle"}, {Name: "recipe"}},
			},
		},
		{
			name: "flags with usage positionals",
			cmd: &cli.Command{
				Name: "app",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
					&cli.StringFlag{Name: "output"},
				},
				ArgsUsage: "<src> [dst]",
			},
		},
		{
			name: "flags with declared arguments",
			cmd: &cli.Command{
				Name: "app",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}},
				},
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "src", UsageText: "<src>"},
				},
			},
		},
		{
			name: "unsorted subcommands",
			cmd: &cli.Command{
				Name:     "app",
				Commands: []*cli.Command{{Name: "recipe"}, {Name: "bundle"}},
			},
			want: []sortcheck.ViolationKind{sortcheck.SubcommandOrder},
		},
		{
			name: "long-only before short",
			cmd: &cli.Command{
				Name: "app",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format"},
					&cli.BoolFlag{Name: "all", Aliases: []string{"a"}},
				},
			},
			want: []sortcheck.ViolationKind{sortcheck.ArgumentGroupOrder},
		},
		{
			name: "nested long-only disorder",
			cmd: &cli.Command{
				Name: "app",
				Commands: []*cli.Command{{
					Name: "recipe",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "service"},
						&cli.StringFlag{Name: "intent"},
					},
				}},
			},
			want: []sortcheck.ViolationKind{sortcheck.LongFlagOrder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			violations, err := Validate(tt.cmd)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			var got []sortcheck.ViolationKind
			for _, v := range violations {
				got = append(got, v.Kind)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUsageName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"<src>":      "src",
		"[dst]":      "dst",
		"files...":   "files",
		"[options]":  "",
		"":           "",
		"SourceFile": "source-file",
	}
	for in, want := range tests {
		if got := usageName(in); got != want {
			t.Errorf("usageName(%q) = %q, want %q", in, got, want)
		}
	}
}
