// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"

	"github.com/invowk/clisort/pkg/sortcheck"
)

func TestValuesOrderedAndComplete(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != int(ArgumentGroupOrderId) {
		t.Fatalf("len(Values()) = %d, want %d", len(values), ArgumentGroupOrderId)
	}
	for i, v := range values {
		if v.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), i+1)
		}
		if strings.TrimSpace(string(v.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", v.Id())
		}
	}
}

func TestForKind(t *testing.T) {
	t.Parallel()

	for _, kind := range sortcheck.ViolationKinds() {
		page := ForKind(kind)
		if page == nil {
			t.Errorf("ForKind(%s) = nil", kind)
			continue
		}
		if !strings.Contains(string(page.MarkdownMsg()), "# "+kind.String()) {
			t.Errorf("ForKind(%s) page does not start with its kind", kind)
		}
	}
	if ForKind("nope") != nil {
		t.Error(`ForKind("nope") should be nil`)
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(SubcommandOrderId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "subcommand-order") {
		t.Errorf("Render() output missing title:\n%s", out)
	}
}

func TestIssue_LinksAreCopies(t *testing.T) {
	t.Parallel()

	i := &Issue{id: NoInputsId, docLinks: []HttpLink{"https://example.com/a"}}
	links := i.DocLinks()
	links[0] = "mutated"
	if i.DocLinks()[0] != "https://example.com/a" {
		t.Error("DocLinks() exposed internal state")
	}
	if len(i.ExtLinks()) != 0 {
		t.Error("ExtLinks() should be empty")
	}
}
