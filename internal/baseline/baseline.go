// SPDX-License-Identifier: MPL-2.0

// Package baseline stores accepted ordering findings so that only new
// violations are reported.
//
// A baseline is a TOML file with one table per violation kind:
//
//	[subcommand-order]
//	entries = [
//	    { id = "cs1_…", message = "subcommands in \"app\" are not sorted alphabetically" },
//	]
package baseline

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/invowk/clisort/pkg/sortcheck"
)

const (
	// idVersion is part of the ID preimage. Bump only for incompatible
	// changes to the ID schema.
	idVersion = "1"

	// URLPrefix prefixes finding IDs in analysis.Diagnostic.URL.
	URLPrefix = "clisort://finding/"
)

type (
	// Entry is one accepted finding. Message is kept for readability only.
	Entry struct {
		ID      string `toml:"id"`
		Message string `toml:"message"`
	}

	// Category holds the accepted findings of one violation kind.
	Category struct {
		Entries []Entry `toml:"entries"`
	}

	// Baseline is a loaded baseline file.
	Baseline struct {
		categories map[sortcheck.ViolationKind]Category
		lookup     map[sortcheck.ViolationKind]map[string]bool
	}
)

// ID returns the stable identity of a violation. It depends on the kind,
// the command path and the offending order, never on message wording.
func ID(v sortcheck.Violation) string {
	parts := []string{idVersion, v.Kind.String(), strings.Join(v.Path, " "), strings.Join(v.Actual, ",")}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return "cs" + idVersion + "_" + hex.EncodeToString(sum[:])
}

// URL formats a finding ID for analysis.Diagnostic.URL.
func URL(id string) string {
	if id == "" {
		return ""
	}
	return URLPrefix + id
}

// IDFromURL extracts a finding ID from a diagnostic URL, or returns "" when
// raw is not a clisort finding URL.
func IDFromURL(raw string) string {
	if !strings.HasPrefix(raw, URLPrefix) {
		return ""
	}
	return strings.TrimPrefix(raw, URLPrefix)
}

// Empty returns a baseline that matches nothing.
func Empty() *Baseline {
	b := &Baseline{categories: make(map[sortcheck.ViolationKind]Category)}
	b.buildLookup()
	return b
}

// Load reads a baseline file. An empty path or a missing file yields an
// empty baseline, so projects without a baseline pass unchanged.
func Load(path string) (*Baseline, error) {
	if path == "" {
		return Empty(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), nil
		}
		return nil, fmt.Errorf("reading baseline: %w", err)
	}
	return Parse(data)
}

// Parse decodes baseline TOML. Tables for unknown kinds are rejected.
func Parse(data []byte) (*Baseline, error) {
	var raw map[string]Category
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing baseline TOML: %w", err)
	}

	b := &Baseline{categories: make(map[sortcheck.ViolationKind]Category, len(raw))}
	for name, cat := range raw {
		kind := sortcheck.ViolationKind(name)
		if ok, errs := kind.IsValid(); !ok {
			return nil, fmt.Errorf("parsing baseline TOML: %w", errors.Join(errs...))
		}
		b.categories[kind] = cat
	}
	b.buildLookup()
	return b, nil
}

// Contains reports whether v is an accepted finding.
func (b *Baseline) Contains(v sortcheck.Violation) bool {
	if b == nil {
		return false
	}
	return b.lookup[v.Kind][ID(v)]
}

// Count returns the number of distinct accepted findings.
func (b *Baseline) Count() int {
	if b == nil {
		return 0
	}
	total := 0
	for _, ids := range b.lookup {
		total += len(ids)
	}
	return total
}

// Filter returns the violations not covered by the baseline, in their
// original order, and the number suppressed.
func (b *Baseline) Filter(violations []sortcheck.Violation) ([]sortcheck.Violation, int) {
	kept := make([]sortcheck.Violation, 0, len(violations))
	for _, v := range violations {
		if !b.Contains(v) {
			kept = append(kept, v)
		}
	}
	return kept, len(violations) - len(kept)
}

func (b *Baseline) buildLookup() {
	b.lookup = make(map[sortcheck.ViolationKind]map[string]bool, len(b.categories))
	for kind, cat := range b.categories {
		ids := make(map[string]bool, len(cat.Entries))
		for _, e := range cat.Entries {
			if e.ID != "" {
				ids[e.ID] = true
			}
		}
		b.lookup[kind] = ids
	}
}

// Encode renders violations as baseline TOML. Entries are deduplicated by
// ID and sorted for stable diffs.
func Encode(violations []sortcheck.Violation) ([]byte, error) {
	byKind := make(map[string][]Entry)
	seen := make(map[string]bool)
	for _, v := range violations {
		id := ID(v)
		if seen[id] {
			continue
		}
		seen[id] = true
		byKind[v.Kind.String()] = append(byKind[v.Kind.String()], Entry{ID: id, Message: v.Headline()})
	}

	doc := make(map[string]Category, len(byKind))
	for kind, entries := range byKind {
		slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.ID, b.ID) })
		doc[kind] = Category{Entries: entries}
	}

	var buf bytes.Buffer
	buf.WriteString("# clisort baseline: accepted ordering findings\n")
	fmt.Fprintf(&buf, "# Generated: %s\n", time.Now().UTC().Format(time.DateOnly))
	fmt.Fprintf(&buf, "# Total: %d findings\n\n", len(seen))
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding baseline: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes violations and writes them to path.
func Write(path string, violations []sortcheck.Violation) error {
	data, err := Encode(violations)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
