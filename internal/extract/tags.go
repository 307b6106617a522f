// SPDX-License-Identifier: MPL-2.0

package extract

import (
	"strconv"
	"strings"
)

const (
	tagCmd   = "cmd"
	tagArg   = "arg"
	tagName  = "name"
	tagShort = "short"
	tagEmbed = "embed"
	tagKong  = "kong"
	tagSkip  = "-"
)

// structTag is a parsed struct tag. Unlike reflect.StructTag it accepts the
// bare keys kong allows (`cmd help:"..."`) and expands the combined
// `kong:"cmd,name=foo"` form into individual keys.
type structTag struct {
	values map[string]string
}

// parseTag parses the unquoted contents of a struct tag literal.
// Malformed trailing input is ignored.
func parseTag(raw string) structTag {
	t := structTag{values: make(map[string]string)}
	s := raw
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return t
		}

		end := strings.IndexAny(s, ": \t")
		if end < 0 {
			t.set(s, "")
			return t
		}
		key := s[:end]
		s = s[end:]
		if s[0] != ':' {
			t.set(key, "")
			continue
		}

		s = s[1:]
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			t.set(key, "")
			return t
		}
		s = s[len(quoted):]
		value, err := strconv.Unquote(quoted)
		if err != nil {
			continue
		}
		if key == tagKong {
			t.setKong(value)
			continue
		}
		t.set(key, value)
	}
}

// setKong expands `cmd,name=foo,short=f` entries.
func (t structTag) setKong(value string) {
	for entry := range strings.SplitSeq(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		k, v, _ := strings.Cut(entry, "=")
		t.set(strings.TrimSpace(k), strings.TrimSpace(v))
	}
}

func (t structTag) set(key, value string) {
	if key == "" {
		return
	}
	if _, exists := t.values[key]; exists {
		return
	}
	t.values[key] = value
}

// Has reports whether key is present, with or without a value.
func (t structTag) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Get returns the value of key, or "" when absent.
func (t structTag) Get(key string) string {
	return t.values[key]
}

// skipped reports whether the field is excluded with a `-` tag.
func (t structTag) skipped() bool {
	return t.Has(tagSkip)
}
