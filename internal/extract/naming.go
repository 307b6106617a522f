// SPDX-License-Identifier: MPL-2.0

package extract

import (
	"strings"
	"unicode"
)

// DefaultName derives the external command or flag name of an identifier:
// lowercase, with underscores and camel-case word boundaries turned into
// hyphens.
//
//	Add        -> add
//	AddCmd     -> add-cmd
//	HTTPServer -> http-server
//	Add_Item   -> add-item
func DefaultName(ident string) string {
	runes := []rune(ident)
	var b strings.Builder
	b.Grow(len(ident) + 4)

	hyphen := func() {
		s := b.String()
		if s != "" && !strings.HasSuffix(s, "-") {
			b.WriteByte('-')
		}
	}

	for i, r := range runes {
		switch {
		case r == '_' || r == '-':
			hyphen()
		case unicode.IsUpper(r):
			if i > 0 && wordBoundary(runes, i) {
				hyphen()
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}

// wordBoundary reports whether the uppercase rune at i starts a new word:
// after a lowercase letter or digit, or as the last capital of an acronym
// followed by a lowercase letter (the S in HTTPServer).
func wordBoundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}
