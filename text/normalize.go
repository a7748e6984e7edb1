// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares user supplied text for single line layout.
// It applies Unicode NFC composition so precomposed glyphs are used,
// turns line breaks and tabs into spaces, and drops other control
// characters.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}
