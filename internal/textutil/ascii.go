// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides pure text transformations shared across stages.
package textutil

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper decomposes characters into base letter plus combining marks,
// drops the marks, and recomposes. "É" becomes "E", "ő" becomes "o".
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics maps accented letters to their closest unaccented
// equivalent. Characters without a combining-mark decomposition pass
// through unchanged. On a transform failure the input is returned as-is.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}
