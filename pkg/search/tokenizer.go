package search

import (
	"strings"
	"unicode"
)

// Token is the url safe form of a facet value.
type Token = string

// Normalize lower-cases text and collapses each run of whitespace into a
// single underscore. It is the only place facet tokens are derived, so that
// labels read from records and from the taxonomy agree. Leading and trailing
// whitespace is not trimmed, it becomes an underscore like any other run.
func Normalize(text string) Token {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('_')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Matches reports whether text normalizes to token. The empty token never
// matches and an empty text never matches a non-empty token.
func Matches(text string, token Token) bool {
	if token == "" {
		return false
	}
	return Normalize(text) == token
}
