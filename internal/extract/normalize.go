package extract

import (
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Normalize produces the canonical scanning form of a document: newlines
// replaced by spaces, whitespace runs collapsed, everything lowercased.
// Total, including on empty input.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}
