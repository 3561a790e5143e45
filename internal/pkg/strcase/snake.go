package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake converts a field name like "FullName" or "userID" to
// snake_case, keeping initialisms intact (HTTPServer -> http_server).
func ToLowerSnake(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	out := make([]rune, 0, len(runes)+2)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && boundaryBefore(runes, i) {
			out = append(out, '_')
		}
		out = append(out, unicode.ToLower(r))
	}

	return string(out)
}

// boundaryBefore reports whether a word boundary sits before index i, which
// must hold an upper-case rune. Two shapes count: the end of a lower/digit
// run (userID) and the last letter of an initialism followed by a word
// (HTTPServer).
func boundaryBefore(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// FieldKey normalizes a struct field name into the key used in validation
// error maps. It is ToLowerSnake with surrounding space trimmed first.
func FieldKey(name string) string {
	return ToLowerSnake(strings.TrimSpace(name))
}
