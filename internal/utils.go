package internal

import (
	"strings"
	"unicode"
)

// SanitizeFilename creates a safe filename from a string such as a CTS URN.
// Letters, digits, '-' and '_' are kept; everything else becomes '_'.
func SanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isFilenameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// isFilenameRune checks if a rune may appear unchanged in a filename
func isFilenameRune(r rune) bool {
	return r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
