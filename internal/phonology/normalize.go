package phonology

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// roughBreathing is U+0314 COMBINING REVERSED COMMA ABOVE, as left by NFKD
const roughBreathing = '\u0314'

// stripForeign drops everything outside the lowercase target alphabet and
// the space character. The transformer is stateless.
var stripForeign = runes.Remove(runes.Predicate(func(r rune) bool {
	return r != ' ' && !inAlphabet(r)
}))

// Normalize maps one orthographic word to its canonical sound string:
// decompose, lowercase, extract the rough breathing as a leading "h", drop
// diacritics and anything non-alphabetic, then apply the digraph rules
// followed by the mergers. Punctuation or numerals normalize to "".
func (t *Table) Normalize(word string) string {
	s := norm.NFKD.String(word)
	s = strings.TrimSpace(strings.ToLower(s))

	breathing := strings.ContainsRune(s, roughBreathing)

	s, _, _ = transform.String(stripForeign, s)
	s = strings.TrimSpace(s)
	if breathing {
		s = BreathingMarker + s
	}

	return t.substitute(s)
}

// Normalize uses the default Greek table
func Normalize(word string) string {
	return Greek.Normalize(word)
}

// Words splits a verse line into its whitespace-separated words
func Words(text string) []string {
	return strings.Fields(text)
}
