package phonology

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Profile counts the sounds of one word, keyed by original spelling.
// It holds exactly one onset key (OnsetPrefix + initial sound, value 1)
// when the word is non-empty. Absent keys mean zero. Profiles may be
// shared between callers and must not be modified.
type Profile map[string]int

// Tally counts every sound in a canonical string, resolving surrogates
// back to their digraphs, and records the onset for alliteration.
func (t *Table) Tally(canonical string) Profile {
	p := Profile{}
	if canonical == "" {
		return p
	}

	first, _ := utf8.DecodeRuneInString(canonical)
	p[OnsetPrefix+t.Resolve(first)] = 1

	for _, r := range canonical {
		p[t.Resolve(r)]++
	}
	return p
}

// Profile normalizes and tallies a word in one step
func (t *Table) Profile(word string) Profile {
	return t.Tally(t.Normalize(word))
}

// Tally uses the default Greek table
func Tally(canonical string) Profile {
	return Greek.Tally(canonical)
}

// Onset returns the initial sound, without its prefix
func (p Profile) Onset() (string, bool) {
	for k := range p {
		if IsOnsetKey(k) {
			return strings.TrimPrefix(k, OnsetPrefix), true
		}
	}
	return "", false
}

// Total sums the counts of all non-onset keys
func (p Profile) Total() int {
	n := 0
	for k, v := range p {
		if !IsOnsetKey(k) {
			n += v
		}
	}
	return n
}

// Keys returns the profile's keys sorted by code point
func (p Profile) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsOnsetKey reports whether a profile key records a word onset
func IsOnsetKey(key string) bool {
	return strings.HasPrefix(key, OnsetPrefix)
}
