package phonology

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidTable is wrapped by every error NewTable returns
var ErrInvalidTable = errors.New("invalid replacement table")

const (
	// BreathingMarker is prepended to words carrying a rough breathing
	BreathingMarker = "h"

	// OnsetPrefix marks the profile key recording a word's initial sound
	OnsetPrefix = "_"

	alphabetFirst = 'α' // U+03B1
	alphabetLast  = 'ω' // U+03C9
)

// Rule replaces every occurrence of From with To
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Default Greek rules. Reversible digraphs map to surrogates that cannot
// survive normalization (Latin letters and the capitals U+0399, U+0391),
// so they never collide with a real letter.
var (
	greekReversible = []Rule{
		{From: "οι", To: "O"},
		{From: "αι", To: "\u0399"},
		{From: "ει", To: "e"},
		{From: "υι", To: "Y"},
		{From: "αυ", To: "\u0391"},
		{From: "ευ", To: "u"},
		{From: "ου", To: "U"},
	}

	greekIrreversible = []Rule{
		{From: "ς", To: "σ"},
		{From: "θ", To: "τ"},
		{From: "χ", To: "κ"},
		{From: "φ", To: "π"},
	}
)

// Greek is the process-wide default table. It is never modified.
var Greek = MustNewTable(greekReversible, greekIrreversible)

// Table is an ordered two-stage rule list: reversible digraphs first, then
// irreversible single-letter mergers. A Table is read-only after
// construction and safe for concurrent use.
type Table struct {
	reversible   []Rule
	irreversible []Rule
	reverse      map[rune]string // surrogate -> original digraph
}

// NewTable validates the rules and builds the reverse lookup once.
// Rules are applied in the order given within each stage.
func NewTable(reversible, irreversible []Rule) (*Table, error) {
	t := &Table{
		reversible:   append([]Rule(nil), reversible...),
		irreversible: append([]Rule(nil), irreversible...),
		reverse:      make(map[rune]string, len(reversible)),
	}

	for _, r := range irreversible {
		from, ok := singleRune(r.From)
		if !ok {
			return nil, fmt.Errorf("%w: merger pattern %q must be one letter", ErrInvalidTable, r.From)
		}
		to, ok := singleRune(r.To)
		if !ok {
			return nil, fmt.Errorf("%w: merger target %q must be one letter", ErrInvalidTable, r.To)
		}
		if !inAlphabet(from) {
			return nil, fmt.Errorf("%w: merger pattern %q is outside α-ω", ErrInvalidTable, r.From)
		}
		// Targets stay inside α-ω so a merger can never emit the onset
		// prefix, a space or a surrogate.
		if !inAlphabet(to) {
			return nil, fmt.Errorf("%w: merger target %q is outside α-ω", ErrInvalidTable, r.To)
		}
	}

	for _, r := range reversible {
		if utf8.RuneCountInString(r.From) != 2 {
			return nil, fmt.Errorf("%w: digraph %q must be two letters", ErrInvalidTable, r.From)
		}
		if strings.Contains(r.From, OnsetPrefix) {
			return nil, fmt.Errorf("%w: digraph %q contains the onset prefix", ErrInvalidTable, r.From)
		}
		for _, c := range r.From {
			if !inAlphabet(c) && string(c) != BreathingMarker {
				return nil, fmt.Errorf("%w: digraph %q has letters outside α-ω", ErrInvalidTable, r.From)
			}
		}
		s, ok := singleRune(r.To)
		if !ok {
			return nil, fmt.Errorf("%w: surrogate %q for %q must be one character", ErrInvalidTable, r.To, r.From)
		}
		if inAlphabet(s) || s == ' ' || string(s) == BreathingMarker || string(s) == OnsetPrefix {
			return nil, fmt.Errorf("%w: surrogate %q for %q collides with a normalized letter", ErrInvalidTable, r.To, r.From)
		}
		if prev, dup := t.reverse[s]; dup {
			return nil, fmt.Errorf("%w: surrogate %q used for both %q and %q", ErrInvalidTable, r.To, prev, r.From)
		}
		t.reverse[s] = r.From
	}

	return t, nil
}

// MustNewTable is NewTable for tables known to be valid
func MustNewTable(reversible, irreversible []Rule) *Table {
	t, err := NewTable(reversible, irreversible)
	if err != nil {
		panic(err)
	}
	return t
}

// Reversible returns a copy of the digraph rules in application order
func (t *Table) Reversible() []Rule {
	return append([]Rule(nil), t.reversible...)
}

// Irreversible returns a copy of the merger rules in application order
func (t *Table) Irreversible() []Rule {
	return append([]Rule(nil), t.irreversible...)
}

// Resolve maps a surrogate back to its digraph; other runes map to themselves
func (t *Table) Resolve(r rune) string {
	if d, ok := t.reverse[r]; ok {
		return d
	}
	return string(r)
}

// substitute applies every digraph rule, then every merger rule
func (t *Table) substitute(s string) string {
	for _, r := range t.reversible {
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	for _, r := range t.irreversible {
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	return s
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}

func inAlphabet(r rune) bool {
	return r >= alphabetFirst && r <= alphabetLast
}
