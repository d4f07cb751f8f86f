package phonology

import (
	"fmt"
	"io"
)

// ListRules prints the table grouped by rule type
func ListRules(w io.Writer, t *Table) error {
	if t == nil {
		t = Greek
	}

	if _, err := fmt.Fprintln(w, "Replacement rules (applied in this order):"); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nReversible digraphs (counted as one sound):")
	if len(t.reversible) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, r := range t.reversible {
		s, _ := singleRune(r.To)
		fmt.Fprintf(w, "  %s  -> U+%04X\n", r.From, s)
	}

	fmt.Fprintln(w, "\nIrreversible mergers:")
	if len(t.irreversible) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, r := range t.irreversible {
		fmt.Fprintf(w, "  %s  -> %s\n", r.From, r.To)
	}

	_, err := fmt.Fprintf(w, "\nRough breathing is reported as %q; word onsets as %q + sound.\n", BreathingMarker, OnsetPrefix)
	return err
}
