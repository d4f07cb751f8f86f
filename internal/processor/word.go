package processor

import (
	"fmt"
	"io"

	"codeberg.org/snonux/quintus/internal/phonology"
)

// ProcessWord prints the normalized form and sound profile of one word
func (p *Processor) ProcessWord(w io.Writer, word string) error {
	if err := phonology.ValidateGreekText(word); err != nil {
		return fmt.Errorf("invalid word '%s': %w", word, err)
	}

	t := p.Table()
	canonical := t.Normalize(word)
	profile := t.Tally(canonical)

	fmt.Fprintf(w, "Word: %s\n", word)
	fmt.Fprintf(w, "Normalized: %s\n", canonical)
	if onset, ok := profile.Onset(); ok {
		fmt.Fprintf(w, "Onset: %s\n", onset)
	}

	fmt.Fprintf(w, "Sounds:\n")
	for _, k := range profile.Keys() {
		if phonology.IsOnsetKey(k) {
			continue
		}
		fmt.Fprintf(w, "  %-3s %d\n", k, profile[k])
	}
	fmt.Fprintf(w, "Total: %d\n", profile.Total())
	return nil
}

// ListSounds prints the replacement rules of the table in use
func (p *Processor) ListSounds(w io.Writer) error {
	return phonology.ListRules(w, p.Table())
}
