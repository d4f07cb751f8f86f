package phonology

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateGreekText checks that text is non-empty and contains Greek letters
func ValidateGreekText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	for _, r := range text {
		if unicode.In(r, unicode.Greek) {
			return nil
		}
	}

	return fmt.Errorf("text must contain Greek characters")
}
