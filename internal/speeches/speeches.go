// Package speeches loads the line ranges of character speeches, either from
// the DICES web API or from a local list, and turns them into labeler ranges.
package speeches

import (
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/quintus/internal/labeler"
	"codeberg.org/snonux/quintus/internal/logging"
)

// Speech is one speech with its first and last line as "book.line" refs
type Speech struct {
	ID    int    `json:"id"`
	First string `json:"l_fi"`
	Last  string `json:"l_la"`
}

// ReadFile reads speeches from a file, one per line.
// Supports formats:
// - Space separated: "1.20 1.32"
// - Dash separated: "1.20 - 1.32"
// Blank lines and lines starting with '#' are ignored. Speeches are
// numbered by their position in the file.
func ReadFile(filename string) ([]Speech, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech file: %w", err)
	}

	var list []Speech
	for n, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		first, last, ok := parseRange(line)
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected \"FIRST LAST\" or \"FIRST - LAST\", got %q", filename, n+1, line)
		}
		list = append(list, Speech{
			ID:    len(list) + 1,
			First: first,
			Last:  last,
		})
	}

	return list, nil
}

func parseRange(line string) (first, last string, ok bool) {
	if a, b, found := strings.Cut(line, "-"); found {
		first, last = strings.TrimSpace(a), strings.TrimSpace(b)
		return first, last, first != "" && last != "" && !strings.ContainsAny(first+last, " \t")
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

// Ranges converts speeches into labeler ranges carrying category. Speeches
// without both endpoints are skipped with a warning; an endpoint that is
// not a valid locus is an error.
func Ranges(list []Speech, category string) ([]labeler.Range, error) {
	ranges := make([]labeler.Range, 0, len(list))
	for _, s := range list {
		if s.First == "" || s.Last == "" {
			logging.Warn("speech without loci skipped", "speech", s.ID)
			continue
		}

		r, err := labeler.RangeFromRefs(s.First, s.Last, category)
		if err != nil {
			return nil, fmt.Errorf("speech %d: %w", s.ID, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
