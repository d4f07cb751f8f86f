// Package labeler assigns a category to each verse line by checking its
// locus key against inclusive ranges of keys.
package labeler

import (
	"fmt"

	"codeberg.org/snonux/quintus/internal/locus"
)

// Categories used by the pipeline
const (
	Narration = "narration"
	Speech    = "speech"
)

// Range is an inclusive span of locus keys carrying a category
type Range struct {
	First    string
	Last     string
	Category string
}

// Contains reports whether key lies within the range by string comparison.
// A range whose First sorts after its Last contains nothing.
func (r Range) Contains(key string) bool {
	return r.First <= key && key <= r.Last
}

// RangeFromRefs converts external "book.line" endpoints through the locus
// scheme. Unparsable endpoints are an error.
func RangeFromRefs(first, last, category string) (Range, error) {
	f, err := locus.FromRef(first)
	if err != nil {
		return Range{}, fmt.Errorf("range start: %w", err)
	}
	l, err := locus.FromRef(last)
	if err != nil {
		return Range{}, fmt.Errorf("range end: %w", err)
	}
	return Range{First: f, Last: l, Category: category}, nil
}

// Apply labels every key with fallback, then applies ranges in order so
// that a later range overwrites an earlier one where they overlap.
func Apply(keys []string, ranges []Range, fallback string) []string {
	labels := make([]string, len(keys))
	for i := range labels {
		labels[i] = fallback
	}

	for _, r := range ranges {
		for i, k := range keys {
			if r.Contains(k) {
				labels[i] = r.Category
			}
		}
	}
	return labels
}

// Count returns how many labels equal category
func Count(labels []string, category string) int {
	n := 0
	for _, l := range labels {
		if l == category {
			n++
		}
	}
	return n
}
