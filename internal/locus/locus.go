package locus

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed is returned (wrapped in a *ParseError) for book or line
// values that cannot be turned into a locus key.
var ErrMalformed = errors.New("malformed locus")

// ParseError describes which part of a locus failed to parse
type ParseError struct {
	Field string // "book", "line" or "ref"
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformed
}

// linePattern matches a digit run optionally followed by one lowercase letter
var linePattern = regexp.MustCompile(`^(\d+)([a-z])?$`)

// Locus addresses a single verse line
type Locus struct {
	Book   int
	Line   int
	Suffix string // empty, or one lowercase letter for inserted lines
}

// Key returns the canonical sortable key, e.g. "01_007" or "12_023b"
func (l Locus) Key() string {
	return fmt.Sprintf("%02d_%03d%s", l.Book, l.Line, l.Suffix)
}

func (l Locus) String() string {
	return l.Key()
}

// Parse builds a Locus from the textual book and line numbers found in a
// source document. Surrounding whitespace is ignored.
func Parse(book, line string) (Locus, error) {
	b, err := parseBook(book)
	if err != nil {
		return Locus{}, err
	}

	trimmed := strings.TrimSpace(line)
	m := linePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Locus{}, &ParseError{Field: "line", Value: line, Err: ErrMalformed}
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Locus{}, &ParseError{Field: "line", Value: line, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	return Locus{Book: b, Line: n, Suffix: m[2]}, nil
}

// Key parses book and line and returns the canonical key in one step
func Key(book, line string) (string, error) {
	l, err := Parse(book, line)
	if err != nil {
		return "", err
	}
	return l.Key(), nil
}

// KeyFromInts formats a key for callers that already hold numbers.
// Negative numbers are rejected like in Parse.
func KeyFromInts(book, line int) (string, error) {
	if book < 0 {
		return "", &ParseError{Field: "book", Value: strconv.Itoa(book), Err: ErrMalformed}
	}
	if line < 0 {
		return "", &ParseError{Field: "line", Value: strconv.Itoa(line), Err: ErrMalformed}
	}
	return Locus{Book: book, Line: line}.Key(), nil
}

// FromRef converts an external "book.line" reference such as "1.20" or
// "3.112a" into a canonical key.
func FromRef(ref string) (string, error) {
	book, line, ok := strings.Cut(strings.TrimSpace(ref), ".")
	if !ok {
		return "", &ParseError{Field: "ref", Value: ref, Err: ErrMalformed}
	}
	return Key(book, line)
}

func parseBook(book string) (int, error) {
	b, err := strconv.Atoi(strings.TrimSpace(book))
	if err != nil {
		return 0, &ParseError{Field: "book", Value: book, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if b < 0 {
		return 0, &ParseError{Field: "book", Value: book, Err: ErrMalformed}
	}
	return b, nil
}
