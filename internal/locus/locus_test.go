package locus

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		book string
		line string
		want string
	}{
		{"1", "7", "01_007"},
		{"12", "23b", "12_023b"},
		{"1", "1", "01_001"},
		{"14", "658", "14_658"},
		{" 2 ", " 15 ", "02_015"},
		{"0", "0", "00_000"},
		{"3", "007", "03_007"},
	}

	for _, tt := range tests {
		t.Run(tt.book+"."+tt.line, func(t *testing.T) {
			got, err := Key(tt.book, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		book  string
		line  string
		field string
	}{
		{"empty line", "1", "", "line"},
		{"letters only", "1", "abc", "line"},
		{"two suffix letters", "1", "7ab", "line"},
		{"uppercase suffix", "1", "7B", "line"},
		{"line overflow", "1", "99999999999999999999999", "line"},
		{"empty book", "", "7", "book"},
		{"negative book", "-1", "7", "book"},
		{"book with letter", "1a", "7", "book"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Key(tt.book, tt.line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestKey_Ordering(t *testing.T) {
	a, _ := Key("1", "7")
	b, _ := Key("1", "8")
	c, _ := Key("2", "1")
	assert.Less(t, a, b)
	assert.Less(t, b, c)

	// Suffixed lines sort after the bare numeral and before the next line.
	bare, _ := Key("1", "23")
	suffixed, _ := Key("1", "23a")
	next, _ := Key("1", "24")
	assert.Less(t, bare, suffixed)
	assert.Less(t, suffixed, next)
}

func TestKey_OrderingMatchesDocumentOrder(t *testing.T) {
	loci := []Locus{
		{Book: 1, Line: 2},
		{Book: 1, Line: 10},
		{Book: 1, Line: 10, Suffix: "a"},
		{Book: 1, Line: 10, Suffix: "b"},
		{Book: 1, Line: 100},
		{Book: 2, Line: 1},
		{Book: 10, Line: 5},
		{Book: 14, Line: 999},
	}

	keys := make([]string, len(loci))
	for i, l := range loci {
		keys[i] = l.Key()
	}

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	assert.Equal(t, keys, sorted)
}

func TestParse(t *testing.T) {
	l, err := Parse("12", "23b")
	require.NoError(t, err)
	assert.Equal(t, Locus{Book: 12, Line: 23, Suffix: "b"}, l)
	assert.Equal(t, "12_023b", l.String())
}

func TestKeyFromInts(t *testing.T) {
	got, err := KeyFromInts(5, 42)
	require.NoError(t, err)
	assert.Equal(t, "05_042", got)

	_, err = KeyFromInts(-1, 7)
	assert.ErrorIs(t, err, ErrMalformed)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "book", pe.Field)

	_, err = KeyFromInts(1, -7)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "line", pe.Field)
}

func TestFromRef(t *testing.T) {
	got, err := FromRef("1.20")
	require.NoError(t, err)
	assert.Equal(t, "01_020", got)

	got, err = FromRef("3.112a")
	require.NoError(t, err)
	assert.Equal(t, "03_112a", got)

	_, err = FromRef("1-20")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = FromRef("x.20")
	assert.ErrorIs(t, err, ErrMalformed)
}
