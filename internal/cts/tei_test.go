package cts

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/quintus/internal/locus"
	"codeberg.org/snonux/quintus/internal/testutil"
)

func TestParseTEI_Sample(t *testing.T) {
	lines, err := ParseTEI(strings.NewReader(testutil.SampleTEI))
	require.NoError(t, err)

	want := []Line{
		{ID: "01_001", Book: "1", Line: "1", Text: "θεὸς φέρει"},
		{ID: "01_002", Book: "1", Line: "2", Text: "οἱ ἵπποι"},
		{ID: "01_002a", Book: "1", Line: "2a", Text: "ἀνὰ ἄστυ"},
		{ID: "02_001", Book: "2", Line: "1", Text: "Ζεὺς"},
		{ID: "02_002", Book: "2", Line: "2", Text: ""},
	}
	assert.Equal(t, want, lines)
}

func TestParseTEI_NoteTailSurvives(t *testing.T) {
	doc := `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div subtype="book" n="3"><l n="7">ἄνδρα<note>v.l. <note>nested</note> ἄνδρας</note> μοι</l></div>
</body></text></TEI>`

	lines, err := ParseTEI(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "ἄνδρα μοι", lines[0].Text)
	assert.Equal(t, "03_007", lines[0].ID)
}

func TestParseTEI_IgnoresOtherNamespaces(t *testing.T) {
	doc := `<root><div subtype="book" n="1"><l n="1">ἄνδρα</l></div></root>`

	lines, err := ParseTEI(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseTEI_MalformedLocus(t *testing.T) {
	doc := `<TEI xmlns="http://www.tei-c.org/ns/1.0">
<div subtype="book" n="1"><l n="x12">ἄνδρα</l></div></TEI>`

	_, err := ParseTEI(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, locus.ErrMalformed)
}

func TestParseTEI_InvalidXML(t *testing.T) {
	_, err := ParseTEI(strings.NewReader("<TEI><div>"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := testutil.CreateTestDirectory(t)
	teiPath, _ := testutil.CreateSampleCorpus(t, dir)

	lines, err := LoadFile(teiPath)
	require.NoError(t, err)
	assert.Len(t, lines, 5)

	_, err = LoadFile(filepath.Join(dir, "missing.xml"))
	assert.Error(t, err)
}
