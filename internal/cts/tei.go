package cts

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"codeberg.org/snonux/quintus/internal/locus"
)

// XML namespaces used by CTS responses
const (
	NamespaceTEI = "http://www.tei-c.org/ns/1.0"
	NamespaceCTS = "http://chs.harvard.edu/xmlns/cts"
)

var namespaces = map[string]string{
	"tei": NamespaceTEI,
	"cts": NamespaceCTS,
}

var (
	booksExpr = mustCompileNS(`.//tei:div[@subtype="book"]`)
	notesExpr = mustCompileNS(`.//tei:l//tei:note`)
	linesExpr = mustCompileNS(`.//tei:l`)
)

func mustCompileNS(expr string) *xpath.Expr {
	e, err := xpath.CompileWithNS(expr, namespaces)
	if err != nil {
		panic(fmt.Sprintf("cts: compiling %q: %v", expr, err))
	}
	return e
}

// Line is one verse line of the source text
type Line struct {
	ID   string // Locus key, e.g. "01_010a"
	Book string // Book number as written in the source
	Line string // Line number as written in the source
	Text string // Whitespace-collapsed text without editorial notes
}

// ParseTEI extracts the verse lines of every book division in a TEI
// document. Editorial notes inside lines are dropped while the text that
// follows them is kept. Lines without an n attribute are skipped.
func ParseTEI(r io.Reader) ([]Line, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	var lines []Line
	for _, book := range xmlquery.QuerySelectorAll(doc, booksExpr) {
		bn := book.SelectAttr("n")

		for _, note := range xmlquery.QuerySelectorAll(book, notesExpr) {
			xmlquery.RemoveFromTree(note)
		}

		for _, l := range xmlquery.QuerySelectorAll(book, linesExpr) {
			ln := l.SelectAttr("n")
			if ln == "" {
				continue
			}

			id, err := locus.Key(bn, ln)
			if err != nil {
				return nil, fmt.Errorf("line %s.%s: %w", bn, ln, err)
			}

			lines = append(lines, Line{
				ID:   id,
				Book: bn,
				Line: ln,
				Text: collapseSpace(l.InnerText()),
			})
		}
	}

	return lines, nil
}

// LoadFile parses a TEI or CTS XML document from disk
func LoadFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ParseTEI(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
