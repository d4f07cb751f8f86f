// Package table assembles per-word sound profiles into a wide table and
// writes it as CSV or into a SQLite database.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"codeberg.org/snonux/quintus/internal/phonology"
)

// LeadColumns precede the sound columns in every CSV export
var LeadColumns = []string{"id", "book", "line", "label", "word"}

// Row is one word of the text with its line metadata and sound counts
type Row struct {
	ID     string // Locus key of the line
	Book   string
	Line   string
	Label  string
	Word   string // Empty for a line without any words
	Sounds phonology.Profile
}

// Table holds rows in document order
type Table struct {
	rows []Row
}

// New creates a table from rows, keeping their order
func New(rows []Row) *Table {
	return &Table{rows: rows}
}

// Rows returns the rows in document order
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Lines returns the number of distinct line IDs
func (t *Table) Lines() int {
	seen := make(map[string]struct{}, len(t.rows))
	for _, r := range t.rows {
		seen[r.ID] = struct{}{}
	}
	return len(seen)
}

// Columns returns the union of all sound keys sorted by code point
func (t *Table) Columns() []string {
	set := make(map[string]struct{})
	for _, r := range t.rows {
		for k := range r.Sounds {
			set[k] = struct{}{}
		}
	}

	cols := make([]string, 0, len(set))
	for k := range set {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// WriteCSV writes the header and one record per row. Sounds a word lacks
// are written as 0.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	cols := t.Columns()
	header := append(append([]string(nil), LeadColumns...), cols...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	record := make([]string, len(header))
	for _, r := range t.rows {
		record[0] = r.ID
		record[1] = r.Book
		record[2] = r.Line
		record[3] = r.Label
		record[4] = r.Word
		for i, c := range cols {
			record[len(LeadColumns)+i] = strconv.Itoa(r.Sounds[c])
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %s: %w", r.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the table to path, creating parent directories
func (t *Table) WriteCSVFile(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}

	if err := t.WriteCSV(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
