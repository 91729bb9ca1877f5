// Package tabular reads and writes the flat delimited tables exchanged
// between pipeline stages and source exports.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Table load errors.
var (
	ErrNoHeader     = errors.New("empty file: no header row")
	ErrFileNotFound = errors.New("no matching file in directory")
)

// Row maps a trimmed header name to the cell value for one record.
type Row map[string]string

// Get returns the value for col, falling back to a case-insensitive header
// match when no exact header exists. Missing columns yield "".
func (r Row) Get(col string) string {
	if v, ok := r[col]; ok {
		return v
	}

	for k, v := range r {
		if strings.EqualFold(k, col) {
			return v
		}
	}

	return ""
}

// Table holds a loaded delimited file: the header row in file order and one
// Row per data record.
type Table struct {
	Headers []string
	Rows    []Row
	Ragged  int // data rows padded or truncated to the header width
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Rows)
}

// LoadTable reads a CSV file into a Table. Header names are trimmed (BOM
// included); ragged rows are padded or truncated to the header width rather
// than rejected, and counted in Ragged.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrNoHeader, path)
		}

		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}

	table := &Table{Headers: headers}

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+2, readErr)
		}

		if len(record) != len(headers) {
			table.Ragged++

			if len(record) < len(headers) {
				padded := make([]string, len(headers))
				copy(padded, record)
				record = padded
			} else {
				record = record[:len(headers)]
			}
		}

		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = record[i]
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// FindFile locates a file in dir by case-insensitive name match, trying each
// candidate in order and returning the first hit. It returns ErrFileNotFound
// when no candidate matches or the directory does not exist.
func FindFile(dir string, candidates ...string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, dir)
	}

	byLower := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			byLower[strings.ToLower(e.Name())] = e.Name()
		}
	}

	for _, c := range candidates {
		if name, ok := byLower[strings.ToLower(c)]; ok {
			return filepath.Join(dir, name), nil
		}
	}

	return "", fmt.Errorf("%w: %s (tried %s)", ErrFileNotFound, dir, strings.Join(candidates, ", "))
}
