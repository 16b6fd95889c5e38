// Package tabular turns delimited text payloads into ordered rows keyed by
// column name.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyPayload   = fmt.Errorf("empty payload")
	ErrMalformed      = fmt.Errorf("malformed tabular payload")
	ErrMissingColumn  = fmt.Errorf("missing column")
	ErrNoDateColumns  = fmt.Errorf("no date columns")
	ErrDuplicateTitle = fmt.Errorf("duplicate column title")
)

const byteOrderMark = "\ufeff"

// Row - one record keyed by column title
type Row map[string]string

// Table - a parsed payload, rows in source order
type Table struct {
	Headers []string
	Rows    []Row
}

// Parse reads a comma separated payload whose first record holds the
// column titles. Records shorter than the header get empty cells, extra
// trailing cells are dropped.
func Parse(payload []byte) (*Table, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, ErrEmptyPayload
	}

	r := csv.NewReader(bytes.NewReader(payload))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	seen := make(map[string]bool, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, byteOrderMark))
		if seen[h] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTitle, h)
		}
		seen[h] = true
		headers[i] = h
	}

	t := &Table{Headers: headers}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
		}
		if isBlank(record) {
			continue
		}

		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Column returns the first title of names present in the header
func (t *Table) Column(names ...string) (string, bool) {
	for _, n := range names {
		for _, h := range t.Headers {
			if h == n {
				return h, true
			}
		}
	}
	return "", false
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
