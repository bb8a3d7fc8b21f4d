package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Record is a row with named columns.
type Record interface {
	Names() []string
	Get(name string) (any, bool)
}

// Create renders records as CSV. The header is the union of column names in
// first-seen order; missing and nil values are written as empty cells.
func Create[T Record](records []T) ([]byte, error) {
	var header []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, name := range r.Names() {
			if !seen[name] {
				seen[name] = true
				header = append(header, name)
			}
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, r := range records {
		line := make([]string, len(header))
		for i, name := range header {
			if v, ok := r.Get(name); ok && v != nil {
				line[i] = fmt.Sprint(v)
			}
		}
		if err := w.Write(line); err != nil {
			return nil, fmt.Errorf("error writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
