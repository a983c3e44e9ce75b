package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Table holds named numeric columns of equal length, loaded from a CSV file
// with a header row. Column order follows the header.
type Table struct {
	names []string
	cols  map[string][]float64
	n     int
}

// LoadCSV reads path as a headered CSV of numeric values. Every required
// column must be present; all rows must have the same field count (the csv
// reader enforces this) and every cell must parse as float64.
func LoadCSV(path string, required ...string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("read %s: no data rows", path)
	}

	header := records[0]
	t := &Table{cols: make(map[string][]float64, len(header)), n: len(records) - 1}
	for _, h := range header {
		name := strings.TrimSpace(h)
		t.names = append(t.names, name)
		t.cols[name] = make([]float64, 0, t.n)
	}
	for _, want := range required {
		if _, ok := t.cols[want]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, want)
		}
	}
	for i, rec := range records[1:] {
		for j, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %q: %w", path, i+2, header[j], err)
			}
			name := t.names[j]
			t.cols[name] = append(t.cols[name], v)
		}
	}
	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return t.n }

// Has reports whether the table contains a column.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the values of a named column. The returned slice is the
// table's backing storage; callers must not mutate it.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("missing column %q", name)
	}
	return col, nil
}

// Columns returns the header names in file order.
func (t *Table) Columns() []string { return append([]string(nil), t.names...) }

// SortBy reorders all rows by ascending values of the named column.
// Result CSVs are usually written in ascending size order already, but the
// fits and line plots require it, so it is enforced rather than assumed.
func (t *Table) SortBy(name string) error {
	key, ok := t.cols[name]
	if !ok {
		return fmt.Errorf("missing column %q", name)
	}
	idx := make([]int, t.n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return key[idx[a]] < key[idx[b]] })
	for _, col := range t.cols {
		tmp := make([]float64, t.n)
		for i, j := range idx {
			tmp[i] = col[j]
		}
		copy(col, tmp)
	}
	return nil
}
