package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Table holds the named columns of a loaded data file.
type Table struct {
	Names   []string
	Columns [][]float64
}

// LoadCSV loads a CSV file with a header row and one float column per
// variable into a Table. Rows are kept in file order; empty trailing lines
// are skipped.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("empty header in %s", path)
	}
	k := len(header)

	columns := make([][]float64, k)
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+2, err) // +2 for header + 1-based
		}

		if len(record) == 1 && record[0] == "" {
			continue
		}
		if len(record) != k {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", row+2, len(record), k)
		}

		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parse row %d column %q: %w", row+2, header[j], err)
			}
			columns[j] = append(columns[j], v)
		}
		row++
	}

	if row == 0 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	names := make([]string, k)
	copy(names, header)
	return &Table{Names: names, Columns: columns}, nil
}

// Series returns the named column as a Series.
func (t *Table) Series(name string) (*Series, error) {
	for i, n := range t.Names {
		if n == name {
			return New(name, t.Columns[i]), nil
		}
	}
	return nil, fmt.Errorf("no column %q (have %v)", name, t.Names)
}
