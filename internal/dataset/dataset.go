// Package dataset loads decision matrices from CSV files and parses the
// textual weight/impact encodings into the strongly typed vectors the
// topsis engine consumes. All parsing is strict: anything malformed is a
// typed error before the engine is ever invoked.
package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/papapumpkin/verdict/internal/topsis"
)

// Dataset is a parsed decision matrix. The first CSV column names each
// alternative; the remaining columns are numeric criterion scores. Row i
// of Matrix belongs to Names[i]; column j to Criteria[j].
type Dataset struct {
	Path     string
	Criteria []string
	Names    []string
	Matrix   [][]float64
}

// Columns returns the number of criteria.
func (d *Dataset) Columns() int {
	return len(d.Criteria)
}

// Load reads a CSV decision matrix from path. The first row is the
// header; the first column holds alternative names and every other cell
// must be a finite number.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	// Field-count consistency is checked below so ragged rows surface as
	// ErrRaggedRow with a row number rather than a csv.ParseError.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: %w", path, ErrTooFewColumns)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}

	ds := &Dataset{
		Path:     path,
		Criteria: header[1:],
		Names:    make([]string, 0, len(records)-1),
		Matrix:   make([][]float64, 0, len(records)-1),
	}

	for n, record := range records[1:] {
		rowNum := n + 2 // 1-based, counting the header
		if len(record) != len(header) {
			return nil, fmt.Errorf("%s row %d: %w: got %d, expected %d",
				path, rowNum, ErrRaggedRow, len(record), len(header))
		}

		row := make([]float64, len(record)-1)
		for j, cell := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s row %d column %q: %w: %q",
					path, rowNum, header[j+1], ErrNotNumeric, cell)
			}
			row[j] = v
		}
		ds.Names = append(ds.Names, strings.TrimSpace(record[0]))
		ds.Matrix = append(ds.Matrix, row)
	}

	return ds, nil
}

// CheckVectors verifies that parsed weights and impacts match the
// dataset's criterion count. The engine re-validates defensively; this
// check exists so the caller can report the mismatch with file context.
func (d *Dataset) CheckVectors(weights []float64, impacts []topsis.Impact) error {
	if len(weights) != d.Columns() {
		return fmt.Errorf("%w: %d weights for %d criteria",
			ErrLengthMismatch, len(weights), d.Columns())
	}
	if len(impacts) != d.Columns() {
		return fmt.Errorf("%w: %d impacts for %d criteria",
			ErrLengthMismatch, len(impacts), d.Columns())
	}
	return nil
}
