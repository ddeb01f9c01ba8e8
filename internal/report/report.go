// Package report merges engine results back into the original records
// and delivers them: an annotated CSV on disk and a styled table for the
// terminal.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/topsis"
)

// Row is one ranked alternative with its original criterion values.
type Row struct {
	Name   string
	Values []float64
	Score  float64
	Rank   int
}

// Report is a complete ranking outcome, rows ordered best-first.
type Report struct {
	Title    string
	Criteria []string
	Rows     []Row
}

// Build pairs each dataset row with its engine result and orders the
// report by rank. Results must be positionally aligned with the dataset,
// which is the engine's output contract.
func Build(ds *dataset.Dataset, results []topsis.Result) (*Report, error) {
	if len(results) != len(ds.Matrix) {
		return nil, fmt.Errorf("report: %d results for %d alternatives",
			len(results), len(ds.Matrix))
	}

	rep := &Report{
		Criteria: ds.Criteria,
		Rows:     make([]Row, len(results)),
	}
	for i, res := range results {
		rep.Rows[i] = Row{
			Name:   ds.Names[i],
			Values: ds.Matrix[i],
			Score:  res.Score,
			Rank:   res.Rank,
		}
	}
	sort.Slice(rep.Rows, func(a, b int) bool {
		return rep.Rows[a].Rank < rep.Rows[b].Rank
	})
	return rep, nil
}

// Best returns the rank-1 row.
func (r *Report) Best() Row {
	return r.Rows[0]
}

// WriteCSV writes the report as CSV: the original columns plus score and
// rank, rows in rank order. The file lands via a temporary sibling and an
// atomic rename, so a crashed write never leaves a half-written report.
func (r *Report) WriteCSV(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	success := false
	defer func() {
		if !success {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := csv.NewWriter(f)
	header := append(append([]string{"name"}, r.Criteria...), "score", "rank")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, row := range r.Rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Name)
		for _, v := range row.Values {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		record = append(record,
			strconv.FormatFloat(row.Score, 'f', 6, 64),
			strconv.Itoa(row.Rank))
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing report row %q: %w", row.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming report into place: %w", err)
	}
	success = true
	return nil
}
