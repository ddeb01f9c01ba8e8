package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/topsis"
)

func sampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Path:     "phones.csv",
		Criteria: []string{"storage", "camera", "price"},
		Names:    []string{"M1", "M2", "M3"},
		Matrix: [][]float64{
			{1, 7, 9},
			{2, 8, 8},
			{4, 9, 5},
		},
	}
}

func sampleResults() []topsis.Result {
	return []topsis.Result{
		{Score: 0.1, Rank: 3},
		{Score: 0.4, Rank: 2},
		{Score: 1.0, Rank: 1},
	}
}

func TestBuild_OrdersByRank(t *testing.T) {
	t.Parallel()

	rep, err := Build(sampleDataset(), sampleResults())
	if err != nil {
		t.Fatal(err)
	}

	wantNames := []string{"M3", "M2", "M1"}
	for i, want := range wantNames {
		if rep.Rows[i].Name != want {
			t.Errorf("Rows[%d].Name = %q, want %q", i, rep.Rows[i].Name, want)
		}
		if rep.Rows[i].Rank != i+1 {
			t.Errorf("Rows[%d].Rank = %d, want %d", i, rep.Rows[i].Rank, i+1)
		}
	}
	if rep.Best().Name != "M3" {
		t.Errorf("Best() = %q, want M3", rep.Best().Name)
	}
	// Original criterion values travel with their row.
	if rep.Rows[0].Values[2] != 5 {
		t.Errorf("Best row price = %f, want 5", rep.Rows[0].Values[2])
	}
}

func TestBuild_CountMismatch(t *testing.T) {
	t.Parallel()
	if _, err := Build(sampleDataset(), sampleResults()[:2]); err == nil {
		t.Error("expected error for result/row count mismatch")
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	rep, err := Build(sampleDataset(), sampleResults())
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := rep.WriteCSV(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	wantHeader := []string{"name", "storage", "camera", "price", "score", "rank"}
	for i, want := range wantHeader {
		if records[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], want)
		}
	}
	// Best row first: M3, score 1.000000, rank 1.
	if records[1][0] != "M3" || records[1][5] != "1" {
		t.Errorf("first data row = %v", records[1])
	}
	if records[1][4] != "1.000000" {
		t.Errorf("score cell = %q, want 1.000000", records[1][4])
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after WriteCSV")
	}
}

func TestWriteCSV_BadDir(t *testing.T) {
	t.Parallel()
	rep, err := Build(sampleDataset(), sampleResults())
	if err != nil {
		t.Fatal(err)
	}
	if err := rep.WriteCSV(filepath.Join(t.TempDir(), "missing", "out.csv")); err == nil {
		t.Error("expected error for nonexistent directory")
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	rep, err := Build(sampleDataset(), sampleResults())
	if err != nil {
		t.Fatal(err)
	}
	rep.Title = "phones"

	out := rep.RenderTable()
	for _, want := range []string{"phones", "rank", "storage", "M1", "M2", "M3", "1.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// Best row renders before the rest.
	if strings.Index(out, "M3") > strings.Index(out, "M1") {
		t.Error("table rows not in rank order")
	}
}

func TestScoreBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{0, "░░░░░░░░░░"},
		{1, "██████████"},
		{0.5, "█████░░░░░"},
		{-0.2, "░░░░░░░░░░"},
		{1.7, "██████████"},
	}
	for _, tc := range tests {
		if got := scoreBar(tc.score); got != tc.want {
			t.Errorf("scoreBar(%f) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
