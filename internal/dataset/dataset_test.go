package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeCSV writes content to a temp file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ParsesMatrix(t *testing.T) {
	t.Parallel()
	path := writeCSV(t, "model,storage,camera,price,weight\nM1,1,7,9,9\nM2,2,8,8,7\nM3,3,5,6,6\nM4,4,9,5,5\n")

	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if ds.Columns() != 4 {
		t.Errorf("Columns() = %d, want 4", ds.Columns())
	}
	wantCriteria := []string{"storage", "camera", "price", "weight"}
	for i, want := range wantCriteria {
		if ds.Criteria[i] != want {
			t.Errorf("Criteria[%d] = %q, want %q", i, ds.Criteria[i], want)
		}
	}
	wantNames := []string{"M1", "M2", "M3", "M4"}
	for i, want := range wantNames {
		if ds.Names[i] != want {
			t.Errorf("Names[%d] = %q, want %q", i, ds.Names[i], want)
		}
	}
	if ds.Matrix[1][2] != 8 {
		t.Errorf("Matrix[1][2] = %f, want 8", ds.Matrix[1][2])
	}
	if ds.Matrix[3][0] != 4 {
		t.Errorf("Matrix[3][0] = %f, want 4", ds.Matrix[3][0])
	}
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	t.Parallel()
	path := writeCSV(t, "name,a,b\n alpha , 1.5 , 2 \n")

	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Names[0] != "alpha" {
		t.Errorf("Names[0] = %q, want %q", ds.Names[0], "alpha")
	}
	if ds.Matrix[0][0] != 1.5 {
		t.Errorf("Matrix[0][0] = %f, want 1.5", ds.Matrix[0][0])
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"header only", "name,a,b\n", ErrEmptyDataset},
		{"empty file", "", ErrEmptyDataset},
		{"one column", "name\nalpha\n", ErrTooFewColumns},
		{"ragged row", "name,a,b\nalpha,1,2\nbeta,3\n", ErrRaggedRow},
		{"text cell", "name,a,b\nalpha,1,high\n", ErrNotNumeric},
		{"nan cell", "name,a,b\nalpha,NaN,2\n", ErrNotNumeric},
		{"inf cell", "name,a,b\nalpha,+Inf,2\n", ErrNotNumeric},
		{"blank cell", "name,a,b\nalpha,,2\n", ErrNotNumeric},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ds, err := Load(writeCSV(t, tc.content))
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
			if ds != nil {
				t.Errorf("got dataset %+v on malformed input", ds)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCheckVectors(t *testing.T) {
	t.Parallel()
	path := writeCSV(t, "name,a,b,c\nalpha,1,2,3\n")
	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	weights, err := ParseWeights("1,2,3")
	if err != nil {
		t.Fatal(err)
	}
	impacts, err := ParseImpacts("+,-,+")
	if err != nil {
		t.Fatal(err)
	}
	if err := ds.CheckVectors(weights, impacts); err != nil {
		t.Errorf("matching vectors rejected: %v", err)
	}

	if err := ds.CheckVectors(weights[:2], impacts); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short weights: err = %v, want ErrLengthMismatch", err)
	}
	if err := ds.CheckVectors(weights, impacts[:1]); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short impacts: err = %v, want ErrLengthMismatch", err)
	}
}
