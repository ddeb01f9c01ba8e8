// Package manifest loads and writes verdict.toml run manifests: a
// reproducible description of one ranking run (dataset path, criterion
// weights and impacts, output destination, optional mail recipients).
package manifest

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/topsis"
)

var (
	// ErrNoManifest indicates the manifest file does not exist.
	ErrNoManifest = errors.New("manifest not found")

	// ErrMissingDataset indicates the manifest has no dataset path.
	ErrMissingDataset = errors.New("manifest missing dataset path")

	// ErrMissingVector indicates weights or impacts are absent.
	ErrMissingVector = errors.New("manifest missing weights or impacts")

	// ErrVectorLength indicates weights and impacts differ in length.
	ErrVectorLength = errors.New("weights and impacts differ in length")
)

// Run identifies the dataset and output of a ranking run.
type Run struct {
	Title   string `toml:"title,omitempty"`
	Dataset string `toml:"dataset"`
	Output  string `toml:"output,omitempty"`
}

// Criteria holds the weight and impact vectors. Impacts use the same
// token grammar as the --impacts flag: +, -, benefit, cost.
type Criteria struct {
	Weights []float64 `toml:"weights"`
	Impacts []string  `toml:"impacts"`
}

// Notify lists who receives the result by mail. Empty means no mail.
type Notify struct {
	Recipients []string `toml:"recipients,omitempty"`
}

// Manifest is a parsed verdict.toml.
type Manifest struct {
	Run      Run      `toml:"run"`
	Criteria Criteria `toml:"criteria"`
	Notify   Notify   `toml:"notify,omitempty"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoManifest, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks the manifest for internal consistency: a dataset path,
// both vectors present and of equal length, every weight and impact
// token well formed. Consistency against the dataset's column count is
// checked at load time by the caller, not here.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Run.Dataset) == "" {
		return ErrMissingDataset
	}
	if len(m.Criteria.Weights) == 0 || len(m.Criteria.Impacts) == 0 {
		return ErrMissingVector
	}
	if len(m.Criteria.Weights) != len(m.Criteria.Impacts) {
		return fmt.Errorf("%w: %d weights, %d impacts",
			ErrVectorLength, len(m.Criteria.Weights), len(m.Criteria.Impacts))
	}
	for i, w := range m.Criteria.Weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %v at position %d", dataset.ErrBadWeight, w, i+1)
		}
	}
	if _, err := m.Impacts(); err != nil {
		return err
	}
	return nil
}

// Impacts converts the manifest's impact tokens to typed directions.
func (m *Manifest) Impacts() ([]topsis.Impact, error) {
	return dataset.ParseImpacts(strings.Join(m.Criteria.Impacts, ","))
}

// OutputPath returns the configured output path, defaulting to the
// dataset path with a .ranked.csv suffix.
func (m *Manifest) OutputPath() string {
	if m.Run.Output != "" {
		return m.Run.Output
	}
	base := strings.TrimSuffix(m.Run.Dataset, filepath.Ext(m.Run.Dataset))
	return base + ".ranked.csv"
}

// Write marshals the manifest to path. The file is written to a
// temporary sibling first and renamed into place on success.
func (m *Manifest) Write(path string) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming manifest into place: %w", err)
	}
	return nil
}

// Scaffold builds a starter manifest for a loaded dataset: unit weights
// and benefit impacts for every criterion, ready to hand-edit.
func Scaffold(ds *dataset.Dataset) *Manifest {
	m := &Manifest{}
	m.Run.Dataset = ds.Path
	m.Criteria.Weights = make([]float64, ds.Columns())
	m.Criteria.Impacts = make([]string, ds.Columns())
	for j := range m.Criteria.Weights {
		m.Criteria.Weights[j] = 1
		m.Criteria.Impacts[j] = "+"
	}
	return m
}
