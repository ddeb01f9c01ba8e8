package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/manifest"
	"github.com/papapumpkin/verdict/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <data.csv | verdict.toml>",
	Short: "Check a dataset or manifest without ranking anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := ui.New()

		var ok bool
		if filepath.Ext(args[0]) == ".toml" {
			ok = validateManifest(args[0], printer)
		} else {
			ok = validateDataset(cmd, args[0], printer)
		}
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("weights", "w", "", "also check these weights against the dataset")
	validateCmd.Flags().StringP("impacts", "i", "", "also check these impacts against the dataset")

	rootCmd.AddCommand(validateCmd)
}

// validateDataset loads the CSV and optionally checks flag-supplied
// vectors against its column count, printing one line per check.
func validateDataset(cmd *cobra.Command, path string, printer *ui.Printer) bool {
	ok := true

	ds, err := dataset.Load(path)
	if err != nil {
		printer.Check(false, fmt.Sprintf("dataset: %v", err))
		return false
	}
	printer.Check(true, fmt.Sprintf("dataset %s: %d alternatives × %d criteria",
		path, len(ds.Matrix), ds.Columns()))

	if s, _ := cmd.Flags().GetString("weights"); s != "" {
		weights, err := dataset.ParseWeights(s)
		switch {
		case err != nil:
			printer.Check(false, fmt.Sprintf("weights: %v", err))
			ok = false
		case len(weights) != ds.Columns():
			printer.Check(false, fmt.Sprintf("weights: %d values for %d criteria",
				len(weights), ds.Columns()))
			ok = false
		default:
			printer.Check(true, fmt.Sprintf("weights: %d values", len(weights)))
		}
	}

	if s, _ := cmd.Flags().GetString("impacts"); s != "" {
		impacts, err := dataset.ParseImpacts(s)
		switch {
		case err != nil:
			printer.Check(false, fmt.Sprintf("impacts: %v", err))
			ok = false
		case len(impacts) != ds.Columns():
			printer.Check(false, fmt.Sprintf("impacts: %d values for %d criteria",
				len(impacts), ds.Columns()))
			ok = false
		default:
			printer.Check(true, fmt.Sprintf("impacts: %d values", len(impacts)))
		}
	}

	return ok
}

// validateManifest loads the manifest, validates it, and checks its
// vectors against the dataset it points at.
func validateManifest(path string, printer *ui.Printer) bool {
	m, err := manifest.Load(path)
	if err != nil {
		printer.Check(false, fmt.Sprintf("manifest: %v", err))
		return false
	}
	printer.Check(true, "manifest parses")

	if err := m.Validate(); err != nil {
		printer.Check(false, fmt.Sprintf("manifest: %v", err))
		return false
	}
	printer.Check(true, fmt.Sprintf("manifest valid: %d criteria", len(m.Criteria.Weights)))

	dsPath := resolveManifestPath(path, m.Run.Dataset)
	ds, err := dataset.Load(dsPath)
	if err != nil {
		printer.Check(false, fmt.Sprintf("dataset: %v", err))
		return false
	}
	printer.Check(true, fmt.Sprintf("dataset %s: %d alternatives × %d criteria",
		dsPath, len(ds.Matrix), ds.Columns()))

	impacts, err := m.Impacts()
	if err != nil {
		printer.Check(false, fmt.Sprintf("impacts: %v", err))
		return false
	}
	if err := ds.CheckVectors(m.Criteria.Weights, impacts); err != nil {
		printer.Check(false, err.Error())
		return false
	}
	printer.Check(true, "weights and impacts match the dataset")
	return true
}
