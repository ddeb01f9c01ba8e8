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

var initCmd = &cobra.Command{
	Use:   "init <data.csv>",
	Short: "Scaffold a verdict.toml manifest for a dataset",
	Long: `Read a dataset and write a starter verdict.toml next to it: unit
weights and benefit impacts for every criterion, ready to hand-edit.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringP("output", "o", "", "manifest path (default verdict.toml beside the dataset)")
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing manifest")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = filepath.Join(filepath.Dir(args[0]), "verdict.toml")
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}

	m := manifest.Scaffold(ds)
	if err := m.Write(path); err != nil {
		return err
	}

	printer.Info(fmt.Sprintf("wrote %s (%d criteria); edit weights and impacts, then run:", path, ds.Columns()))
	printer.Info(fmt.Sprintf("  verdict rank --manifest %s", path))
	return nil
}
