package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/verdict/internal/config"
	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/topsis"
	"github.com/papapumpkin/verdict/internal/tui"
	"github.com/papapumpkin/verdict/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <data.csv>",
	Short: "Tune weights interactively with a live ranking",
	Long: `Load a dataset and adjust criterion weights and impact directions
interactively, watching the ranking re-sort as you type. On exit the
final vectors are printed as a ready-to-run rank command.`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringP("weights", "w", "", "starting weights (default all 1)")
	tuiCmd.Flags().StringP("impacts", "i", "", "starting impacts (default all benefit)")

	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New()

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	weights, impacts, err := startingVectors(cmd, &cfg, ds)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.New(ds, weights, impacts))
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	model, ok := finalModel.(tui.Model)
	if !ok {
		return nil
	}

	// Hand the tuned vectors back as a reproducible command line.
	printer.Info("tuned vectors:")
	printer.Info(fmt.Sprintf("  verdict rank %s --weights %s --impacts %s",
		args[0], formatWeights(model.Weights()), dataset.FormatImpacts(model.Impacts())))
	return nil
}

// startingVectors resolves initial weights/impacts from flags and
// config, defaulting to unit weights and all-benefit.
func startingVectors(cmd *cobra.Command, cfg *config.Config, ds *dataset.Dataset) ([]float64, []topsis.Impact, error) {
	weightsStr := cfg.Weights
	impactsStr := cfg.Impacts
	if v, _ := cmd.Flags().GetString("weights"); v != "" {
		weightsStr = v
	}
	if v, _ := cmd.Flags().GetString("impacts"); v != "" {
		impactsStr = v
	}

	weights := make([]float64, ds.Columns())
	for j := range weights {
		weights[j] = 1
	}
	impacts := make([]topsis.Impact, ds.Columns())

	if weightsStr != "" {
		parsed, err := dataset.ParseWeights(weightsStr)
		if err != nil {
			return nil, nil, err
		}
		weights = parsed
	}
	if impactsStr != "" {
		parsed, err := dataset.ParseImpacts(impactsStr)
		if err != nil {
			return nil, nil, err
		}
		impacts = parsed
	}

	if err := ds.CheckVectors(weights, impacts); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ds.Path, err)
	}
	return weights, impacts, nil
}

// formatWeights renders a weight vector back to flag syntax.
func formatWeights(weights []float64) string {
	out := ""
	for i, w := range weights {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%g", w)
	}
	return out
}
