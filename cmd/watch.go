package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/verdict/internal/config"
	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/ui"
	"github.com/papapumpkin/verdict/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a drop directory and rank every CSV that lands in it",
	Long: `Watch a directory for new or changed *.csv files and rank each one as
it appears, writing <name>.ranked.csv beside it. Weights and impacts
come from flags or config and apply to every dataset dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("weights", "w", "", "comma-separated criterion weights")
	watchCmd.Flags().StringP("impacts", "i", "", "comma-separated impact directions")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New()

	weightsStr := cfg.Weights
	impactsStr := cfg.Impacts
	if v, _ := cmd.Flags().GetString("weights"); v != "" {
		weightsStr = v
	}
	if v, _ := cmd.Flags().GetString("impacts"); v != "" {
		impactsStr = v
	}
	if weightsStr == "" || impactsStr == "" {
		return fmt.Errorf("watch mode needs --weights and --impacts (or config defaults)")
	}

	weights, err := dataset.ParseWeights(weightsStr)
	if err != nil {
		return err
	}
	impacts, err := dataset.ParseImpacts(impactsStr)
	if err != nil {
		return err
	}

	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a watchable directory", dir)
	}

	w, err := watch.New(dir)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx, cancel := signalContext(printer)
	defer cancel()

	printer.Watching(dir)
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			run := &rankRun{
				Dataset: ev.Path,
				Weights: weights,
				Impacts: impacts,
				Output:  defaultOutputPath(ev.Path),
			}
			if _, err := executeRun(run, printer); err != nil {
				// One bad drop must not stop the watch.
				printer.Error(fmt.Sprintf("%s: %v", ev.Path, err))
			}
		}
	}
}

// signalContext returns a context that is canceled on SIGINT or SIGTERM.
func signalContext(printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		printer.Info("\nshutting down...")
		cancel()
	}()
	return ctx, cancel
}
