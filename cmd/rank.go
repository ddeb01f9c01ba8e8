package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/verdict/internal/config"
	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/mail"
	"github.com/papapumpkin/verdict/internal/manifest"
	"github.com/papapumpkin/verdict/internal/report"
	"github.com/papapumpkin/verdict/internal/topsis"
	"github.com/papapumpkin/verdict/internal/ui"
)

var rankCmd = &cobra.Command{
	Use:   "rank [data.csv]",
	Short: "Rank a decision matrix and write the result table",
	Long: `Rank the alternatives in a CSV decision matrix. The first column names
each alternative, the first row names the criteria, and every other cell
is a numeric score. Weights and impacts come from flags, config, or a
verdict.toml manifest (--manifest).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringP("weights", "w", "", "comma-separated criterion weights, e.g. 1,2,0.5")
	rankCmd.Flags().StringP("impacts", "i", "", "comma-separated impact directions, e.g. +,-,+")
	rankCmd.Flags().StringP("output", "o", "", "result CSV path (default <data>.ranked.csv)")
	rankCmd.Flags().StringSlice("email", nil, "mail the result to these recipients")
	rankCmd.Flags().StringP("manifest", "m", "", "read run settings from a verdict.toml")
	rankCmd.Flags().Bool("no-table", false, "suppress the terminal result table")

	rootCmd.AddCommand(rankCmd)
}

// rankRun carries one fully resolved ranking request.
type rankRun struct {
	Title      string
	Dataset    string
	Weights    []float64
	Impacts    []topsis.Impact
	Output     string
	Recipients []string
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New()

	run, err := resolveRankRun(cmd, args, &cfg)
	if err != nil {
		return err
	}

	rep, err := executeRun(run, printer)
	if err != nil {
		return err
	}

	if noTable, _ := cmd.Flags().GetBool("no-table"); !noTable {
		fmt.Fprintln(os.Stdout, rep.RenderTable())
	}

	if len(run.Recipients) > 0 {
		sender := &mail.SMTPSender{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		}
		if err := deliverReport(rep, run, sender, cfg.SMTP.From); err != nil {
			// The report on disk is the primary artifact; a failed send
			// does not undo the run.
			printer.Error(fmt.Sprintf("result written but not mailed: %v", err))
			return err
		}
		printer.MailSent(len(run.Recipients))
	}
	return nil
}

// resolveRankRun merges manifest, config, and flag inputs into a single
// request. Flags beat the manifest; the manifest beats config defaults.
func resolveRankRun(cmd *cobra.Command, args []string, cfg *config.Config) (*rankRun, error) {
	run := &rankRun{}

	weightsStr := cfg.Weights
	impactsStr := cfg.Impacts

	if manifestPath, _ := cmd.Flags().GetString("manifest"); manifestPath != "" {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, err
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("invalid manifest %s: %w", manifestPath, err)
		}
		impacts, err := m.Impacts()
		if err != nil {
			return nil, err
		}
		run.Title = m.Run.Title
		run.Dataset = resolveManifestPath(manifestPath, m.Run.Dataset)
		run.Weights = m.Criteria.Weights
		run.Impacts = impacts
		run.Output = resolveManifestPath(manifestPath, m.OutputPath())
		run.Recipients = m.Notify.Recipients
		weightsStr, impactsStr = "", ""
	}

	if len(args) == 1 {
		run.Dataset = args[0]
	}
	if run.Dataset == "" {
		return nil, fmt.Errorf("no dataset: pass a CSV path or --manifest")
	}

	if v, _ := cmd.Flags().GetString("weights"); v != "" {
		weightsStr = v
	}
	if v, _ := cmd.Flags().GetString("impacts"); v != "" {
		impactsStr = v
	}
	if weightsStr != "" {
		weights, err := dataset.ParseWeights(weightsStr)
		if err != nil {
			return nil, err
		}
		run.Weights = weights
	}
	if impactsStr != "" {
		impacts, err := dataset.ParseImpacts(impactsStr)
		if err != nil {
			return nil, err
		}
		run.Impacts = impacts
	}
	if run.Weights == nil || run.Impacts == nil {
		return nil, fmt.Errorf("both --weights and --impacts are required (or use --manifest)")
	}

	if v, _ := cmd.Flags().GetString("output"); v != "" {
		run.Output = v
	}
	if run.Output == "" {
		run.Output = defaultOutputPath(run.Dataset)
	}
	if recipients, _ := cmd.Flags().GetStringSlice("email"); len(recipients) > 0 {
		run.Recipients = recipients
	}
	if len(run.Recipients) > 0 && cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("mail requested but smtp.host is not configured")
	}

	if run.Title == "" {
		run.Title = strings.TrimSuffix(filepath.Base(run.Dataset), filepath.Ext(run.Dataset))
	}
	return run, nil
}

// executeRun loads, ranks, and writes one request, returning the report.
func executeRun(run *rankRun, printer *ui.Printer) (*report.Report, error) {
	ds, err := dataset.Load(run.Dataset)
	if err != nil {
		return nil, err
	}
	if err := ds.CheckVectors(run.Weights, run.Impacts); err != nil {
		return nil, fmt.Errorf("%s: %w", run.Dataset, err)
	}

	printer.RunHeader(run.Dataset, len(ds.Matrix), ds.Columns())

	results, err := topsis.Compute(ds.Matrix, run.Weights, run.Impacts)
	if err != nil {
		return nil, err
	}

	rep, err := report.Build(ds, results)
	if err != nil {
		return nil, err
	}
	rep.Title = run.Title

	if err := rep.WriteCSV(run.Output); err != nil {
		return nil, err
	}
	best := rep.Best()
	printer.RunDone(run.Output, best.Name, best.Score)
	return rep, nil
}

// deliverReport mails the written result CSV in a single attempt.
func deliverReport(rep *report.Report, run *rankRun, sender mail.Sender, from string) error {
	csvData, err := os.ReadFile(run.Output)
	if err != nil {
		return fmt.Errorf("rereading report for mail: %w", err)
	}
	msg, err := mail.Compose(rep, csvData, from, run.Recipients)
	if err != nil {
		return err
	}
	return sender.Send(msg)
}

// defaultOutputPath derives <data>.ranked.csv from the dataset path.
func defaultOutputPath(datasetPath string) string {
	base := strings.TrimSuffix(datasetPath, filepath.Ext(datasetPath))
	return base + ".ranked.csv"
}

// resolveManifestPath resolves a manifest-relative path against the
// manifest's own directory, leaving absolute paths untouched.
func resolveManifestPath(manifestPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(manifestPath), p)
}
