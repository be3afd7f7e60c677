package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"call-analytics-go/internal/aggregator"
	"call-analytics-go/internal/config"
	"call-analytics-go/internal/dataset"
	"call-analytics-go/internal/logger"
	"call-analytics-go/internal/report"
)

var (
	csvOut  string
	xlsxOut string
)

// resultsCmd collects finished jobs and flattens them into the result table
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Fetch finished jobs and flatten them into one row per call",
	Long: `Fetches every job's analytics document and flattens it into the fixed
result schema. Jobs that are unfinished or failed remotely still produce a
row with every analytics column null.`,
	RunE: runResults,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.Flags().StringVar(&csvOut, "out", "", "write the full result table to a CSV file")
	resultsCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write the full result table to an XLSX workbook")
}

func runResults(cobraCmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New()
	run := log.WithRun()

	recs, err := dataset.LoadRecordings(resolveRecordings(cfg))
	if err != nil {
		return err
	}
	run.WithField("records", len(recs)).Info("loaded recordings")

	p, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	rows, err := p.Run(ctx, recs)
	if err != nil {
		return err
	}
	stats := aggregator.Collect(rows)

	if IsJSONOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Rows  any `json:"rows"`
			Stats any `json:"stats"`
		}{rows, stats}); err != nil {
			return err
		}
	} else {
		if err := report.RenderTable(os.Stdout, rows); err != nil {
			return err
		}
		fmt.Printf("\nTotal calls: %d (empty transcripts: %d)\n", stats.TotalCalls, stats.EmptyTranscripts)
	}

	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", csvOut, err)
		}
		if err := report.WriteCSV(f, rows); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		run.WithField("path", csvOut).Info("wrote csv results")
	}
	if xlsxOut != "" {
		if err := report.WriteXLSX(xlsxOut, rows); err != nil {
			return err
		}
		run.WithField("path", xlsxOut).Info("wrote xlsx results")
	}
	return nil
}
