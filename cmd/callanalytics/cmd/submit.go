package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"call-analytics-go/internal/config"
	"call-analytics-go/internal/dataset"
	"call-analytics-go/internal/logger"
)

// submitCmd starts one remote analytics job per recording
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Start an analytics job for every recording",
	Long: `Reads the recordings file and starts one call-analytics job per row.
Jobs the service rejects are logged and skipped; the run only fails when
the service itself is unreachable.`,
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cobraCmd *cobra.Command, args []string) error {
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

	started, err := p.SubmitJobs(ctx, recs)
	run.WithField("started", started).WithField("total", len(recs)).Info("submission finished")
	return err
}
