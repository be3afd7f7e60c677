package cmd

import (
	"github.com/spf13/cobra"

	"call-analytics-go/internal/config"
	"call-analytics-go/internal/logger"
	"call-analytics-go/internal/pipeline"
	"call-analytics-go/internal/transcription"
)

var (
	recordingsPath string
	outputFormat   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "callanalytics",
	Short: "Batch call-analytics over a speech service",
	Long: `callanalytics submits call recordings to a speech-analytics service and
flattens each finished job's nested analytics document into one tabular row:
transcript, summarization buckets, sentiment, talk timing and categories.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&recordingsPath, "recordings", "", "recordings file listing job_name and job_url (default from RECORDINGS_PATH)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table or json")
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	return outputFormat == "json"
}

// resolveRecordings prefers the flag over the environment value
func resolveRecordings(cfg config.Config) string {
	if recordingsPath != "" {
		return recordingsPath
	}
	return cfg.RecordingsPath
}

// buildPipeline wires the configured speech client into a pipeline
func buildPipeline(cfg config.Config, log *logger.Logger) (*pipeline.Pipeline, error) {
	if err := cfg.RequireSpeechAPI(); err != nil {
		return nil, err
	}
	client, err := transcription.NewClient(transcription.Options{
		BaseURL:           cfg.SpeechAPIURL,
		DataAccessRoleARN: cfg.DataAccessRoleARN,
		Timeout:           cfg.HTTPTimeout,
		Logger:            log,
	})
	if err != nil {
		return nil, err
	}
	return pipeline.New(pipeline.Options{
		Service: client,
		Workers: cfg.Workers,
		Logger:  log,
	})
}
