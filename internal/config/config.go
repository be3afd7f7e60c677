package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the pipeline and the speech-service client need
// at construction time. Values come from the environment (or a local .env
// file); nothing here is a process-wide mutable singleton.
type Config struct {
	// SpeechAPIURL is the base URL of the speech-analytics service.
	// Required for submit and results runs.
	SpeechAPIURL string `env:"SPEECH_API_URL"`

	// DataAccessRoleARN is passed through verbatim when starting jobs so
	// the service can read the recordings.
	DataAccessRoleARN string `env:"DATA_ACCESS_ROLE_ARN"`

	// RecordingsPath is the tabular input listing job_name and job_url.
	RecordingsPath string `env:"RECORDINGS_PATH" envDefault:"recordings.csv"`

	// Workers bounds parallel document retrieval.
	Workers int `env:"PIPELINE_WORKERS" envDefault:"4"`

	// HTTPTimeout applies to each request against the speech service.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"12s"`
}

const (
	defaultWorkers     = 4
	defaultHTTPTimeout = 12 * time.Second
)

// Load reads .env (when present), parses the environment, and applies
// guardrails.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// Sanitize applies guardrails to values loaded from env.
func (c *Config) Sanitize() {
	c.SpeechAPIURL = strings.TrimRight(strings.TrimSpace(c.SpeechAPIURL), "/")
	c.RecordingsPath = strings.TrimSpace(c.RecordingsPath)
	if c.RecordingsPath == "" {
		c.RecordingsPath = "recordings.csv"
	}
	if c.Workers < 1 {
		c.Workers = defaultWorkers
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
}

// RequireSpeechAPI reports a usable error when remote operations are about
// to run without a configured service URL.
func (c *Config) RequireSpeechAPI() error {
	if c.SpeechAPIURL == "" {
		return errors.New("SPEECH_API_URL not set")
	}
	return nil
}
