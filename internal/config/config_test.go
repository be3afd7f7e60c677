package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SPEECH_API_URL", "DATA_ACCESS_ROLE_ARN", "RECORDINGS_PATH", "PIPELINE_WORKERS", "HTTP_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetAll(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.SpeechAPIURL)
	assert.Equal(t, "recordings.csv", cfg.RecordingsPath)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 12*time.Second, cfg.HTTPTimeout)
}

func TestLoadReadsEnvironment(t *testing.T) {
	unsetAll(t)
	t.Setenv("SPEECH_API_URL", "http://speech.local/")
	t.Setenv("DATA_ACCESS_ROLE_ARN", "arn:aws:iam::123456789012:role/transcribe-access")
	t.Setenv("RECORDINGS_PATH", "calls.csv")
	t.Setenv("PIPELINE_WORKERS", "8")
	t.Setenv("HTTP_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://speech.local", cfg.SpeechAPIURL, "trailing slash is trimmed")
	assert.Equal(t, "arn:aws:iam::123456789012:role/transcribe-access", cfg.DataAccessRoleARN)
	assert.Equal(t, "calls.csv", cfg.RecordingsPath)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := Config{
		SpeechAPIURL:   "  http://speech.local// ",
		RecordingsPath: "  ",
		Workers:        -3,
		HTTPTimeout:    0,
	}
	cfg.Sanitize()

	assert.Equal(t, "http://speech.local", cfg.SpeechAPIURL)
	assert.Equal(t, "recordings.csv", cfg.RecordingsPath)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 12*time.Second, cfg.HTTPTimeout)
}

func TestRequireSpeechAPI(t *testing.T) {
	cfg := Config{}
	require.Error(t, cfg.RequireSpeechAPI())

	cfg.SpeechAPIURL = "http://speech.local"
	require.NoError(t, cfg.RequireSpeechAPI())
}
