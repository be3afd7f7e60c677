package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"call-analytics-go/internal/logger"
	"call-analytics-go/internal/types"
)

// ErrUnavailable marks transport-level failures that survived every retry
// attempt. Callers use errors.Is to tell a down service apart from one bad
// job.
var ErrUnavailable = errors.New("speech service unavailable")

// maxAttempts bounds every remote call, submission and retrieval alike.
const maxAttempts = 5

const defaultTimeout = 12 * time.Second

// ChannelDefinition assigns a participant role to one audio channel.
type ChannelDefinition struct {
	ChannelID       int                   `json:"ChannelId"`
	ParticipantRole types.ParticipantRole `json:"ParticipantRole"`
}

// callChannels is the fixed two-channel assignment: channel 0 carries the
// customer, channel 1 the agent.
var callChannels = []ChannelDefinition{
	{ChannelID: 0, ParticipantRole: types.RoleCustomer},
	{ChannelID: 1, ParticipantRole: types.RoleAgent},
}

type startJobRequest struct {
	CallAnalyticsJobName string              `json:"CallAnalyticsJobName"`
	Media                mediaRef            `json:"Media"`
	DataAccessRoleArn    string              `json:"DataAccessRoleArn,omitempty"`
	ChannelDefinitions   []ChannelDefinition `json:"ChannelDefinitions"`
}

type mediaRef struct {
	MediaFileURI string `json:"MediaFileUri"`
}

type jobEnvelope struct {
	CallAnalyticsJob struct {
		CallAnalyticsJobName   string `json:"CallAnalyticsJobName"`
		CallAnalyticsJobStatus string `json:"CallAnalyticsJobStatus"`
		Transcript             struct {
			TranscriptFileURI string `json:"TranscriptFileUri"`
		} `json:"Transcript"`
		FailureReason string `json:"FailureReason,omitempty"`
	} `json:"CallAnalyticsJob"`
}

// Job is the client-side view of one analytics job.
type Job struct {
	Name          string
	Status        types.JobStatus
	TranscriptURI string
	FailureReason string
}

// Options configures a Client. BaseURL is required; the rest defaults.
type Options struct {
	BaseURL           string
	DataAccessRoleARN string
	Timeout           time.Duration
	Logger            *logger.Logger
}

// Client talks to the speech-analytics service over HTTP. All state is set
// at construction time.
type Client struct {
	baseURL string
	roleARN string
	http    *http.Client
	log     *logger.Logger
}

func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("transcription: base url is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logger.New()
	}
	return &Client{
		baseURL: base,
		roleARN: opts.DataAccessRoleARN,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// StartJob registers one call-analytics job for a recording, with the
// fixed channel definitions and the configured data-access role.
func (c *Client) StartJob(ctx context.Context, jobName, mediaURI string) error {
	payload := startJobRequest{
		CallAnalyticsJobName: jobName,
		Media:                mediaRef{MediaFileURI: mediaURI},
		DataAccessRoleArn:    c.roleARN,
		ChannelDefinitions:   callChannels,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode start request: %w", err)
	}
	c.log.WithJob(jobName).WithField("media_uri", mediaURI).Debug("starting call analytics job")
	var resp jobEnvelope
	if err := c.doJSON(ctx, http.MethodPost, c.jobsURL(), body, &resp); err != nil {
		return fmt.Errorf("start job %q: %w", jobName, err)
	}
	return nil
}

// GetJob reads the current state of one analytics job.
func (c *Client) GetJob(ctx context.Context, jobName string) (Job, error) {
	var resp jobEnvelope
	if err := c.doJSON(ctx, http.MethodGet, c.jobURL(jobName), nil, &resp); err != nil {
		return Job{}, fmt.Errorf("get job %q: %w", jobName, err)
	}
	j := resp.CallAnalyticsJob
	return Job{
		Name:          j.CallAnalyticsJobName,
		Status:        types.JobStatus(j.CallAnalyticsJobStatus),
		TranscriptURI: j.Transcript.TranscriptFileURI,
		FailureReason: j.FailureReason,
	}, nil
}

// FetchDocument downloads and decodes one analytics result document.
func (c *Client) FetchDocument(ctx context.Context, uri string) (types.Document, error) {
	var doc types.Document
	if err := c.doJSON(ctx, http.MethodGet, uri, nil, &doc); err != nil {
		return nil, fmt.Errorf("fetch result document: %w", err)
	}
	return doc, nil
}

// FetchJobDocument resolves a job name to its analytics document. The job
// must be COMPLETED and carry a transcript file URI; anything else is a
// job-level error the caller can degrade on.
func (c *Client) FetchJobDocument(ctx context.Context, jobName string) (types.Document, error) {
	job, err := c.GetJob(ctx, jobName)
	if err != nil {
		return nil, err
	}
	switch job.Status {
	case types.StatusCompleted:
	case types.StatusFailed:
		return nil, fmt.Errorf("job %q failed: %s", jobName, job.FailureReason)
	default:
		return nil, fmt.Errorf("job %q not finished: status %s", jobName, job.Status)
	}
	if job.TranscriptURI == "" {
		return nil, fmt.Errorf("job %q has no transcript file uri", jobName)
	}
	c.log.WithJob(jobName).WithField("result_uri", job.TranscriptURI).Debug("downloading analytics document")
	return c.FetchDocument(ctx, job.TranscriptURI)
}

func (c *Client) jobsURL() string {
	return c.baseURL + "/call-analytics/jobs"
}

func (c *Client) jobURL(name string) string {
	return c.jobsURL() + "/" + url.PathEscape(name)
}

// doJSON performs one JSON call with up to maxAttempts tries, rebuilding
// the request each attempt. 4xx responses are never retried and come back
// as plain errors; transport and 5xx failures that exhaust the retries are
// wrapped in ErrUnavailable.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, body []byte, target any) error {
	var permanent bool
	op := func() error {
		var rd io.Reader
		if len(body) > 0 {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
		if err != nil {
			permanent = true
			return backoff.Permanent(err)
		}
		if len(body) > 0 {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("X-Request-ID", uuid.New().String())

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		if resp.StatusCode >= 400 {
			permanent = true
			return backoff.Permanent(fmt.Errorf("speech api: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))))
		}
		if target == nil {
			return nil
		}
		if len(data) == 0 {
			return fmt.Errorf("empty response body")
		}
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxAttempts-1)
	err := backoff.Retry(op, backoff.WithContext(bo, ctx))
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if permanent {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
