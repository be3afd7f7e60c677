package pipeline

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"call-analytics-go/internal/extractor"
	"call-analytics-go/internal/logger"
	"call-analytics-go/internal/transcription"
	"call-analytics-go/internal/types"
)

// SpeechService is the consumer-side contract the pipeline needs from the
// speech provider: submit one analytics job, and fetch a finished job's
// analytics document.
type SpeechService interface {
	StartJob(ctx context.Context, jobName, mediaURI string) error
	FetchJobDocument(ctx context.Context, jobName string) (types.Document, error)
}

const defaultWorkers = 4

// Options configures a Pipeline. Service is required; the rest defaults.
type Options struct {
	Service SpeechService
	Fields  *extractor.Extractor
	Workers int
	Logger  *logger.Logger
}

// Pipeline turns a batch of job records into flat result rows. Retrieval
// runs concurrently; the flattening passes are pure and run in input order.
type Pipeline struct {
	svc     SpeechService
	fields  *extractor.Extractor
	workers int
	log     *logger.Logger
}

func New(opts Options) (*Pipeline, error) {
	if opts.Service == nil {
		return nil, errors.New("pipeline: speech service is required")
	}
	fields := opts.Fields
	if fields == nil {
		fields = extractor.New(extractor.Options{})
	}
	workers := opts.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	log := opts.Logger
	if log == nil {
		log = logger.New()
	}
	return &Pipeline{
		svc:     opts.Service,
		fields:  fields,
		workers: workers,
		log:     log,
	}, nil
}

// SubmitJobs starts one remote analytics job per record. A record missing
// its name or recording URL is skipped with a warning, and a job the
// service rejects is logged and skipped. Only a service outage aborts the
// batch; the count of jobs actually started is returned either way.
func (p *Pipeline) SubmitJobs(ctx context.Context, records []types.JobRecord) (int, error) {
	started := 0
	for _, rec := range records {
		if rec.JobName == "" || rec.JobURL == "" {
			p.log.WithJob(rec.JobName).Warn("skipping record with missing job name or recording url")
			continue
		}
		if err := p.svc.StartJob(ctx, rec.JobName, rec.JobURL); err != nil {
			if errors.Is(err, transcription.ErrUnavailable) || ctx.Err() != nil {
				return started, err
			}
			p.log.WithJob(rec.JobName).WithError(err).Error("error starting analytics job")
			continue
		}
		p.log.WithJob(rec.JobName).Info("started analytics job")
		started++
	}
	return started, nil
}

// Run retrieves every job's analytics document and flattens each into one
// result row: transcript first, then summarization buckets, then
// conversation characteristics. Rows keep the input order, and a job whose
// document could not be retrieved still yields a row with every analytics
// field null.
func (p *Pipeline) Run(ctx context.Context, records []types.JobRecord) ([]types.ResultRow, error) {
	work := append([]types.JobRecord(nil), records...)
	if err := p.retrieve(ctx, work); err != nil {
		return nil, err
	}

	rows := make([]types.ResultRow, len(work))
	for i, rec := range work {
		rows[i] = types.ResultRow{JobName: rec.JobName, JobURL: rec.JobURL}
	}
	p.buildTranscripts(work, rows)
	p.buildSummaries(work, rows)
	p.buildCharacteristics(work, rows)
	return rows, nil
}

// retrieve fetches each job's document with a bounded worker pool and
// attaches it to the record. A job-level failure leaves that record's
// RawResult nil; a service outage or cancellation stops the whole pass.
func (p *Pipeline) retrieve(ctx context.Context, work []types.JobRecord) error {
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(p.workers)
	for i := range work {
		group.Go(func() error {
			doc, err := p.svc.FetchJobDocument(gctx, work[i].JobName)
			if err != nil {
				if errors.Is(err, transcription.ErrUnavailable) || gctx.Err() != nil {
					return err
				}
				p.log.WithJob(work[i].JobName).WithError(err).Error("failed to retrieve job response")
				return nil
			}
			work[i].RawResult = doc
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	incomplete := 0
	for i := range work {
		if work[i].RawResult == nil {
			incomplete++
		}
	}
	p.log.WithField("count", incomplete).Info("number of incomplete jobs")
	return nil
}

func (p *Pipeline) buildTranscripts(work []types.JobRecord, rows []types.ResultRow) {
	empty := 0
	for i := range work {
		rows[i].Transcript = p.fields.Transcript(work[i].RawResult)
		if rows[i].Transcript == nil {
			empty++
		}
	}
	p.log.WithField("count", empty).Info("number of empty transcripts")
}

func (p *Pipeline) buildSummaries(work []types.JobRecord, rows []types.ResultRow) {
	for i := range work {
		rows[i].CallSummary = p.fields.Summary(work[i].RawResult)
	}
}

func (p *Pipeline) buildCharacteristics(work []types.JobRecord, rows []types.ResultRow) {
	for i := range work {
		rows[i].CallCharacteristics = p.fields.Characteristics(work[i].RawResult)
	}
}
