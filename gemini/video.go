package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Progress labels emitted by the video pipeline.
const (
	ProgressVideoInit  = "Initializing Veo 3.1 Neural Engine..."
	ProgressVideoSynth = "Synthesizing temporal frames (approx 30-60s)..."
)

// VideoJob is the opaque handle for one in-flight synthesis operation. It
// lives only for the duration of a single request and is discarded once
// resolved to a media reference or a failure.
type VideoJob struct {
	Done      bool
	ResultURI string

	op *genai.GenerateVideosOperation
}

// VideoJobService submits a generation request and refreshes its status.
type VideoJobService interface {
	Submit(ctx context.Context, prompt string) (*VideoJob, error)
	Poll(ctx context.Context, job *VideoJob) (*VideoJob, error)
}

// veoJobService drives the Veo long-running operation API.
type veoJobService struct {
	client *genai.Client
	model  string
}

func (s *veoJobService) Submit(ctx context.Context, prompt string) (*VideoJob, error) {
	op, err := s.client.Models.GenerateVideos(ctx, s.model, prompt, nil, &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     "720p",
		AspectRatio:    "16:9",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit video job: %w", err)
	}
	return jobFromOperation(op), nil
}

func (s *veoJobService) Poll(ctx context.Context, job *VideoJob) (*VideoJob, error) {
	op, err := s.client.Operations.GetVideosOperation(ctx, job.op, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to poll video job: %w", err)
	}
	return jobFromOperation(op), nil
}

func jobFromOperation(op *genai.GenerateVideosOperation) *VideoJob {
	job := &VideoJob{Done: op.Done, op: op}
	if op.Response != nil && len(op.Response.GeneratedVideos) > 0 {
		if v := op.Response.GeneratedVideos[0].Video; v != nil {
			job.ResultURI = v.URI
		}
	}
	return job
}

// GenerateVideo runs the full asynchronous pipeline: submit, poll at a fixed
// interval until the remote operation completes, then download the result
// into the local store. The loop has no iteration ceiling; a caller-supplied
// context deadline is the only bound.
func (e *Engine) GenerateVideo(ctx context.Context, prompt string, onProgress func(string)) (string, error) {
	p := &videoPipeline{
		jobs:     e.jobs,
		interval: e.cfg.PollInterval,
		fetch:    e.fetchVideo,
	}
	return p.run(ctx, prompt, onProgress)
}

type videoPipeline struct {
	jobs     VideoJobService
	interval time.Duration
	fetch    func(ctx context.Context, uri string) (string, error)
}

func (p *videoPipeline) run(ctx context.Context, prompt string, onProgress func(string)) (string, error) {
	onProgress(ProgressVideoInit)

	job, err := p.jobs.Submit(ctx, prompt)
	if err != nil {
		return "", err
	}

	for !job.Done {
		onProgress(ProgressVideoSynth)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.interval):
		}
		if job, err = p.jobs.Poll(ctx, job); err != nil {
			return "", err
		}
	}

	if job.ResultURI == "" {
		return "", fmt.Errorf("video generation failed")
	}
	return p.fetch(ctx, job.ResultURI)
}

// fetchVideo downloads the finished clip. The download endpoint expects the
// API key as a query parameter.
func (e *Engine) fetchVideo(ctx context.Context, uri string) (string, error) {
	sep := "&"
	if !strings.Contains(uri, "?") {
		sep = "?"
	}
	id := fmt.Sprintf("vid_%d", time.Now().UnixMilli())
	return e.store.Download(ctx, id, uri+sep+"key="+e.cfg.APIKey)
}
