package gemini

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pulse/config"
)

type fakeJobService struct {
	submitJob *VideoJob
	submitErr error

	polls    []*VideoJob
	pollErr  error
	pollIdx  int
	pollCall int
}

func (f *fakeJobService) Submit(ctx context.Context, prompt string) (*VideoJob, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitJob, nil
}

func (f *fakeJobService) Poll(ctx context.Context, job *VideoJob) (*VideoJob, error) {
	f.pollCall++
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	next := f.polls[f.pollIdx]
	if f.pollIdx < len(f.polls)-1 {
		f.pollIdx++
	}
	return next, nil
}

func newTestPipeline(jobs VideoJobService) (*videoPipeline, *[]string) {
	fetched := []string{}
	p := &videoPipeline{
		jobs:     jobs,
		interval: time.Millisecond,
		fetch: func(ctx context.Context, uri string) (string, error) {
			fetched = append(fetched, uri)
			return "media_cache/vid_test.mp4", nil
		},
	}
	return p, &fetched
}

func TestVideoPipelinePollsUntilDone(t *testing.T) {
	jobs := &fakeJobService{
		submitJob: &VideoJob{Done: false},
		polls: []*VideoJob{
			{Done: false},
			{Done: true, ResultURI: "https://example.com/clip"},
		},
	}
	p, fetched := newTestPipeline(jobs)

	var labels []string
	path, err := p.run(context.Background(), "storm over the bay", func(label string) {
		labels = append(labels, label)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "media_cache/vid_test.mp4" {
		t.Errorf("unexpected result path %q", path)
	}

	if jobs.pollCall != 2 {
		t.Errorf("expected 2 polls, got %d", jobs.pollCall)
	}
	if len(*fetched) != 1 || (*fetched)[0] != "https://example.com/clip" {
		t.Errorf("expected one fetch of the result URI, got %v", *fetched)
	}

	// One init label, then one synthesis label per wait cycle.
	want := []string{ProgressVideoInit, ProgressVideoSynth, ProgressVideoSynth}
	if len(labels) != len(want) {
		t.Fatalf("expected %d progress labels, got %d: %v", len(want), len(labels), labels)
	}
	for i, label := range want {
		if labels[i] != label {
			t.Errorf("label %d: expected %q, got %q", i, label, labels[i])
		}
	}
}

func TestVideoPipelineImmediateCompletion(t *testing.T) {
	jobs := &fakeJobService{
		submitJob: &VideoJob{Done: true, ResultURI: "https://example.com/fast"},
	}
	p, _ := newTestPipeline(jobs)

	var labels []string
	if _, err := p.run(context.Background(), "prompt", func(label string) {
		labels = append(labels, label)
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jobs.pollCall != 0 {
		t.Errorf("expected no polls for an already-done job, got %d", jobs.pollCall)
	}
	if len(labels) != 1 || labels[0] != ProgressVideoInit {
		t.Errorf("expected only the init label, got %v", labels)
	}
}

func TestVideoPipelineEmptyResultFails(t *testing.T) {
	jobs := &fakeJobService{
		submitJob: &VideoJob{Done: true},
	}
	p, fetched := newTestPipeline(jobs)

	_, err := p.run(context.Background(), "prompt", func(string) {})
	if err == nil || err.Error() != "video generation failed" {
		t.Fatalf("expected generation failure, got %v", err)
	}
	if len(*fetched) != 0 {
		t.Error("expected no fetch for an empty result")
	}
}

func TestVideoPipelineSubmitError(t *testing.T) {
	jobs := &fakeJobService{submitErr: fmt.Errorf("quota exceeded")}
	p, _ := newTestPipeline(jobs)

	if _, err := p.run(context.Background(), "prompt", func(string) {}); err == nil {
		t.Fatal("expected submit error to propagate")
	}
}

func TestVideoPipelineHonorsContext(t *testing.T) {
	jobs := &fakeJobService{submitJob: &VideoJob{Done: false}}
	p, _ := newTestPipeline(jobs)
	p.interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.run(ctx, "prompt", func(string) {})
	if err != context.Canceled {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if jobs.pollCall != 0 {
		t.Errorf("expected no polls after cancellation, got %d", jobs.pollCall)
	}
}

func TestDefaultPollCadence(t *testing.T) {
	cfg := Config{APIKey: "key"}
	applyDefaults(&cfg)

	if cfg.PollInterval != 10*time.Second {
		t.Errorf("expected 10s poll cadence, got %v", cfg.PollInterval)
	}
	if cfg.VideoModel != config.VideoModel {
		t.Errorf("expected default video model %q, got %q", config.VideoModel, cfg.VideoModel)
	}
}
