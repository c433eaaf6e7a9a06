package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"pulse/config"
	"pulse/media"
)

// Config holds the engine's API key, model selection, and polling cadence.
// Zero-value model fields fall back to the defaults in the config package.
type Config struct {
	APIKey        string
	ClassifyModel string
	SweepModel    string
	IntelModel    string
	ImageModel    string
	VideoModel    string
	PollInterval  time.Duration
}

// Engine executes every remote model workflow: classification, grounded news
// sweeps, identity lookups, and image/video synthesis.
type Engine struct {
	client *genai.Client
	store  *media.Store
	jobs   VideoJobService
	cfg    Config
}

// NewEngine creates an engine backed by the Gemini API.
func NewEngine(ctx context.Context, cfg Config, store *media.Store) (*Engine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	applyDefaults(&cfg)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Engine{
		client: client,
		store:  store,
		jobs:   &veoJobService{client: client, model: cfg.VideoModel},
		cfg:    cfg,
	}, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ClassifyModel == "" {
		cfg.ClassifyModel = config.ClassifyModel
	}
	if cfg.SweepModel == "" {
		cfg.SweepModel = config.SweepModel
	}
	if cfg.IntelModel == "" {
		cfg.IntelModel = config.IntelModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = config.ImageModel
	}
	if cfg.VideoModel == "" {
		cfg.VideoModel = config.VideoModel
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = config.VideoPollInterval
	}
}
