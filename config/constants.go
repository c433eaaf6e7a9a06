package config

import "time"

// Stream Constants
const (
	// DefaultTopic seeds the news stream before the first user command
	DefaultTopic = "Global High-Frequency Intercepts"

	// MaxNewsItems caps the live collection; older entries are evicted
	MaxNewsItems = 100

	// RefreshInterval is the live-mode re-sweep period
	RefreshInterval = 20 * time.Second

	// MaxSupplementItems limits stories pulled from the RSS sweep per cycle
	MaxSupplementItems = 5
)

// Video Pipeline Constants
const (
	// VideoPollInterval is the fixed wait between remote job status checks.
	// The remote service emits no backoff signal and completion is roughly
	// bounded, so the interval is flat rather than exponential.
	VideoPollInterval = 10 * time.Second
)

// Gemini Model Constants
const (
	// ClassifyModel routes free-text commands to an action category
	ClassifyModel = "gemini-3-flash-preview"

	// SweepModel runs the grounded OSINT news sweep
	SweepModel = "gemini-3-flash-preview"

	// IntelModel builds identity dossiers with search grounding
	IntelModel = "gemini-3-pro-preview"

	// ImageModel returns inline image bytes
	ImageModel = "gemini-2.5-flash-image"

	// VideoModel is the Veo generation model behind the async job
	VideoModel = "veo-3.1-fast-generate-preview"
)

// Media Constants
const (
	// MediaDir is the directory for locally stored generated media
	MediaDir = "media_cache"
)
