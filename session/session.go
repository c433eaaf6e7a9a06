package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"pulse/config"
	"pulse/types"
)

// Progress labels and error messages surfaced to the presentation layer.
const (
	progressAnalyzing = "Analyzing Intent..."
	progressImage     = "Dreaming visual pixels..."
	progressIntel     = "Scanning Digital Footprint..."
	progressVideo     = "Synthesizing temporal neural frames..."

	errEngine   = "AI Engine reported a bypass error or safety trigger."
	errDownlink = "Downlink saturated. Retrying..."
)

// Engine is the remote model surface the dispatcher drives.
type Engine interface {
	Classify(ctx context.Context, prompt string) (types.Intent, error)
	LookupIdentity(ctx context.Context, query string) (*types.PersonDossier, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
	GenerateVideo(ctx context.Context, prompt string, onProgress func(string)) (string, error)
}

// Sweeper produces story candidates plus shared citations for a topic.
type Sweeper interface {
	Sweep(ctx context.Context, topic string) ([]types.StoryCandidate, []types.NewsSource, error)
}

// KeyGate is the one-time external precondition checked before the first
// paid video job.
type KeyGate interface {
	HasSelectedKey() bool
	SelectKey(ctx context.Context) error
}

// Publisher receives stories that survive the dedup merge.
type Publisher interface {
	PublishStories(ctx context.Context, items []*types.NewsItem) error
}

// Archiver stores finished generated assets.
type Archiver interface {
	ArchiveAsset(ctx context.Context, asset *types.GeneratedAsset) error
}

// Config wires a session's collaborators. Engine and Sweeper are required;
// everything else is optional.
type Config struct {
	Engine     Engine
	Sweeper    Sweeper
	Supplement Sweeper
	Gate       KeyGate
	Publisher  Publisher
	Archiver   Archiver

	Topic           string
	MaxItems        int
	RefreshInterval time.Duration
}

// Session owns all per-process state: the four collections, the view mode,
// the busy/progress/error slots, and the aggregator timer. All four
// collections live in memory simultaneously; switching modes never destroys
// them. Methods are safe for concurrent use.
type Session struct {
	engine     Engine
	sweeper    Sweeper
	supplement Sweeper
	gate       KeyGate
	publisher  Publisher
	archiver   Archiver

	maxItems        int
	refreshInterval time.Duration

	mu           sync.Mutex
	baseCtx      context.Context
	streamCancel context.CancelFunc

	news       []*types.NewsItem
	assets     []*types.GeneratedAsset
	dossier    *types.PersonDossier
	topic      string
	live       bool
	mode       types.ViewMode
	activeReel int
	busy       bool
	progress   string
	lastErr    string
}

// Snapshot is the observable state handed to presentation clients.
type Snapshot struct {
	Mode       types.ViewMode         `json:"mode"`
	Topic      string                 `json:"topic"`
	Live       bool                   `json:"live"`
	Busy       bool                   `json:"busy"`
	Progress   string                 `json:"progress,omitempty"`
	Error      string                 `json:"error,omitempty"`
	News       []*types.NewsItem      `json:"news"`
	Reel       []*types.NewsItem      `json:"reel"`
	Assets     []*types.GeneratedAsset `json:"assets"`
	Dossier    *types.PersonDossier   `json:"dossier,omitempty"`
	ActiveReel int                    `json:"active_reel"`
}

// New creates a session. Call Start to arm the news stream.
func New(cfg Config) *Session {
	if cfg.Topic == "" {
		cfg.Topic = config.DefaultTopic
	}
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = config.MaxNewsItems
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = config.RefreshInterval
	}
	if cfg.Gate == nil {
		cfg.Gate = EnvKeyGate{Var: "GEMINI_API_KEY"}
	}

	return &Session{
		engine:          cfg.Engine,
		sweeper:         cfg.Sweeper,
		supplement:      cfg.Supplement,
		gate:            cfg.Gate,
		publisher:       cfg.Publisher,
		archiver:        cfg.Archiver,
		maxItems:        cfg.MaxItems,
		refreshInterval: cfg.RefreshInterval,
		topic:           cfg.Topic,
		live:            true,
		mode:            types.ModeNews,
	}
}

// Start arms the streaming aggregator for the initial topic. The context
// bounds every background sweep; cancelling it stops the stream.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
	s.rearmStream()
}

// Stop cancels the outstanding aggregator timer, if any.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streamCancel != nil {
		s.streamCancel()
		s.streamCancel = nil
	}
}

// HandleRequest classifies one free-text command and runs the matching
// pipeline. Empty input is a silent no-op. Failures are recorded in the error
// slot, never returned; the busy flag and progress label are cleared on every
// exit path. A second request while one is in flight is ignored.
func (s *Session) HandleRequest(ctx context.Context, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if !s.beginAction(progressAnalyzing) {
		return
	}
	defer s.endAction()

	intent, err := s.engine.Classify(ctx, raw)
	if err != nil {
		s.setError(errEngine)
		return
	}

	switch intent {
	case types.IntentImage:
		s.setProgress(progressImage)
		url, err := s.engine.GenerateImage(ctx, raw)
		if err != nil {
			s.setError(errEngine)
			return
		}
		s.appendAsset(ctx, types.MediaImage, url, raw)

	case types.IntentVideo:
		if !s.gate.HasSelectedKey() {
			if err := s.gate.SelectKey(ctx); err != nil {
				s.setError(errEngine)
				return
			}
		}
		s.setProgress(progressVideo)
		url, err := s.engine.GenerateVideo(ctx, raw, s.setProgress)
		if err != nil {
			s.setError(errEngine)
			return
		}
		s.appendAsset(ctx, types.MediaVideo, url, raw)

	case types.IntentIntel:
		s.setProgress(progressIntel)
		s.lookupIdentity(ctx, raw)

	case types.IntentNews:
		s.mu.Lock()
		s.topic = raw
		s.news = nil
		s.mode = types.ModeNews
		s.activeReel = 0
		s.mu.Unlock()
		s.rearmStream()
	}
}

// TrackIdentity runs the identity pipeline for an author handle selected from
// the reel. Shares the foreground busy slot with dispatched requests.
func (s *Session) TrackIdentity(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	if !s.beginAction(progressIntel) {
		return
	}
	defer s.endAction()
	s.lookupIdentity(ctx, query)
}

// lookupIdentity replaces the dossier wholesale on success and switches to
// intel mode. Caller owns the busy slot.
func (s *Session) lookupIdentity(ctx context.Context, query string) {
	dossier, err := s.engine.LookupIdentity(ctx, query)
	if err != nil {
		s.setError(errEngine)
		return
	}
	s.mu.Lock()
	s.dossier = dossier
	s.mode = types.ModeIntel
	s.mu.Unlock()
	s.rearmStream()
}

// appendAsset records a finished generation newest-first and switches to
// creative mode. Archiving is best-effort.
func (s *Session) appendAsset(ctx context.Context, kind types.MediaKind, url, prompt string) {
	now := time.Now()
	asset := &types.GeneratedAsset{
		ID:        types.AssetID(now),
		Kind:      kind,
		URL:       url,
		Prompt:    prompt,
		Timestamp: now,
	}

	s.mu.Lock()
	s.assets = append([]*types.GeneratedAsset{asset}, s.assets...)
	s.mode = types.ModeCreative
	s.mu.Unlock()
	s.rearmStream()

	if s.archiver != nil {
		if err := s.archiver.ArchiveAsset(ctx, asset); err != nil {
			log.Printf("Asset archive failed for %s: %v", asset.ID, err)
		}
	}
}

// SetMode switches the active display mode. Entering or leaving news/reel
// re-arms or cancels the aggregator timer.
func (s *Session) SetMode(mode types.ViewMode) {
	s.mu.Lock()
	changed := s.mode != mode
	s.mode = mode
	if mode == types.ModeReel {
		s.activeReel = 0
	}
	s.mu.Unlock()
	if changed {
		s.rearmStream()
	}
}

// SetLive toggles the recurring refresh timer.
func (s *Session) SetLive(live bool) {
	s.mu.Lock()
	changed := s.live != live
	s.live = live
	s.mu.Unlock()
	if changed {
		s.rearmStream()
	}
}

// SetReelScroll derives the active reel index from a scroll offset.
func (s *Session) SetReelScroll(offset, viewport float64) {
	if viewport <= 0 {
		return
	}
	idx := int(offset/viewport + 0.5)
	if idx < 0 {
		idx = 0
	}
	s.mu.Lock()
	s.activeReel = idx
	s.mu.Unlock()
}

// Snapshot copies the observable state. Items are immutable after creation,
// so sharing the element pointers is safe.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	news := make([]*types.NewsItem, len(s.news))
	copy(news, s.news)
	assets := make([]*types.GeneratedAsset, len(s.assets))
	copy(assets, s.assets)

	return Snapshot{
		Mode:       s.mode,
		Topic:      s.topic,
		Live:       s.live,
		Busy:       s.busy,
		Progress:   s.progress,
		Error:      s.lastErr,
		News:       news,
		Reel:       reelSubset(news),
		Assets:     assets,
		Dossier:    s.dossier,
		ActiveReel: s.activeReel,
	}
}

// reelSubset is always recomputed from the news collection, never stored.
func reelSubset(news []*types.NewsItem) []*types.NewsItem {
	reel := make([]*types.NewsItem, 0, len(news))
	for _, item := range news {
		if item.MediaType == types.MediaVideo {
			reel = append(reel, item)
		}
	}
	return reel
}

func (s *Session) beginAction(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	s.progress = label
	s.lastErr = ""
	return true
}

func (s *Session) endAction() {
	s.mu.Lock()
	s.busy = false
	s.progress = ""
	s.mu.Unlock()
}

func (s *Session) setProgress(label string) {
	s.mu.Lock()
	s.progress = label
	s.mu.Unlock()
}

func (s *Session) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
