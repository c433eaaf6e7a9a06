package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pulse/session"
	"pulse/types"
)

type stubEngine struct{}

func (stubEngine) Classify(ctx context.Context, prompt string) (types.Intent, error) {
	return types.IntentNews, nil
}

func (stubEngine) LookupIdentity(ctx context.Context, query string) (*types.PersonDossier, error) {
	return &types.PersonDossier{FullName: query}, nil
}

func (stubEngine) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return "img.png", nil
}

func (stubEngine) GenerateVideo(ctx context.Context, prompt string, onProgress func(string)) (string, error) {
	return "vid.mp4", nil
}

type stubSweeper struct{}

func (stubSweeper) Sweep(ctx context.Context, topic string) ([]types.StoryCandidate, []types.NewsSource, error) {
	return nil, nil, nil
}

type stubGate struct{}

func (stubGate) HasSelectedKey() bool                { return true }
func (stubGate) SelectKey(ctx context.Context) error { return nil }

func newTestRouter() (*gin.Engine, *session.Session) {
	gin.SetMode(gin.TestMode)
	s := session.New(session.Config{
		Engine:          stubEngine{},
		Sweeper:         stubSweeper{},
		Gate:            stubGate{},
		Topic:           "test topic",
		RefreshInterval: time.Hour,
	})
	return NewRouter(s), s
}

func TestGetState(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.Topic != "test topic" {
		t.Errorf("expected topic in snapshot, got %q", snap.Topic)
	}
	if snap.Mode != types.ModeNews {
		t.Errorf("expected default news mode, got %q", snap.Mode)
	}
	if !snap.Live {
		t.Error("expected live stream by default")
	}
}

func TestPostCommand(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(`{"text":"quantum computing"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPostCommandRejectsMissingText(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPostMode(t *testing.T) {
	router, s := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/mode", strings.NewReader(`{"mode":"creative"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := s.Snapshot().Mode; got != types.ModeCreative {
		t.Errorf("expected creative mode applied, got %q", got)
	}
}

func TestPostModeRejectsUnknown(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/mode", strings.NewReader(`{"mode":"hologram"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPostLive(t *testing.T) {
	router, s := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/live", strings.NewReader(`{"live":false}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if s.Snapshot().Live {
		t.Error("expected live toggled off")
	}
}

func TestPostReelScroll(t *testing.T) {
	router, s := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reel/scroll", strings.NewReader(`{"offset":1000,"viewport":500}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := s.Snapshot().ActiveReel; got != 2 {
		t.Errorf("expected reel index 2, got %d", got)
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}
