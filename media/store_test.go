package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"pulse/types"
)

func TestSaveBytes(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	path, err := store.SaveBytes("img_1", "image/png", []byte("pixels"))
	if err != nil {
		t.Fatalf("failed to save bytes: %v", err)
	}
	if !strings.HasSuffix(path, "img_1.png") {
		t.Errorf("expected .png extension, got %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("unexpected file content: %q", data)
	}
}

func TestSaveBytesRejectsEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if _, err := store.SaveBytes("img_2", "image/png", nil); err == nil {
		t.Error("expected an error for empty media bytes")
	}
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.Write([]byte("frames"))
	}))
	defer server.Close()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	path, err := store.Download(context.Background(), "vid_1", server.URL)
	if err != nil {
		t.Fatalf("failed to download: %v", err)
	}
	if !strings.HasSuffix(path, "vid_1.mp4") {
		t.Errorf("expected .mp4 extension from content type, got %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read downloaded file: %v", err)
	}
	if string(data) != "frames" {
		t.Errorf("unexpected file content: %q", data)
	}
}

func TestDownloadRejectsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if _, err := store.Download(context.Background(), "vid_2", server.URL); err == nil {
		t.Error("expected an error for a 404 response")
	}
}

func TestExtForMime(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"video/mp4", ".mp4"},
		{"video/quicktime", ".mp4"},
		{"application/octet-stream", ".bin"},
	}
	for _, tt := range tests {
		if got := extForMime(tt.mime); got != tt.want {
			t.Errorf("extForMime(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestPlaceholderMedia(t *testing.T) {
	first := PlaceholderMedia(types.MediaVideo, "any", 0)
	again := PlaceholderMedia(types.MediaVideo, "any", 0)
	if first != again {
		t.Error("expected deterministic video placeholder for the same index")
	}
	rotated := PlaceholderMedia(types.MediaVideo, "any", 1)
	if first == rotated {
		t.Error("expected sample rotation across batch positions")
	}
	if wrapped := PlaceholderMedia(types.MediaVideo, "any", 3); wrapped != first {
		t.Error("expected sample rotation to wrap around")
	}

	still := PlaceholderMedia(types.MediaImage, "breaking story", 0)
	if !strings.Contains(still, "breaking+story") {
		t.Errorf("expected title keyed into still placeholder, got %q", still)
	}
}
