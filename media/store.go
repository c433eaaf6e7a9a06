package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes generated media to a local cache directory and hands back
// file paths the presentation layer can address directly.
type Store struct {
	dir    string
	client *http.Client
}

// NewStore creates a media store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}
	return &Store{
		dir: dir,
		client: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}, nil
}

// SaveBytes persists inline media bytes and returns the local path.
// The extension is derived from the mime type.
func (s *Store) SaveBytes(id string, mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("no media bytes to save")
	}
	path := filepath.Join(s.dir, id+extForMime(mimeType))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return path, nil
}

// Download fetches a remote media URI into the cache and returns the local path.
func (s *Store) Download(ctx context.Context, id string, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download media: status %d", resp.StatusCode)
	}

	path := filepath.Join(s.dir, id+extForMime(resp.Header.Get("Content-Type")))
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return path, nil
}

func extForMime(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "png"):
		return ".png"
	case strings.Contains(mimeType, "jpeg"), strings.Contains(mimeType, "jpg"):
		return ".jpg"
	case strings.Contains(mimeType, "webp"):
		return ".webp"
	case strings.Contains(mimeType, "mp4"), strings.Contains(mimeType, "video"):
		return ".mp4"
	default:
		return ".bin"
	}
}
