package types

import (
	"fmt"
	"time"
)

// GeneratedAsset is one synthesized image or video. The asset collection is
// append-only, newest-first, unbounded.
type GeneratedAsset struct {
	ID        string    `json:"id"`
	Kind      MediaKind `json:"kind"`
	URL       string    `json:"url"`
	Prompt    string    `json:"prompt"`
	Timestamp time.Time `json:"timestamp"`
}

// AssetID derives an asset identifier from its creation time.
func AssetID(createdAt time.Time) string {
	return fmt.Sprintf("%d", createdAt.UnixMilli())
}
