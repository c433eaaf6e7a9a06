package types

import (
	"fmt"
	"time"
)

// Sentiment classifies the tone of an intercepted story.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentBreaking Sentiment = "breaking"
)

// MediaKind describes the media attached to a story or asset.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaNone  MediaKind = "none"
)

// NewsSource is a grounding citation attached to a sweep.
type NewsSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// NewsItem represents a single intercepted story. Items are immutable after
// creation; the live collection only evicts them by capacity or replaces them
// on a title collision.
type NewsItem struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Summary         string       `json:"summary"`
	DetailedContent string       `json:"detailed_content"`
	Timestamp       time.Time    `json:"timestamp"`
	Sources         []NewsSource `json:"sources,omitempty"`
	Sentiment       Sentiment    `json:"sentiment"`
	Category        string       `json:"category"`
	Platform        string       `json:"platform"`
	MediaURL        string       `json:"media_url,omitempty"`
	MediaType       MediaKind    `json:"media_type,omitempty"`
	AccountHandle   string       `json:"account_handle,omitempty"`
	AvatarURL       string       `json:"avatar_url,omitempty"`
}

// NewsID derives an item identifier from its capture time and position
// within the sweep batch.
func NewsID(capturedAt time.Time, index int) string {
	return fmt.Sprintf("%d-%d", capturedAt.UnixMilli(), index)
}
