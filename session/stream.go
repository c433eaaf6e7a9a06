package session

import (
	"context"
	"log"
	"time"

	"pulse/media"
	"pulse/types"
)

// rearmStream cancels the outstanding aggregator timer and, when the active
// mode displays the stream, arms a fresh one: an immediate sweep followed by
// a ticker while live mode is on. Cancel-before-arm keeps at most one timer
// outstanding across topic, live, and mode changes.
func (s *Session) rearmStream() {
	s.mu.Lock()
	if s.streamCancel != nil {
		s.streamCancel()
		s.streamCancel = nil
	}

	mode, live, topic := s.mode, s.live, s.topic
	if mode != types.ModeNews && mode != types.ModeReel {
		s.mu.Unlock()
		return
	}

	base := s.baseCtx
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithCancel(base)
	s.streamCancel = cancel
	interval := s.refreshInterval
	s.mu.Unlock()

	go func() {
		s.refresh(ctx, topic)
		if !live {
			return
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refresh(ctx, topic)
			}
		}
	}()
}

// refresh executes one sweep cycle for the topic. A failed sweep never clears
// existing items; it records a transient message and waits for the next tick.
// The background refresh does not touch the foreground busy flag.
func (s *Session) refresh(ctx context.Context, topic string) {
	candidates, sources, err := s.sweeper.Sweep(ctx, topic)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.setError(errDownlink)
	} else {
		s.publish(ctx, s.merge(candidates, sources))
	}

	if s.supplement == nil {
		return
	}
	extra, extraSources, err := s.supplement.Sweep(ctx, topic)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("Supplemental sweep failed: %v", err)
		}
		return
	}
	s.publish(ctx, s.merge(extra, extraSources))
}

// merge stamps the candidates with identity, capture time, the sweep's shared
// citations, and placeholder media, then folds them into the live collection:
// a title collision evicts the stale entry and the fresh one lands at the
// front; surviving entries keep their relative order; the result is truncated
// to the retention cap. Returns the items that entered the collection.
func (s *Session) merge(candidates []types.StoryCandidate, sources []types.NewsSource) []*types.NewsItem {
	if len(candidates) == 0 {
		return nil
	}

	now := time.Now()
	fresh := make([]*types.NewsItem, 0, len(candidates))
	titles := make(map[string]bool, len(candidates))

	for i, c := range candidates {
		if c.Title == "" || titles[c.Title] {
			continue
		}
		titles[c.Title] = true

		item := &types.NewsItem{
			ID:              types.NewsID(now, i),
			Title:           c.Title,
			Summary:         c.Summary,
			DetailedContent: c.DetailedContent,
			Timestamp:       now,
			Sources:         sources,
			Sentiment:       c.Sentiment,
			Category:        c.Category,
			Platform:        c.Platform,
			MediaType:       c.MediaType,
			MediaURL:        c.MediaURL,
			AccountHandle:   c.AccountHandle,
		}
		if item.Sentiment == "" {
			item.Sentiment = types.SentimentNeutral
		}
		if item.MediaURL == "" {
			item.MediaURL = media.PlaceholderMedia(c.MediaType, c.Title, i)
		}
		if item.AccountHandle != "" {
			item.AvatarURL = media.PlaceholderAvatar(c.AccountHandle)
		}
		fresh = append(fresh, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make([]*types.NewsItem, 0, len(fresh)+len(s.news))
	merged = append(merged, fresh...)
	for _, old := range s.news {
		if !titles[old.Title] {
			merged = append(merged, old)
		}
	}
	if len(merged) > s.maxItems {
		merged = merged[:s.maxItems]
	}
	s.news = merged

	return fresh
}

func (s *Session) publish(ctx context.Context, items []*types.NewsItem) {
	if s.publisher == nil || len(items) == 0 {
		return
	}
	if err := s.publisher.PublishStories(ctx, items); err != nil {
		log.Printf("Story publish failed: %v", err)
	}
}
