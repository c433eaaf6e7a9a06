package rssfeeds

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"pulse/types"
)

// Source pulls supplemental story candidates for a topic from the Google News
// search feed. Candidates flow through the same dedup merge as model sweeps,
// so running both producers is safe.
type Source struct {
	parser   *gofeed.Parser
	maxItems int
	extract  bool
}

// NewSource creates a source returning at most maxItems candidates per sweep.
// When extract is true, detail bodies are pulled from the linked pages.
func NewSource(maxItems int, extract bool) *Source {
	return &Source{
		parser:   gofeed.NewParser(),
		maxItems: maxItems,
		extract:  extract,
	}
}

// Sweep fetches and maps the topic feed. Each item's own link doubles as its
// citation since RSS carries no separate grounding list.
func (s *Source) Sweep(ctx context.Context, topic string) ([]types.StoryCandidate, []types.NewsSource, error) {
	feed, err := s.parser.ParseURLWithContext(feedURL(topic), ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch topic feed: %w", err)
	}

	stories, sources := s.mapFeed(feed)

	if s.extract {
		extractDetails(stories)
	}

	candidates := make([]types.StoryCandidate, len(stories))
	for i, story := range stories {
		if story.candidate.DetailedContent == "" {
			story.candidate.DetailedContent = story.candidate.Summary
		}
		candidates[i] = story.candidate
	}
	return candidates, sources, nil
}

// mapFeed converts up to maxItems feed entries into story candidates and a
// citation per linked item.
func (s *Source) mapFeed(feed *gofeed.Feed) ([]*fetchedStory, []types.NewsSource) {
	count := len(feed.Items)
	if count > s.maxItems {
		count = s.maxItems
	}

	stories := make([]*fetchedStory, 0, count)
	sources := make([]types.NewsSource, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		candidate := types.StoryCandidate{
			AccountHandle: handleForLink(item.Link),
			Title:         item.Title,
			Summary:       strings.TrimSpace(item.Description),
			Sentiment:     types.SentimentNeutral,
			Category:      firstCategory(item),
			Platform:      platformForLink(item.Link),
			MediaType:     types.MediaNone,
		}
		if item.Image != nil && item.Image.URL != "" {
			candidate.MediaType = types.MediaImage
			candidate.MediaURL = item.Image.URL
		}

		stories = append(stories, &fetchedStory{candidate: candidate, link: item.Link})
		if item.Link != "" {
			sources = append(sources, types.NewsSource{Title: item.Title, URI: item.Link})
		}
	}
	return stories, sources
}

func feedURL(topic string) string {
	return "https://news.google.com/rss/search?q=" + url.QueryEscape(topic) + "&hl=en-US&gl=US&ceid=US:en"
}

func firstCategory(item *gofeed.Item) string {
	if len(item.Categories) > 0 {
		return item.Categories[0]
	}
	return "News"
}

func platformForLink(link string) string {
	host := hostForLink(link)
	if host == "" {
		return "RSS"
	}
	return host
}

func handleForLink(link string) string {
	host := hostForLink(link)
	if host == "" {
		return "@newswire"
	}
	return "@" + strings.SplitN(host, ".", 2)[0]
}

func hostForLink(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}
