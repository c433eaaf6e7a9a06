package rssfeeds

import (
	"log"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"

	"pulse/types"
)

const (
	workerCount      = 5
	extractorTimeout = 30 * time.Second
	maxDetailRunes   = 4000
)

type fetchedStory struct {
	candidate types.StoryCandidate
	link      string
}

// extractDetails fills in detail bodies from the linked pages using a worker
// pool. Extraction failures leave the candidate's summary as the body.
func extractDetails(stories []*fetchedStory) {
	var wg sync.WaitGroup
	storyChan := make(chan *fetchedStory, len(stories))

	for i := 0; i < workerCount; i++ {
		go func() {
			for story := range storyChan {
				extractStory(story)
				wg.Done()
			}
		}()
	}

	for _, story := range stories {
		wg.Add(1)
		storyChan <- story
	}

	wg.Wait()
	close(storyChan)
}

func extractStory(story *fetchedStory) {
	if story.link == "" {
		return
	}

	page, err := readability.FromURL(story.link, extractorTimeout)
	if err != nil {
		log.Printf("Failed to extract %s: %v", story.link, err)
		return
	}

	body := page.TextContent
	if runes := []rune(body); len(runes) > maxDetailRunes {
		body = string(runes[:maxDetailRunes])
	}
	story.candidate.DetailedContent = body

	if story.candidate.Summary == "" {
		story.candidate.Summary = page.Excerpt
	}
	if story.candidate.MediaURL == "" && page.Image != "" {
		story.candidate.MediaType = types.MediaImage
		story.candidate.MediaURL = page.Image
	}
}
