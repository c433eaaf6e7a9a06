package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pulse/types"
)

var sweepSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"accountHandle":   {Type: genai.TypeString},
			"title":           {Type: genai.TypeString},
			"summary":         {Type: genai.TypeString},
			"detailedContent": {Type: genai.TypeString},
			"sentiment": {
				Type: genai.TypeString,
				Enum: []string{"positive", "negative", "neutral", "breaking"},
			},
			"category": {Type: genai.TypeString},
			"platform": {Type: genai.TypeString},
			"mediaType": {
				Type: genai.TypeString,
				Enum: []string{"image", "video", "none"},
			},
		},
	},
}

// Sweep runs one grounded OSINT sweep for the topic and returns the raw story
// candidates plus the grounding citations shared by the whole batch.
func (e *Engine) Sweep(ctx context.Context, topic string) ([]types.StoryCandidate, []types.NewsSource, error) {
	prompt := fmt.Sprintf("Act as an ultra-fast OSINT agent. Intercept visual and text news for %q. Format as JSON array.", topic)

	resp, err := e.client.Models.GenerateContent(ctx, e.cfg.SweepModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType: "application/json",
		ResponseSchema:   sweepSchema,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("news sweep failed: %w", err)
	}

	var candidates []types.StoryCandidate
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &candidates); err != nil {
		return nil, nil, fmt.Errorf("failed to parse sweep response: %w", err)
	}

	return candidates, groundingSources(resp), nil
}

// groundingSources extracts web citations from the response's grounding
// metadata, skipping chunks without a usable URI.
func groundingSources(resp *genai.GenerateContentResponse) []types.NewsSource {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var sources []types.NewsSource
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Source"
		}
		sources = append(sources, types.NewsSource{Title: title, URI: chunk.Web.URI})
	}
	return sources
}
