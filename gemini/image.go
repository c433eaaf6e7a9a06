package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GenerateImage synthesizes a single square image and returns a local media
// reference. One round trip; no polling.
func (e *Engine) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.Models.GenerateContent(ctx, e.cfg.ImageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: "1:1"},
	})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData == nil {
				continue
			}
			id := fmt.Sprintf("img_%d", time.Now().UnixMilli())
			return e.store.SaveBytes(id, part.InlineData.MIMEType, part.InlineData.Data)
		}
	}
	return "", fmt.Errorf("no image data returned")
}
