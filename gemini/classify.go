package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pulse/types"
)

// Classify routes a raw user prompt to one of the four action categories with
// a single model call. Remote errors and empty replies both surface as a
// classification failure; there is no local retry.
func (e *Engine) Classify(ctx context.Context, prompt string) (types.Intent, error) {
	instruction := fmt.Sprintf(`Analyze the user prompt: %q.
Categorize it into one of: 'news' (tracking trends/events), 'intel' (searching for a person/handle/phone), 'image' (creating/generating/editing a picture), or 'video' (creating/generating a movie/clip).
Return ONLY the category name.`, prompt)

	resp, err := e.client.Models.GenerateContent(ctx, e.cfg.ClassifyModel, genai.Text(instruction), nil)
	if err != nil {
		return types.IntentNews, fmt.Errorf("classification failed: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return types.IntentNews, fmt.Errorf("classification returned no text")
	}
	return MatchIntent(reply), nil
}

// MatchIntent maps a free-text category reply to an Intent. The keyword
// priority is a deliberate tie-break when the reply contains several
// keywords: video beats image beats intel; anything else is news.
func MatchIntent(reply string) types.Intent {
	reply = strings.ToLower(reply)
	switch {
	case strings.Contains(reply, "video"):
		return types.IntentVideo
	case strings.Contains(reply, "image"):
		return types.IntentImage
	case strings.Contains(reply, "intel"), strings.Contains(reply, "person"):
		return types.IntentIntel
	default:
		return types.IntentNews
	}
}
