package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pulse/media"
	"pulse/types"
)

var dossierSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"fullName":              {Type: genai.TypeString},
		"occupation":            {Type: genai.TypeString},
		"currentResidence":      {Type: genai.TypeString},
		"familyLinks":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"publicIdentifiers":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"recentActivity":        {Type: genai.TypeString},
		"digitalFootprintScore": {Type: genai.TypeNumber},
	},
}

type dossierPayload struct {
	FullName              string   `json:"fullName"`
	Occupation            string   `json:"occupation"`
	CurrentResidence      string   `json:"currentResidence"`
	FamilyLinks           []string `json:"familyLinks"`
	PublicIdentifiers     []string `json:"publicIdentifiers"`
	RecentActivity        string   `json:"recentActivity"`
	DigitalFootprintScore float64  `json:"digitalFootprintScore"`
}

// LookupIdentity builds a dossier for the queried subject with one grounded
// structured-output call.
func (e *Engine) LookupIdentity(ctx context.Context, query string) (*types.PersonDossier, error) {
	prompt := fmt.Sprintf("CRITICAL OSINT: Detailed dossier for %q. Format as JSON.", query)

	resp, err := e.client.Models.GenerateContent(ctx, e.cfg.IntelModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType: "application/json",
		ResponseSchema:   dossierSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("identity lookup failed: %w", err)
	}

	var payload dossierPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse dossier response: %w", err)
	}

	return &types.PersonDossier{
		FullName:              payload.FullName,
		Occupation:            payload.Occupation,
		CurrentResidence:      payload.CurrentResidence,
		FamilyLinks:           payload.FamilyLinks,
		PublicIdentifiers:     payload.PublicIdentifiers,
		RecentActivity:        payload.RecentActivity,
		DigitalFootprintScore: payload.DigitalFootprintScore,
		ImageURL:              media.PlaceholderPortrait(payload.FullName),
	}, nil
}
