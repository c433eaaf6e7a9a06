package gemini

import (
	"testing"

	"pulse/types"
)

func TestMatchIntent(t *testing.T) {
	tests := []struct {
		reply string
		want  types.Intent
	}{
		{"news", types.IntentNews},
		{"intel", types.IntentIntel},
		{"image", types.IntentImage},
		{"video", types.IntentVideo},
		{"VIDEO", types.IntentVideo},
		{"The category is 'image'.", types.IntentImage},
		{"person lookup", types.IntentIntel},
		{"something unexpected", types.IntentNews},
		// Tie-breaks: video beats image beats intel.
		{"a video with an image of a person", types.IntentVideo},
		{"an image of a person", types.IntentImage},
	}

	for _, tt := range tests {
		if got := MatchIntent(tt.reply); got != tt.want {
			t.Errorf("MatchIntent(%q) = %v, want %v", tt.reply, got, tt.want)
		}
	}
}
