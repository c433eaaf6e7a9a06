package types

import (
	"testing"
	"time"
)

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		input string
		want  ViewMode
		ok    bool
	}{
		{"news", ModeNews, true},
		{"intel", ModeIntel, true},
		{"reel", ModeReel, true},
		{"creative", ModeCreative, true},
		{"hologram", ModeNews, false},
		{"", ModeNews, false},
	}
	for _, tt := range tests {
		got, ok := ParseViewMode(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseViewMode(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIntentString(t *testing.T) {
	tests := []struct {
		intent Intent
		want   string
	}{
		{IntentNews, "news"},
		{IntentIntel, "intel"},
		{IntentImage, "image"},
		{IntentVideo, "video"},
	}
	for _, tt := range tests {
		if got := tt.intent.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.intent, got, tt.want)
		}
	}
}

func TestNewsID(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	if got := NewsID(at, 3); got != "1700000000000-3" {
		t.Errorf("NewsID = %q", got)
	}
}
