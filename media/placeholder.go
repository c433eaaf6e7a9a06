package media

import (
	"net/url"

	"pulse/types"
)

// Sample clips used when a video story arrives without a media reference.
var videoSamples = []string{
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
}

const (
	stillBase    = "https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7?auto=format&fit=crop&q=80&w=800"
	avatarBase   = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&q=80&w=100"
	portraitBase = "https://images.unsplash.com/photo-1511367461989-f85a21fda167?auto=format&fit=crop&q=80&w=400"
)

// PlaceholderMedia returns a deterministic media reference for a story that
// arrived without one: video stories rotate through the sample clips by batch
// position, everything else gets a still keyed by title.
func PlaceholderMedia(kind types.MediaKind, title string, index int) string {
	if kind == types.MediaVideo {
		return videoSamples[index%len(videoSamples)]
	}
	return stillBase + "&q=" + url.QueryEscape(title)
}

// PlaceholderAvatar returns a deterministic avatar reference for a handle.
func PlaceholderAvatar(handle string) string {
	return avatarBase + "&q=" + url.QueryEscape(handle)
}

// PlaceholderPortrait returns a deterministic portrait reference for a
// dossier subject.
func PlaceholderPortrait(fullName string) string {
	return portraitBase + "&q=" + url.QueryEscape(fullName)
}
