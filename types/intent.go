package types

// Intent is the classified action category for a raw user request.
type Intent int

const (
	IntentNews Intent = iota
	IntentIntel
	IntentImage
	IntentVideo
)

func (i Intent) String() string {
	switch i {
	case IntentIntel:
		return "intel"
	case IntentImage:
		return "image"
	case IntentVideo:
		return "video"
	default:
		return "news"
	}
}

// ViewMode is the active display mode. Exactly one mode is active at a time;
// switching modes does not destroy the other collections.
type ViewMode string

const (
	ModeNews     ViewMode = "news"
	ModeIntel    ViewMode = "intel"
	ModeReel     ViewMode = "reel"
	ModeCreative ViewMode = "creative"
)

// ParseViewMode maps a mode name to a ViewMode, defaulting to news.
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ModeNews, ModeIntel, ModeReel, ModeCreative:
		return ViewMode(s), true
	}
	return ModeNews, false
}
