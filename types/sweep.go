package types

// StoryCandidate is one raw story returned by a sweep, before the aggregator
// assigns identity, capture time, shared citations, and placeholder media.
// The json tags match the sweep response schema sent to the model.
type StoryCandidate struct {
	AccountHandle   string    `json:"accountHandle"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	DetailedContent string    `json:"detailedContent"`
	Sentiment       Sentiment `json:"sentiment"`
	Category        string    `json:"category"`
	Platform        string    `json:"platform"`
	MediaType       MediaKind `json:"mediaType"`

	// MediaURL is only populated by sources that already carry media, such
	// as the RSS supplement. Model sweeps leave it empty and the aggregator
	// derives a placeholder.
	MediaURL string `json:"-"`
}
