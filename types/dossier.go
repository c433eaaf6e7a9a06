package types

// GeoLocation is an optional coordinate plus human-readable address.
type GeoLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// PersonDossier is the structured intelligence record for one looked-up
// subject. A session holds at most one; each successful lookup replaces it
// wholesale, never merges.
type PersonDossier struct {
	FullName              string       `json:"full_name"`
	Occupation            string       `json:"occupation"`
	CurrentResidence      string       `json:"current_residence"`
	FamilyLinks           []string     `json:"family_links,omitempty"`
	PublicIdentifiers     []string     `json:"public_identifiers,omitempty"`
	RecentActivity        string       `json:"recent_activity"`
	DigitalFootprintScore float64      `json:"digital_footprint_score"`
	Location              *GeoLocation `json:"location,omitempty"`
	ImageURL              string       `json:"image_url,omitempty"`
}
