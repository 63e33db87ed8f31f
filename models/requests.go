package models

// VenueSearchRequest asks for venues matching a free-text query.
type VenueSearchRequest struct {
	Query string `json:"query"`
	Num   int    `json:"num"`
}

// ItineraryRequest is the shared request body for itinerary analysis and
// the persona optimizers.
type ItineraryRequest struct {
	Destination string     `json:"destination"`
	Activities  []Activity `json:"activities"`
}

// ElderlySuggestionsRequest asks for elderly-friendly venue suggestions in
// a destination. Types defaults to a fixed list of calm venue types and Num
// caps the result size.
type ElderlySuggestionsRequest struct {
	Destination string   `json:"destination"`
	Types       []string `json:"types,omitempty"`
	Num         int      `json:"num"`
}
