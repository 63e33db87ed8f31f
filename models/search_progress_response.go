package models

import "roamiq/models/venue"

// SearchProgressResponse is returned by GET /venues/progress while a venue
// search job runs. Venue records appear under one of several keys depending
// on the requested format; FoundVenues resolves them.
type SearchProgressResponse struct {
	Links          Link   `json:"_links"`
	CountTotal     int    `json:"count_total"`
	CountCompleted int    `json:"count_completed"`
	CountForecast  int    `json:"count_forecasted"`
	CountLive      int    `json:"count_live"`
	CountFailed    int    `json:"count_failed"`
	JobFinished    bool   `json:"job_finished"`
	CollectionID   string `json:"collection_id"`
	JobID          string `json:"job_id"`
	Status         string `json:"status"`
	// The fields below only appear once job_finished==true
	Venues          []venue.Venue `json:"venues,omitempty"`
	VenuesForecasts []venue.Venue `json:"venues_forecasts,omitempty"`
	VenueInfo       []venue.Venue `json:"venue_info,omitempty"`
	VenuesN         int           `json:"venues_n,omitempty"`
	BoundingBox     BoundingBox   `json:"bounding_box,omitempty"`
}

// FoundVenues returns the venue records of a finished search regardless of
// which response key carried them. Precedence: venues, venues_forecasts,
// venue_info.
func (r *SearchProgressResponse) FoundVenues() []venue.Venue {
	if r == nil {
		return nil
	}
	if len(r.Venues) > 0 {
		return r.Venues
	}
	if len(r.VenuesForecasts) > 0 {
		return r.VenuesForecasts
	}
	return r.VenueInfo
}
