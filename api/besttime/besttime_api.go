package besttime

import (
	"roamiq/models"
	"roamiq/models/live_forecast"
)

// BestTimeAPI defines the interface for interacting with the BestTime API
type BestTimeAPI interface {
	// IsConfigured reports whether both API keys are set to usable values.
	// Callers must treat an unconfigured client as a guaranteed-fail path
	// and go straight to prediction, never as an error to propagate.
	IsConfigured() bool
	SetCredentials(apiKeyPublic string, apiKeyPrivate string)

	// SearchVenues starts a venue search job and polls it to completion
	// (bounded). The returned progress payload embeds the venue records
	// once the job finished; an unfinished payload simply carries no
	// venues and callers fall back to prediction.
	SearchVenues(query string, num int) (*models.SearchProgressResponse, error)
	GetVenueSearchProgress(jobID, collectionID string) (*models.SearchProgressResponse, error)

	GetForecastDay(venueID string, dayInt int) (*models.DayForecastResponse, error)
	GetForecastWeek(venueID string) (*models.WeekForecastResponse, error)
	GetLiveForecast(venueID string) (*live_forecast.LiveForecastResponse, error)
	GetBestTimes(venueID string) (*models.BestTimesResponse, error)

	// Close releases any resources held by the client. The client is built
	// once per process and closed on shutdown.
	Close()
}
