package besttime

import (
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"roamiq/api"
	"roamiq/config"
	"roamiq/models"
	"roamiq/models/live_forecast"
)

// BestTimeApiClient embeds the common HTTPClient
type BestTimeApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKeyPrivate string
	apiKeyPublic  string

	// Poll loop knobs, defaulted from config; tests shrink them.
	PollInterval time.Duration
	MaxPolls     int
}

// NewBestTimeApiClient creates a new instance of BestTimeApiClient
func NewBestTimeApiClient(httpClient *api.HTTPClient) *BestTimeApiClient {
	return &BestTimeApiClient{
		HTTPClient:   httpClient,
		PollInterval: config.BEST_TIME_SEARCH_POLL_INTERVAL_SECONDS * time.Second,
		MaxPolls:     config.BEST_TIME_SEARCH_MAX_POLLS,
	}
}

func (c *BestTimeApiClient) SetCredentials(apiKeyPublic string, apiKeyPrivate string) {
	c.apiKeyPublic = apiKeyPublic
	c.apiKeyPrivate = apiKeyPrivate
}

// IsConfigured reports whether both keys are present and neither still
// carries the .env.example placeholder.
func (c *BestTimeApiClient) IsConfigured() bool {
	if c.apiKeyPrivate == "" || c.apiKeyPublic == "" {
		return false
	}
	if strings.Contains(c.apiKeyPrivate, config.BEST_TIME_PRIVATE_KEY_PLACEHOLDER) {
		return false
	}
	if strings.Contains(c.apiKeyPublic, config.BEST_TIME_PUBLIC_KEY_PLACEHOLDER) {
		return false
	}
	return true
}

// SearchVenues starts a venue search job and polls the progress endpoint
// until the job finishes or the poll budget runs out. Individual poll
// failures are swallowed; only the budget terminates the loop. The method
// never fails after a successful job start: on exhaustion it returns the
// last progress payload observed, or a payload synthesized from the job
// start response if no poll ever succeeded.
func (c *BestTimeApiClient) SearchVenues(query string, num int) (*models.SearchProgressResponse, error) {
	log.Printf("[BestTimeApiClient] SearchVenues: q=%q num=%d", query, num)

	params := url.Values{}
	params.Set("api_key_private", c.apiKeyPrivate)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))

	var start models.SearchVenuesResponse
	if err := c.Request("POST", "/venues/search", params, &start); err != nil {
		return nil, err
	}

	if start.JobID == "" || start.CollectionID == "" {
		log.Printf("[BestTimeApiClient] search returned no job handle (status=%q)", start.Status)
		return progressFromStart(&start), nil
	}

	log.Printf("[BestTimeApiClient] search job started: job_id=%s collection_id=%s", start.JobID, start.CollectionID)

	var last *models.SearchProgressResponse
	for i := 0; i < c.MaxPolls; i++ {
		time.Sleep(c.PollInterval)

		progress, err := c.GetVenueSearchProgress(start.JobID, start.CollectionID)
		if err != nil {
			log.Printf("[BestTimeApiClient] poll %d/%d failed: %v", i+1, c.MaxPolls, err)
			continue
		}
		last = progress

		log.Printf("[BestTimeApiClient] poll %d/%d: finished=%v completed=%d/%d",
			i+1, c.MaxPolls, progress.JobFinished, progress.CountCompleted, progress.CountTotal)

		if progress.JobFinished {
			return progress, nil
		}
	}

	log.Printf("[BestTimeApiClient] search job %s timed out after %v", start.JobID, time.Duration(c.MaxPolls)*c.PollInterval)
	if last != nil {
		return last, nil
	}
	return progressFromStart(&start), nil
}

// progressFromStart wraps a job-start payload in the progress shape so the
// poll-timeout path always has a value to hand back.
func progressFromStart(start *models.SearchVenuesResponse) *models.SearchProgressResponse {
	return &models.SearchProgressResponse{
		Links:        start.Links,
		CollectionID: start.CollectionID,
		JobID:        start.JobID,
		Status:       start.Status,
		BoundingBox:  start.BoundingBox,
	}
}

func (c *BestTimeApiClient) GetVenueSearchProgress(jobID, collectionID string) (*models.SearchProgressResponse, error) {
	params := url.Values{}
	params.Set("job_id", jobID)
	params.Set("collection_id", collectionID)
	params.Set("format", "raw")

	var response models.SearchProgressResponse
	if err := c.Request("GET", "/venues/progress", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetForecastDay retrieves the hourly forecast for a specific day.
// dayInt: 0=Mon .. 6=Sun.
func (c *BestTimeApiClient) GetForecastDay(venueID string, dayInt int) (*models.DayForecastResponse, error) {
	params := c.publicParams(venueID)
	params.Set("day_int", strconv.Itoa(dayInt))

	var response models.DayForecastResponse
	if err := c.Request("GET", "/forecasts/daily", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetForecastWeek retrieves the weekly forecast overview for a venue.
func (c *BestTimeApiClient) GetForecastWeek(venueID string) (*models.WeekForecastResponse, error) {
	var response models.WeekForecastResponse
	if err := c.Request("GET", "/forecasts/weekly", c.publicParams(venueID), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetLiveForecast retrieves current live busyness for a venue.
func (c *BestTimeApiClient) GetLiveForecast(venueID string) (*live_forecast.LiveForecastResponse, error) {
	var response live_forecast.LiveForecastResponse
	if err := c.Request("GET", "/forecasts/live", c.publicParams(venueID), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetBestTimes retrieves the peak and quiet hours for a venue.
func (c *BestTimeApiClient) GetBestTimes(venueID string) (*models.BestTimesResponse, error) {
	var response models.BestTimesResponse
	if err := c.Request("GET", "/forecasts/best", c.publicParams(venueID), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BestTimeApiClient) publicParams(venueID string) url.Values {
	params := url.Values{}
	params.Set("api_key_public", c.apiKeyPublic)
	params.Set("venue_id", venueID)
	return params
}
