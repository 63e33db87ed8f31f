package services

import (
	"errors"
	"log"

	"roamiq/api/besttime"
	"roamiq/models"
	"roamiq/models/live_forecast"
)

// ErrAPINotConfigured marks operations that need live crowd data and have
// no prediction fallback.
var ErrAPINotConfigured = errors.New("crowd data API keys are not configured")

// ErrNoVenuesFound marks a search that completed but returned nothing.
var ErrNoVenuesFound = errors.New("no venues found for the given destination")

// VenueInfo is the venue metadata attached to each analyzed activity.
type VenueInfo struct {
	Address string `json:"address,omitempty"`
	Type    string `json:"type,omitempty"`
}

// ActivityCrowdReport is the crowd analysis for one itinerary activity.
type ActivityCrowdReport struct {
	Activity              string    `json:"activity"`
	VenueName             string    `json:"venue_name,omitempty"`
	VenueID               string    `json:"venue_id,omitempty"`
	BusynessAtPlannedTime float64   `json:"busyness_at_planned_time"`
	OptimizationTip       string    `json:"optimization_tip"`
	VenueInfo             VenueInfo `json:"venue_info"`
	IsPredicted           bool      `json:"is_predicted"`
}

// ItineraryAnalysisResponse is the full crowd analysis of an itinerary.
type ItineraryAnalysisResponse struct {
	Destination   string                `json:"destination"`
	Analysis      []ActivityCrowdReport `json:"analysis"`
	APIConfigured bool                  `json:"api_configured"`
}

// CrowdService wraps the crowd data API with the prediction fallback. The
// pass-through lookups require configured API keys; itinerary analysis never
// does, it degrades to prediction instead.
type CrowdService struct {
	besttimeApi besttime.BestTimeAPI
	resolver    *CrowdDataResolver
}

func NewCrowdService(bestTimeApi besttime.BestTimeAPI, resolver *CrowdDataResolver) *CrowdService {
	return &CrowdService{
		besttimeApi: bestTimeApi,
		resolver:    resolver,
	}
}

func (cs *CrowdService) IsConfigured() bool {
	return cs.besttimeApi != nil && cs.besttimeApi.IsConfigured()
}

// SearchVenues searches venues by name or area and returns the finished
// search payload with foot-traffic data.
func (cs *CrowdService) SearchVenues(query string, num int) (*models.SearchProgressResponse, error) {
	if !cs.IsConfigured() {
		return nil, ErrAPINotConfigured
	}
	return cs.besttimeApi.SearchVenues(query, num)
}

// GetForecastDay returns the crowd forecast of one venue for one day.
func (cs *CrowdService) GetForecastDay(venueID string, day int) (*models.DayForecastResponse, error) {
	if !cs.IsConfigured() {
		return nil, ErrAPINotConfigured
	}
	return cs.besttimeApi.GetForecastDay(venueID, day)
}

// GetForecastWeek returns the full-week crowd forecast of one venue.
func (cs *CrowdService) GetForecastWeek(venueID string) (*models.WeekForecastResponse, error) {
	if !cs.IsConfigured() {
		return nil, ErrAPINotConfigured
	}
	return cs.besttimeApi.GetForecastWeek(venueID)
}

// GetLiveForecast returns the current live busyness of one venue.
func (cs *CrowdService) GetLiveForecast(venueID string) (*live_forecast.LiveForecastResponse, error) {
	if !cs.IsConfigured() {
		return nil, ErrAPINotConfigured
	}
	return cs.besttimeApi.GetLiveForecast(venueID)
}

// GetBestTimes returns the quietest and busiest windows of one venue.
func (cs *CrowdService) GetBestTimes(venueID string) (*models.BestTimesResponse, error) {
	if !cs.IsConfigured() {
		return nil, ErrAPINotConfigured
	}
	return cs.besttimeApi.GetBestTimes(venueID)
}

// AnalyzeItinerary resolves crowd levels for every activity in the
// itinerary. Activities that cannot be matched to live data carry predicted
// figures and are flagged as such; the call as a whole cannot fail.
func (cs *CrowdService) AnalyzeItinerary(req models.ItineraryRequest) *ItineraryAnalysisResponse {
	apiConfigured := cs.IsConfigured()
	if !apiConfigured {
		log.Println("[CrowdService] API not configured, returning predicted crowd data")
	}

	reports := make([]ActivityCrowdReport, 0, len(req.Activities))
	for _, activity := range req.Activities {
		data := cs.resolver.Resolve(req.Destination, activity)

		report := ActivityCrowdReport{
			Activity:              activity.Title,
			BusynessAtPlannedTime: data.Busyness,
			OptimizationTip:       data.Tip,
			VenueInfo:             VenueInfo{Type: data.VenueType},
			IsPredicted:           data.Predicted,
		}
		if data.Venue != nil {
			report.VenueName = data.Venue.VenueName
			report.VenueID = data.Venue.VenueID
			report.VenueInfo.Address = data.Venue.VenueAddress
			if data.Venue.VenueType != "" {
				report.VenueInfo.Type = data.Venue.VenueType
			}
		}
		reports = append(reports, report)
	}

	return &ItineraryAnalysisResponse{
		Destination:   req.Destination,
		Analysis:      reports,
		APIConfigured: apiConfigured,
	}
}
