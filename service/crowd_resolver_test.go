package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"roamiq/models"
	"roamiq/models/live_forecast"
	"roamiq/models/venue"
)

// stubBestTimeAPI lets each test script the upstream behavior per call.
type stubBestTimeAPI struct {
	configured    bool
	searchFn      func(query string, num int) (*models.SearchProgressResponse, error)
	forecastDayFn func(venueID string, day int) (*models.DayForecastResponse, error)
}

func (s *stubBestTimeAPI) IsConfigured() bool                    { return s.configured }
func (s *stubBestTimeAPI) SetCredentials(public, private string) {}
func (s *stubBestTimeAPI) Close()                                {}

func (s *stubBestTimeAPI) SearchVenues(query string, num int) (*models.SearchProgressResponse, error) {
	if s.searchFn == nil {
		return nil, errors.New("search not scripted")
	}
	return s.searchFn(query, num)
}

func (s *stubBestTimeAPI) GetVenueSearchProgress(jobID, collectionID string) (*models.SearchProgressResponse, error) {
	return nil, errors.New("not scripted")
}

func (s *stubBestTimeAPI) GetForecastDay(venueID string, day int) (*models.DayForecastResponse, error) {
	if s.forecastDayFn == nil {
		return nil, errors.New("forecast not scripted")
	}
	return s.forecastDayFn(venueID, day)
}

func (s *stubBestTimeAPI) GetForecastWeek(venueID string) (*models.WeekForecastResponse, error) {
	return nil, errors.New("not scripted")
}

func (s *stubBestTimeAPI) GetLiveForecast(venueID string) (*live_forecast.LiveForecastResponse, error) {
	return nil, errors.New("not scripted")
}

func (s *stubBestTimeAPI) GetBestTimes(venueID string) (*models.BestTimesResponse, error) {
	return nil, errors.New("not scripted")
}

func intPtr(v int) *int { return &v }

func newResolver(api *stubBestTimeAPI) *CrowdDataResolver {
	return NewCrowdDataResolver(api, NewCrowdPredictor())
}

func beachActivity() models.Activity {
	return models.Activity{
		Title:     "Juhu Beach",
		StartTime: "18:00",
		DayOfWeek: intPtr(5),
	}
}

func TestResolve_UnconfiguredPredicts(t *testing.T) {
	resolver := newResolver(&stubBestTimeAPI{configured: false})

	data := resolver.Resolve("Mumbai", beachActivity())

	assert.True(t, data.Predicted)
	assert.Equal(t, "beach", data.VenueType)
	assert.Equal(t, 98.0, data.Busyness)
	assert.Nil(t, data.Venue)
}

func TestResolve_LiveCellWins(t *testing.T) {
	week := flatWeek(40)
	week[5][18] = 88
	api := &stubBestTimeAPI{
		configured: true,
		searchFn: func(query string, num int) (*models.SearchProgressResponse, error) {
			assert.Equal(t, "Juhu Beach in Mumbai", query)
			assert.Equal(t, 1, num)
			return &models.SearchProgressResponse{
				JobFinished: true,
				Venues:      []venue.Venue{*venueWithWeekRaw(week)},
			}, nil
		},
	}
	resolver := newResolver(api)

	data := resolver.Resolve("Mumbai", beachActivity())

	assert.False(t, data.Predicted)
	assert.Equal(t, 88.0, data.Busyness)
	assert.NotNil(t, data.Venue)
	assert.Contains(t, data.Tip, "🔴")
}

func TestResolve_LocationOverridesDestinationQuery(t *testing.T) {
	var gotQuery string
	api := &stubBestTimeAPI{
		configured: true,
		searchFn: func(query string, num int) (*models.SearchProgressResponse, error) {
			gotQuery = query
			return &models.SearchProgressResponse{JobFinished: true}, nil
		},
	}
	resolver := newResolver(api)

	activity := beachActivity()
	activity.Location = "Juhu Tara Road"
	resolver.Resolve("Mumbai", activity)

	assert.Equal(t, "Juhu Beach Juhu Tara Road", gotQuery)
}

func TestResolve_SearchErrorFallsBackToPrediction(t *testing.T) {
	api := &stubBestTimeAPI{
		configured: true,
		searchFn: func(query string, num int) (*models.SearchProgressResponse, error) {
			return nil, errors.New("upstream down")
		},
	}
	resolver := newResolver(api)

	data := resolver.Resolve("Mumbai", beachActivity())

	assert.True(t, data.Predicted)
	assert.Equal(t, 98.0, data.Busyness)
}

func TestResolve_NoVenuesFallsBackToPrediction(t *testing.T) {
	api := &stubBestTimeAPI{
		configured: true,
		searchFn: func(query string, num int) (*models.SearchProgressResponse, error) {
			return &models.SearchProgressResponse{JobFinished: true}, nil
		},
	}
	resolver := newResolver(api)

	data := resolver.Resolve("Mumbai", beachActivity())

	assert.True(t, data.Predicted)
	assert.Nil(t, data.Venue)
}

func TestResolve_DayForecastRetry(t *testing.T) {
	dayRaw := make([]float64, 24)
	dayRaw[18] = 66

	var forecastCalls int
	api := &stubBestTimeAPI{
		configured: true,
		searchFn: func(query string, num int) (*models.SearchProgressResponse, error) {
			// Venue found but with no embedded forecast data.
			return &models.SearchProgressResponse{
				JobFinished: true,
				Venues:      []venue.Venue{{VenueID: "ven_123", VenueName: "Juhu Beach"}},
			}, nil
		},
		forecastDayFn: func(venueID string, day int) (*models.DayForecastResponse, error) {
			forecastCalls++
			assert.Equal(t, "ven_123", venueID)
			assert.Equal(t, 5, day)
			return &models.DayForecastResponse{
				Analysis: models.DayAnalysis{DayRaw: dayRaw},
				Status:   "OK",
				VenueID:  venueID,
			}, nil
		},
	}
	resolver := newResolver(api)

	data := resolver.Resolve("Mumbai", beachActivity())

	assert.Equal(t, 1, forecastCalls)
	assert.False(t, data.Predicted)
	assert.Equal(t, 66.0, data.Busyness)
}

func TestResolve_RetryFailurePredictsWithVenueAttached(t *testing.T) {
	api := &stubBestTimeAPI{
		configured: true,
		searchFn: func(query string, num int) (*models.SearchProgressResponse, error) {
			return &models.SearchProgressResponse{
				JobFinished: true,
				Venues:      []venue.Venue{{VenueID: "ven_123", VenueName: "Juhu Beach"}},
			}, nil
		},
		forecastDayFn: func(venueID string, day int) (*models.DayForecastResponse, error) {
			return nil, errors.New("forecast unavailable")
		},
	}
	resolver := newResolver(api)

	data := resolver.Resolve("Mumbai", beachActivity())

	assert.True(t, data.Predicted)
	assert.NotNil(t, data.Venue)
	assert.Equal(t, 98.0, data.Busyness)
}

func TestLiveTipBands(t *testing.T) {
	assert.Contains(t, liveTip(85), "🔴")
	assert.Contains(t, liveTip(65), "🟡")
	assert.Contains(t, liveTip(45), "🟢")
	assert.Contains(t, liveTip(10), "✅")
}
