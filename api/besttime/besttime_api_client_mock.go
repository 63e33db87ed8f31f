package besttime

import (
	"fmt"

	"roamiq/config"
	"roamiq/models"
	"roamiq/models/live_forecast"
	"roamiq/util"
)

// BestTimeApiClientMock serves canned fixture responses so the server can
// run end to end without BestTime credentials.
type BestTimeApiClientMock struct {
}

// NewBestTimeApiClientMock creates a new instance of BestTimeApiClientMock
func NewBestTimeApiClientMock() *BestTimeApiClientMock {
	return &BestTimeApiClientMock{}
}

func (c *BestTimeApiClientMock) IsConfigured() bool { return true }

func (c *BestTimeApiClientMock) Close() {}

func (c *BestTimeApiClientMock) SetCredentials(apiKeyPublic string, apiKeyPrivate string) {}

// SearchVenues returns the fixture search progress response regardless of query.
func (c *BestTimeApiClientMock) SearchVenues(query string, num int) (*models.SearchProgressResponse, error) {
	response, err := util.ReadSearchProgressResponseFromJSON(
		config.GetResourcePath(config.SEARCH_PROGRESS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read search progress response from json")
		return nil, err
	}
	return response, nil
}

func (c *BestTimeApiClientMock) GetVenueSearchProgress(jobID, collectionID string) (*models.SearchProgressResponse, error) {
	return c.SearchVenues("", 0)
}

func (c *BestTimeApiClientMock) GetForecastDay(venueID string, dayInt int) (*models.DayForecastResponse, error) {
	response, err := util.ReadDayForecastResponseFromJSON(
		config.GetResourcePath(config.DAY_FORECAST_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read day forecast response from json")
		return nil, err
	}
	response.VenueID = venueID
	return response, nil
}

func (c *BestTimeApiClientMock) GetForecastWeek(venueID string) (*models.WeekForecastResponse, error) {
	day, err := c.GetForecastDay(venueID, 0)
	if err != nil {
		return nil, err
	}
	week := &models.WeekForecastResponse{
		Status:    "OK",
		VenueID:   venueID,
		VenueName: day.VenueName,
	}
	for i := 0; i < 7; i++ {
		week.Analysis = append(week.Analysis, day.Analysis)
	}
	return week, nil
}

func (c *BestTimeApiClientMock) GetLiveForecast(venueID string) (*live_forecast.LiveForecastResponse, error) {
	response, err := util.ReadLiveForecastResponseFromJSON(
		config.GetResourcePath(config.LIVE_FORECAST_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read live forecast response from json")
		return nil, err
	}
	response.VenueInfo.VenueID = venueID
	return response, nil
}

func (c *BestTimeApiClientMock) GetBestTimes(venueID string) (*models.BestTimesResponse, error) {
	day, err := c.GetForecastDay(venueID, 0)
	if err != nil {
		return nil, err
	}
	return &models.BestTimesResponse{
		Analysis: []models.DayAnalysis{day.Analysis},
		Status:   "OK",
		VenueID:  venueID,
	}, nil
}
