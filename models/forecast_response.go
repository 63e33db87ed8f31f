package models

import "roamiq/models/venue"

// DayForecastResponse is the top-level JSON returned by GET /forecasts/daily.
type DayForecastResponse struct {
	Analysis     DayAnalysis `json:"analysis"`
	Status       string      `json:"status"`
	VenueID      string      `json:"venue_id"`
	VenueName    string      `json:"venue_name"`
	VenueAddress string      `json:"venue_address"`
}

// DayAnalysis holds one day's 24 hourly busyness values plus summary info.
type DayAnalysis struct {
	DayRaw  []float64      `json:"day_raw"`
	DayInfo *venue.DayInfo `json:"day_info,omitempty"`

	BusyHours  []int `json:"busy_hours,omitempty"`
	QuietHours []int `json:"quiet_hours,omitempty"`
}

// WeekForecastResponse is the top-level JSON returned by GET /forecasts/weekly.
type WeekForecastResponse struct {
	Analysis     []DayAnalysis `json:"analysis"`
	Status       string        `json:"status"`
	VenueID      string        `json:"venue_id"`
	VenueName    string        `json:"venue_name"`
	VenueAddress string        `json:"venue_address"`
	Window       *RawWindow    `json:"window,omitempty"`
}

// RawWindow describes the time scope of a forecast response.
type RawWindow struct {
	TimeWindowStart    int    `json:"time_window_start"`
	TimeWindowStart12H string `json:"time_window_start_12h"`
	DayWindowStartInt  int    `json:"day_window_start_int"`
	DayWindowStartTxt  string `json:"day_window_start_txt"`
	DayWindowEndInt    int    `json:"day_window_end_int"`
	DayWindowEndTxt    string `json:"day_window_end_txt"`
	TimeWindowEnd      int    `json:"time_window_end"`
	TimeWindowEnd12H   string `json:"time_window_end_12h"`
	WeekWindow         string `json:"week_window"`
}

// BestTimesResponse is the top-level JSON returned by GET /forecasts/best.
type BestTimesResponse struct {
	Analysis     []DayAnalysis `json:"analysis"`
	Status       string        `json:"status"`
	VenueID      string        `json:"venue_id"`
	VenueName    string        `json:"venue_name"`
	VenueAddress string        `json:"venue_address"`
}
