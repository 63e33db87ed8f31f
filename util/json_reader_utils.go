package util

import (
	"encoding/json"
	"fmt"
	"os"

	"roamiq/models"
	"roamiq/models/live_forecast"
)

// ReadSearchProgressResponseFromJSON loads a SearchProgressResponse from JSON on disk.
func ReadSearchProgressResponseFromJSON(filePath string) (*models.SearchProgressResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SearchProgressResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SearchProgressResponse: %w", err)
	}
	return &resp, nil
}

// ReadDayForecastResponseFromJSON loads a DayForecastResponse from JSON on disk.
func ReadDayForecastResponseFromJSON(filePath string) (*models.DayForecastResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.DayForecastResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DayForecastResponse: %w", err)
	}
	return &resp, nil
}

// ReadLiveForecastResponseFromJSON loads a LiveForecastResponse from JSON on disk.
func ReadLiveForecastResponseFromJSON(filePath string) (*live_forecast.LiveForecastResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp live_forecast.LiveForecastResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal LiveForecastResponse: %w", err)
	}
	return &resp, nil
}
