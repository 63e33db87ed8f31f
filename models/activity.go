package models

import (
	"strconv"
	"strings"
)

// Activity is one itinerary entry submitted for analysis. It has no
// persisted identity; every request carries its activities in full.
type Activity struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Location        string `json:"location,omitempty"`
	IsOutdoor       bool   `json:"is_outdoor"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Category        string `json:"category,omitempty"`
	DayOfWeek       *int   `json:"day_of_week,omitempty"` // 0=Mon..6=Sun
	StartTime       string `json:"start_time,omitempty"`  // "HH:MM"
}

// Hour parses the hour out of StartTime. Returns -1 when the start time
// is absent or malformed; -1 is outside every valid hour check downstream.
func (a Activity) Hour() int {
	if a.StartTime == "" {
		return -1
	}
	h, err := strconv.Atoi(strings.SplitN(a.StartTime, ":", 2)[0])
	if err != nil {
		return -1
	}
	return h
}

// Day returns the planned day of week, or -1 when unspecified.
func (a Activity) Day() int {
	if a.DayOfWeek == nil {
		return -1
	}
	return *a.DayOfWeek
}
