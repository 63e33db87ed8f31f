package venue

import (
	"encoding/json"
	"fmt"
)

// DayInfo summarizes a single day's forecast.
type DayInfo struct {
	DayInt      int    `json:"day_int"`
	DayMax      int    `json:"day_max"`
	DayMean     int    `json:"day_mean"`
	DayRankMax  int    `json:"day_rank_max"`
	DayRankMean int    `json:"day_rank_mean"`
	DayText     string `json:"day_text"`

	// The API returns these either as an hour integer or as a string
	// ("closed"); always read as string.
	VenueOpen   string `json:"venue_open"`
	VenueClosed string `json:"venue_closed"`
}

// UnmarshalJSON coerces the open/close fields to strings.
func (d *DayInfo) UnmarshalJSON(data []byte) error {
	type Alias DayInfo
	aux := &struct {
		VenueOpen   interface{} `json:"venue_open"`
		VenueClosed interface{} `json:"venue_closed"`
		*Alias
	}{
		Alias: (*Alias)(d),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.VenueOpen = coerceHourString(aux.VenueOpen)
	d.VenueClosed = coerceHourString(aux.VenueClosed)
	return nil
}

func coerceHourString(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%d", int(val))
	case string:
		return val
	default:
		return ""
	}
}
