package venue

// FootTrafficForecast is the raw-format forecast block embedded in a venue
// record from the search progress endpoint.
type FootTrafficForecast struct {
	Analysis ForecastAnalysis `json:"analysis"`
}

// ForecastAnalysis carries the per-hour busyness percentages. WeekRaw is a
// 7x24 matrix (Mon..Sun rows, hour columns, values 0-100); DayRaw is a
// single day's 24 hourly values.
type ForecastAnalysis struct {
	WeekRaw [][]float64 `json:"week_raw,omitempty"`
	DayRaw  []float64   `json:"day_raw,omitempty"`
	DayInfo *DayInfo    `json:"day_info,omitempty"`
}
