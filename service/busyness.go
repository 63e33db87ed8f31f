package services

import (
	"math"

	"roamiq/models/venue"
)

// busynessStrategy attempts to pull a busyness percentage out of a venue
// payload. It reports false when the venue carries no usable data for it.
type busynessStrategy struct {
	name    string
	extract func(v *venue.Venue, day, hour int) (float64, bool)
}

// Strategies run in order; the first hit wins. The precedence matters: a
// concrete day+hour cell beats a weekly average, which beats whatever loose
// busyness field the search response happened to include.
var busynessStrategies = []busynessStrategy{
	{name: "weekRawCell", extract: weekRawCell},
	{name: "weeklyMean", extract: weeklyMean},
	{name: "directField", extract: directField},
}

// ExtractBusyness tries each extraction strategy against the venue. Pass day
// and hour as -1 when unknown. Returns false when no strategy yields data.
func ExtractBusyness(v *venue.Venue, day, hour int) (float64, bool) {
	if v == nil {
		return 0, false
	}
	for _, s := range busynessStrategies {
		if pct, ok := s.extract(v, day, hour); ok {
			return pct, ok
		}
	}
	return 0, false
}

// weekRawCell reads the exact day+hour cell from the 7x24 raw matrix.
func weekRawCell(v *venue.Venue, day, hour int) (float64, bool) {
	if day < 0 || hour < 0 {
		return 0, false
	}
	weekRaw := v.WeekRaw()
	if day >= len(weekRaw) {
		return 0, false
	}
	dayRow := weekRaw[day]
	if hour >= len(dayRow) {
		return 0, false
	}
	if val := dayRow[hour]; val >= 0 {
		return val, true
	}
	return 0, false
}

// weeklyMean averages every positive cell of the raw matrix, rounded to one
// decimal. Zero and negative cells mean "closed" or "no data" upstream.
func weeklyMean(v *venue.Venue, _, _ int) (float64, bool) {
	weekRaw := v.WeekRaw()
	sum := 0.0
	count := 0
	for _, dayRow := range weekRaw {
		for _, val := range dayRow {
			if val > 0 {
				sum += val
				count++
			}
		}
	}
	if count == 0 {
		return 0, false
	}
	return roundTo(sum/float64(count), 1), true
}

// directField falls back to the loose busyness fields some responses carry
// directly on the venue record.
func directField(v *venue.Venue, _, _ int) (float64, bool) {
	for _, field := range []*float64{v.VenueForecastedBusyness, v.Busyness, v.BusyPct} {
		if field != nil {
			return *field, true
		}
	}
	return 0, false
}

// WeeklyMeanBusyness exposes the weekly-average strategy on its own, for
// callers that never have a planned day or hour.
func WeeklyMeanBusyness(v *venue.Venue) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return weeklyMean(v, -1, -1)
}

func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
