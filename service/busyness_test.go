package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roamiq/models/venue"
)

func venueWithWeekRaw(weekRaw [][]float64) *venue.Venue {
	return &venue.Venue{
		VenueName: "Test Venue",
		VenueFootTrafficForecast: &venue.FootTrafficForecast{
			Analysis: venue.ForecastAnalysis{WeekRaw: weekRaw},
		},
	}
}

func flatWeek(value float64) [][]float64 {
	week := make([][]float64, 7)
	for d := range week {
		week[d] = make([]float64, 24)
		for h := range week[d] {
			week[d][h] = value
		}
	}
	return week
}

func TestExtractBusyness_WeekRawCellWins(t *testing.T) {
	week := flatWeek(40)
	week[4][18] = 90
	v := venueWithWeekRaw(week)
	direct := 10.0
	v.Busyness = &direct

	pct, ok := ExtractBusyness(v, 4, 18)

	assert.True(t, ok)
	assert.Equal(t, 90.0, pct)
}

func TestExtractBusyness_FallsBackToWeeklyMean(t *testing.T) {
	week := flatWeek(0)
	week[0][10] = 30
	week[2][12] = 60
	v := venueWithWeekRaw(week)

	// Unknown hour, so the cell strategy cannot apply. Mean of the two
	// positive cells is 45; zero cells are excluded.
	pct, ok := ExtractBusyness(v, 0, -1)

	assert.True(t, ok)
	assert.Equal(t, 45.0, pct)
}

func TestExtractBusyness_WeeklyMeanRoundsToOneDecimal(t *testing.T) {
	week := flatWeek(0)
	week[0][0] = 10
	week[0][1] = 20
	week[0][2] = 25
	v := venueWithWeekRaw(week)

	pct, ok := ExtractBusyness(v, -1, -1)

	assert.True(t, ok)
	assert.Equal(t, 18.3, pct)
}

func TestExtractBusyness_DirectFieldFallback(t *testing.T) {
	forecasted := 72.0
	v := &venue.Venue{VenueForecastedBusyness: &forecasted}

	pct, ok := ExtractBusyness(v, 3, 12)

	assert.True(t, ok)
	assert.Equal(t, 72.0, pct)
}

func TestExtractBusyness_DirectFieldPrecedence(t *testing.T) {
	forecasted, busy := 72.0, 55.0
	v := &venue.Venue{
		VenueForecastedBusyness: &forecasted,
		Busyness:                &busy,
	}

	pct, _ := ExtractBusyness(v, -1, -1)
	assert.Equal(t, 72.0, pct)
}

func TestExtractBusyness_NoData(t *testing.T) {
	_, ok := ExtractBusyness(&venue.Venue{}, 0, 12)
	assert.False(t, ok)

	// All-zero matrix means the venue never reported a positive sample.
	_, ok = ExtractBusyness(venueWithWeekRaw(flatWeek(0)), -1, -1)
	assert.False(t, ok)

	_, ok = ExtractBusyness(nil, 0, 12)
	assert.False(t, ok)
}

func TestExtractBusyness_OutOfRangeIndexes(t *testing.T) {
	v := venueWithWeekRaw(flatWeek(0))

	// Day or hour beyond the matrix falls through without panicking.
	_, ok := ExtractBusyness(v, 9, 30)
	assert.False(t, ok)
}

func TestWeeklyMeanBusyness(t *testing.T) {
	week := flatWeek(50)
	pct, ok := WeeklyMeanBusyness(venueWithWeekRaw(week))

	assert.True(t, ok)
	assert.Equal(t, 50.0, pct)

	_, ok = WeeklyMeanBusyness(nil)
	assert.False(t, ok)
}
