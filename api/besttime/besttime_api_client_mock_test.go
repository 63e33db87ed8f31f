package besttime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_SearchVenuesServesFixture(t *testing.T) {
	mock := NewBestTimeApiClientMock()

	resp, err := mock.SearchVenues("anything", 5)

	require.NoError(t, err)
	assert.True(t, resp.JobFinished)

	venues := resp.FoundVenues()
	require.NotEmpty(t, venues)
	assert.Equal(t, "Juhu Beach", venues[0].VenueName)
	require.NotNil(t, venues[0].VenueFootTrafficForecast)
	assert.Len(t, venues[0].WeekRaw(), 7)
	for _, day := range venues[0].WeekRaw() {
		assert.Len(t, day, 24)
	}
}

func TestMock_GetForecastDayStampsVenueID(t *testing.T) {
	mock := NewBestTimeApiClientMock()

	resp, err := mock.GetForecastDay("ven_custom", 4)

	require.NoError(t, err)
	assert.Equal(t, "ven_custom", resp.VenueID)
	assert.Len(t, resp.Analysis.DayRaw, 24)
}

func TestMock_GetForecastWeekSynthesizesSevenDays(t *testing.T) {
	mock := NewBestTimeApiClientMock()

	resp, err := mock.GetForecastWeek("ven_custom")

	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
	assert.Len(t, resp.Analysis, 7)
}

func TestMock_GetLiveForecast(t *testing.T) {
	mock := NewBestTimeApiClientMock()

	resp, err := mock.GetLiveForecast("ven_custom")

	require.NoError(t, err)
	assert.Equal(t, "ven_custom", resp.VenueInfo.VenueID)
	assert.True(t, resp.Analysis.VenueLiveBusynessAvailable)
}

func TestMock_IsAlwaysConfigured(t *testing.T) {
	assert.True(t, NewBestTimeApiClientMock().IsConfigured())
}
