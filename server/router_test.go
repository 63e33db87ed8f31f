package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamiq/api/besttime"
	"roamiq/server/handlers"
	services "roamiq/service"
)

// newTestRouter wires the full handler stack over the fixture-backed mock
// client.
func newTestRouter() *mux.Router {
	bestTimeApi := besttime.NewBestTimeApiClientMock()

	predictor := services.NewCrowdPredictor()
	resolver := services.NewCrowdDataResolver(bestTimeApi, predictor)
	crowdService := services.NewCrowdService(bestTimeApi, resolver)
	elderlyService := services.NewElderlyService(bestTimeApi, resolver, services.NewElderlyScorer())
	childService := services.NewChildService(bestTimeApi, resolver, services.NewChildScorer())

	muxRouter := mux.NewRouter()
	appRouter := NewRouter(
		handlers.NewCrowdHandler(crowdService, predictor),
		handlers.NewElderlyHandler(elderlyService),
		handlers.NewChildHandler(childService),
		muxRouter,
	)
	appRouter.RegisterRoutes()
	return muxRouter
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter()

	itineraryBody := `{"destination":"Mumbai","activities":[{"title":"Juhu Beach","start_time":"18:00","day_of_week":5}]}`

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		statusCode int
	}{
		{
			name:       "Venue Search",
			method:     "POST",
			path:       "/v1/crowd/venue-search",
			body:       `{"query":"juhu beach","num":2}`,
			statusCode: http.StatusOK,
		},
		{
			name:       "Venue Search Missing Query",
			method:     "POST",
			path:       "/v1/crowd/venue-search",
			body:       `{}`,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Week Forecast",
			method:     "GET",
			path:       "/v1/crowd/forecast/ven_1",
			statusCode: http.StatusOK,
		},
		{
			name:       "Day Forecast",
			method:     "GET",
			path:       "/v1/crowd/forecast/ven_1?day=4",
			statusCode: http.StatusOK,
		},
		{
			name:       "Day Forecast Invalid Day",
			method:     "GET",
			path:       "/v1/crowd/forecast/ven_1?day=9",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Live Forecast",
			method:     "GET",
			path:       "/v1/crowd/live/ven_1",
			statusCode: http.StatusOK,
		},
		{
			name:       "Best Times",
			method:     "GET",
			path:       "/v1/crowd/best-times/ven_1",
			statusCode: http.StatusOK,
		},
		{
			name:       "Analyze Itinerary",
			method:     "POST",
			path:       "/v1/crowd/analyze-itinerary",
			body:       itineraryBody,
			statusCode: http.StatusOK,
		},
		{
			name:       "Predicted Curves",
			method:     "GET",
			path:       "/v1/crowd/predicted-curves",
			statusCode: http.StatusOK,
		},
		{
			name:       "Elderly Optimize",
			method:     "POST",
			path:       "/v1/elderly/optimize-itinerary",
			body:       itineraryBody,
			statusCode: http.StatusOK,
		},
		{
			name:       "Elderly Suggestions",
			method:     "POST",
			path:       "/v1/elderly/suggestions",
			body:       `{"destination":"Mumbai","num":5}`,
			statusCode: http.StatusOK,
		},
		{
			name:       "Child Optimize",
			method:     "POST",
			path:       "/v1/child/optimize-itinerary",
			body:       itineraryBody,
			statusCode: http.StatusOK,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
		},
		{
			name:       "Health Route",
			method:     "GET",
			path:       "/health",
			statusCode: http.StatusOK,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "GET",
			path:       "/v1/crowd/venue-search",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var req *http.Request
			if test.body != "" {
				req = httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			} else {
				req = httptest.NewRequest(test.method, test.path, nil)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d (body: %s)", test.statusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestRouter_AnalyzeItineraryBody(t *testing.T) {
	router := newTestRouter()

	body := `{"destination":"Mumbai","activities":[{"title":"Juhu Beach","start_time":"18:00","day_of_week":5}]}`
	req := httptest.NewRequest("POST", "/v1/crowd/analyze-itinerary", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Destination string `json:"destination"`
		Analysis    []struct {
			Activity    string  `json:"activity"`
			Busyness    float64 `json:"busyness_at_planned_time"`
			IsPredicted bool    `json:"is_predicted"`
			VenueName   string  `json:"venue_name"`
		} `json:"analysis"`
		APIConfigured bool `json:"api_configured"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "Mumbai", resp.Destination)
	assert.True(t, resp.APIConfigured)
	require.Len(t, resp.Analysis, 1)

	// The fixture venue carries a full week matrix, so the planned
	// Saturday 18:00 cell is served as live data.
	entry := resp.Analysis[0]
	assert.Equal(t, "Juhu Beach", entry.Activity)
	assert.False(t, entry.IsPredicted)
	assert.Equal(t, "Juhu Beach", entry.VenueName)
	assert.Equal(t, 98.0, entry.Busyness)
}

func TestRouter_PingBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}
