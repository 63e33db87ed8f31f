package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"roamiq/models"
	services "roamiq/service"
	"roamiq/util"
)

const (
	DAY_QUERY_ARG      = "day"
	VENUE_ID_PATH_ARG  = "venue_id"
	DEFAULT_SEARCH_NUM = 5
)

// CrowdHandler serves the crowd and foot-traffic endpoints.
type CrowdHandler struct {
	crowdService *services.CrowdService
	predictor    *services.CrowdPredictor
}

func NewCrowdHandler(crowdService *services.CrowdService, predictor *services.CrowdPredictor) *CrowdHandler {
	return &CrowdHandler{
		crowdService: crowdService,
		predictor:    predictor,
	}
}

// VenueSearch handles POST /v1/crowd/venue-search.
func (h *CrowdHandler) VenueSearch(w http.ResponseWriter, r *http.Request) {
	var req models.VenueSearchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Query == "" {
		writeErr(w, http.StatusBadRequest, "Missing required field: query")
		return
	}
	if req.Num <= 0 {
		req.Num = DEFAULT_SEARCH_NUM
	}

	resp, err := h.crowdService.SearchVenues(req.Query, req.Num)
	if err != nil {
		log.Printf("[CrowdHandler] Venue search failed for query=%q: %v", req.Query, err)
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Forecast handles GET /v1/crowd/forecast/{venue_id}. An optional ?day=
// query argument (0=Mon..6=Sun) narrows the forecast to one day; without it
// the full week is returned.
func (h *CrowdHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	dayArg := r.URL.Query().Get(DAY_QUERY_ARG)
	if dayArg == "" {
		resp, err := h.crowdService.GetForecastWeek(venueID)
		if err != nil {
			log.Printf("[CrowdHandler] Week forecast failed for venue_id=%s: %v", venueID, err)
			writeServiceErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	day, err := strconv.Atoi(dayArg)
	if err != nil || day < 0 || day > 6 {
		writeErr(w, http.StatusBadRequest, "Invalid argument "+DAY_QUERY_ARG+": must be an integer 0..6")
		return
	}

	resp, err := h.crowdService.GetForecastDay(venueID, day)
	if err != nil {
		log.Printf("[CrowdHandler] Day forecast failed for venue_id=%s: %v", venueID, err)
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Live handles GET /v1/crowd/live/{venue_id}.
func (h *CrowdHandler) Live(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	resp, err := h.crowdService.GetLiveForecast(venueID)
	if err != nil {
		log.Printf("[CrowdHandler] Live forecast failed for venue_id=%s: %v", venueID, err)
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// BestTimes handles GET /v1/crowd/best-times/{venue_id}.
func (h *CrowdHandler) BestTimes(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	resp, err := h.crowdService.GetBestTimes(venueID)
	if err != nil {
		log.Printf("[CrowdHandler] Best times failed for venue_id=%s: %v", venueID, err)
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AnalyzeItinerary handles POST /v1/crowd/analyze-itinerary. Always answers
// 200; unmatched activities carry predicted figures.
func (h *CrowdHandler) AnalyzeItinerary(w http.ResponseWriter, r *http.Request) {
	var req models.ItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.crowdService.AnalyzeItinerary(req))
}

// PredictedCurves handles GET /v1/crowd/predicted-curves. Renders the
// hourly prediction curves of every venue type as an HTML chart.
func (h *CrowdHandler) PredictedCurves(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderHourlyCurves(w, h.predictor.HourlyCurves()); err != nil {
		log.Println("[CrowdHandler] Failed to render predicted curves:", err)
	}
}

// Ping handles GET /ping.
func (h *CrowdHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// Health handles GET /health.
func (h *CrowdHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"api_configured": h.crowdService.IsConfigured(),
	})
}
