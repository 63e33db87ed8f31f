package handlers

import (
	"log"
	"net/http"

	"roamiq/models"
	services "roamiq/service"
)

// ElderlyHandler serves the elderly-mode endpoints.
type ElderlyHandler struct {
	elderlyService *services.ElderlyService
}

func NewElderlyHandler(elderlyService *services.ElderlyService) *ElderlyHandler {
	return &ElderlyHandler{elderlyService: elderlyService}
}

// OptimizeItinerary handles POST /v1/elderly/optimize-itinerary. Works with
// or without configured API keys; degraded results are flagged in the body.
func (h *ElderlyHandler) OptimizeItinerary(w http.ResponseWriter, r *http.Request) {
	var req models.ItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.elderlyService.OptimizeItinerary(req))
}

// Suggestions handles POST /v1/elderly/suggestions. Requires configured API
// keys and answers 503 without them.
func (h *ElderlyHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req models.ElderlySuggestionsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Destination == "" {
		writeErr(w, http.StatusBadRequest, "Missing required field: destination")
		return
	}

	scored, err := h.elderlyService.Suggestions(req.Destination, req.Types, req.Num)
	if err != nil {
		log.Printf("[ElderlyHandler] Suggestions failed for destination=%q: %v", req.Destination, err)
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scored)
}
