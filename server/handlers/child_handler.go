package handlers

import (
	"net/http"

	"roamiq/models"
	services "roamiq/service"
)

// ChildHandler serves the child-mode endpoints.
type ChildHandler struct {
	childService *services.ChildService
}

func NewChildHandler(childService *services.ChildService) *ChildHandler {
	return &ChildHandler{childService: childService}
}

// OptimizeItinerary handles POST /v1/child/optimize-itinerary.
func (h *ChildHandler) OptimizeItinerary(w http.ResponseWriter, r *http.Request) {
	var req models.ItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.childService.OptimizeItinerary(req))
}
