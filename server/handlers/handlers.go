package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	services "roamiq/service"
)

const CONTENT_TYPE_JSON = "application/json"

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", CONTENT_TYPE_JSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// writeErr writes a JSON error body in the shape {"detail": "..."}.
func writeErr(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// decodeBody decodes a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "Invalid JSON request body")
		return false
	}
	return true
}

// writeServiceErr maps service errors onto HTTP statuses. Unconfigured API
// keys are a 503, an empty search is a 404 and anything else is an upstream
// failure surfaced as 502.
func writeServiceErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrAPINotConfigured):
		writeErr(w, http.StatusServiceUnavailable,
			"BestTime API keys are not configured. Set BESTTIME_API_KEY_PRIVATE and BESTTIME_API_KEY_PUBLIC in your .env file.")
	case errors.Is(err, services.ErrNoVenuesFound):
		writeErr(w, http.StatusNotFound, "No venues found for the given destination")
	default:
		writeErr(w, http.StatusBadGateway, "BestTime API error: "+err.Error())
	}
}
