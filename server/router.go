package server

import (
	"github.com/gorilla/mux"

	"roamiq/server/handlers"
)

type Router struct {
	crowdHandler   *handlers.CrowdHandler
	elderlyHandler *handlers.ElderlyHandler
	childHandler   *handlers.ChildHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	crowdHandler *handlers.CrowdHandler,
	elderlyHandler *handlers.ElderlyHandler,
	childHandler *handlers.ChildHandler,
	router *mux.Router) *Router {
	return &Router{
		crowdHandler:   crowdHandler,
		elderlyHandler: elderlyHandler,
		childHandler:   childHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/crowd/venue-search", r.crowdHandler.VenueSearch).Methods("POST")
	// expects optional ?day={0..6} (0=Mon..6=Sun)
	r.router.HandleFunc("/v1/crowd/forecast/{venue_id}", r.crowdHandler.Forecast).Methods("GET")
	r.router.HandleFunc("/v1/crowd/live/{venue_id}", r.crowdHandler.Live).Methods("GET")
	r.router.HandleFunc("/v1/crowd/best-times/{venue_id}", r.crowdHandler.BestTimes).Methods("GET")
	r.router.HandleFunc("/v1/crowd/analyze-itinerary", r.crowdHandler.AnalyzeItinerary).Methods("POST")
	r.router.HandleFunc("/v1/crowd/predicted-curves", r.crowdHandler.PredictedCurves).Methods("GET")

	r.router.HandleFunc("/v1/elderly/optimize-itinerary", r.elderlyHandler.OptimizeItinerary).Methods("POST")
	r.router.HandleFunc("/v1/elderly/suggestions", r.elderlyHandler.Suggestions).Methods("POST")

	r.router.HandleFunc("/v1/child/optimize-itinerary", r.childHandler.OptimizeItinerary).Methods("POST")

	r.router.HandleFunc("/ping", r.crowdHandler.Ping).Methods("GET")
	r.router.HandleFunc("/health", r.crowdHandler.Health).Methods("GET")
}
