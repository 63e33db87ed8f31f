package services

import (
	"fmt"
	"log"

	"roamiq/api/besttime"
	"roamiq/models"
	"roamiq/models/venue"
)

// CrowdData is the resolved busyness for one planned activity, with
// provenance. Predicted is true whenever the figure came out of the local
// predictor instead of live foot-traffic data.
type CrowdData struct {
	Busyness  float64
	Predicted bool
	Tip       string
	VenueType string
	Venue     *venue.Venue
}

// CrowdDataResolver turns a planned activity into a busyness figure by
// walking a fixed pipeline of data sources: the day+hour cell of the search
// result's embedded forecast, one extra day-forecast call, the weekly mean
// of the embedded matrix, and finally the deterministic predictor. Every
// upstream failure along the way degrades to the next stage; the resolver
// itself never fails.
type CrowdDataResolver struct {
	besttimeApi besttime.BestTimeAPI
	predictor   *CrowdPredictor
}

func NewCrowdDataResolver(bestTimeApi besttime.BestTimeAPI, predictor *CrowdPredictor) *CrowdDataResolver {
	return &CrowdDataResolver{
		besttimeApi: bestTimeApi,
		predictor:   predictor,
	}
}

// Resolve finds the busyness of the activity at its planned day and hour.
func (r *CrowdDataResolver) Resolve(destination string, activity models.Activity) CrowdData {
	hour := activity.Hour()
	day := activity.Day()

	if r.besttimeApi == nil || !r.besttimeApi.IsConfigured() {
		return r.predict(activity, hour, day, nil)
	}

	query := fmt.Sprintf("%s in %s", activity.Title, destination)
	if activity.Location != "" {
		query = fmt.Sprintf("%s %s", activity.Title, activity.Location)
	}

	log.Printf("[CrowdDataResolver] Searching venues for query=%q", query)
	progress, err := r.besttimeApi.SearchVenues(query, 1)
	if err != nil {
		log.Printf("[CrowdDataResolver] Venue search failed for %q: %v", query, err)
		return r.predict(activity, hour, day, nil)
	}

	venues := progress.FoundVenues()
	if len(venues) == 0 {
		log.Printf("[CrowdDataResolver] No venues found for %q, using prediction", query)
		return r.predict(activity, hour, day, nil)
	}

	v := &venues[0]
	log.Printf("[CrowdDataResolver] Found venue %q (id=%s)", v.VenueName, v.VenueID)

	// The embedded payload is exhausted first (cell, weekly mean, direct
	// fields, in that order); the extra day-forecast call is the last
	// resort before prediction.
	pct, ok := ExtractBusyness(v, day, hour)
	if !ok {
		pct, ok = r.fetchDayForecastCell(v, day, hour)
	}
	if !ok {
		data := r.predict(activity, hour, day, v)
		return data
	}

	return CrowdData{
		Busyness:  pct,
		Predicted: false,
		Tip:       liveTip(pct),
		VenueType: v.VenueType,
		Venue:     v,
	}
}

// fetchDayForecastCell issues one extra day-forecast call and reads the
// planned hour out of its raw day curve. One call only; a failure here means
// prediction, not a retry loop.
func (r *CrowdDataResolver) fetchDayForecastCell(v *venue.Venue, day, hour int) (float64, bool) {
	if v.VenueID == "" || day < 0 {
		return 0, false
	}
	forecast, err := r.besttimeApi.GetForecastDay(v.VenueID, day)
	if err != nil {
		log.Printf("[CrowdDataResolver] Day forecast fetch failed for venue=%s: %v", v.VenueID, err)
		return 0, false
	}
	dayRaw := forecast.Analysis.DayRaw
	if hour >= 0 && hour < len(dayRaw) {
		log.Printf("[CrowdDataResolver] Busyness at hour %d: %.0f%%", hour, dayRaw[hour])
		return dayRaw[hour], true
	}
	return 0, false
}

func (r *CrowdDataResolver) predict(activity models.Activity, hour, day int, v *venue.Venue) CrowdData {
	pct, tip, venueType := r.predictor.PredictBusyness(activity.Title, activity.Location, hour, day)
	return CrowdData{
		Busyness:  float64(pct),
		Predicted: true,
		Tip:       tip,
		VenueType: venueType,
		Venue:     v,
	}
}

// liveTip phrases an optimization tip for a busyness figure backed by live
// foot-traffic data.
func liveTip(pct float64) string {
	switch {
	case pct > 80:
		return "🔴 Very crowded at this time! Consider visiting earlier or later."
	case pct > 60:
		return "🟡 Moderately busy. Plan extra time for queues."
	case pct > 30:
		return "🟢 Reasonable crowd levels."
	default:
		return "✅ Great time to visit — minimal crowds!"
	}
}
