package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"roamiq/api/besttime"
	"roamiq/models"
)

// defaultElderlyVenueTypes is searched when the caller does not name any.
var defaultElderlyVenueTypes = []string{"museum", "cafe", "restaurant", "temple", "garden", "gallery"}

// ElderlyScoredActivity is one itinerary activity with its elderly score and
// the crowd data that fed it.
type ElderlyScoredActivity struct {
	VenueScore
	VenueName             string  `json:"venue_name,omitempty"`
	VenueID               string  `json:"venue_id,omitempty"`
	BusynessAtPlannedTime float64 `json:"busyness_at_planned_time"`
	IsPredicted           bool    `json:"is_predicted"`
}

// ElderlyItineraryResponse is the optimization result for a whole itinerary.
type ElderlyItineraryResponse struct {
	Destination         string                  `json:"destination"`
	ScoredActivities    []ElderlyScoredActivity `json:"scored_activities"`
	Suggestions         []string                `json:"suggestions"`
	OverallElderlyScore float64                 `json:"overall_elderly_score"`
	APIConfigured       bool                    `json:"api_configured"`
}

// ElderlyService scores itineraries and suggests venues for elderly
// travelers. Itinerary optimization works without configured API keys by
// scoring on predicted crowd figures; venue suggestions do not, they need
// live search results.
type ElderlyService struct {
	besttimeApi besttime.BestTimeAPI
	resolver    *CrowdDataResolver
	scorer      *ElderlyScorer
}

func NewElderlyService(bestTimeApi besttime.BestTimeAPI, resolver *CrowdDataResolver, scorer *ElderlyScorer) *ElderlyService {
	return &ElderlyService{
		besttimeApi: bestTimeApi,
		resolver:    resolver,
		scorer:      scorer,
	}
}

func (es *ElderlyService) isConfigured() bool {
	return es.besttimeApi != nil && es.besttimeApi.IsConfigured()
}

// OptimizeItinerary scores every activity for elderly suitability, ranks
// them best first and assembles itinerary-level suggestions.
func (es *ElderlyService) OptimizeItinerary(req models.ItineraryRequest) *ElderlyItineraryResponse {
	apiConfigured := es.isConfigured()
	if !apiConfigured {
		log.Println("[ElderlyService] API not configured, scoring on predicted crowd data")
	}

	scored := make([]ElderlyScoredActivity, 0, len(req.Activities))
	for _, activity := range req.Activities {
		data := es.resolver.Resolve(req.Destination, activity)
		busyness := data.Busyness

		score := es.scorer.ScoreVenueForElderly(ElderlyActivityInput{
			Name:            activity.Title,
			BusynessPct:     &busyness,
			IsOutdoor:       activity.IsOutdoor,
			DurationMinutes: activity.DurationMinutes,
			VenueType:       activity.Category,
			Description:     activity.Description,
			HasSeating:      true,
		})

		entry := ElderlyScoredActivity{
			VenueScore:            score,
			BusynessAtPlannedTime: data.Busyness,
			IsPredicted:           data.Predicted,
		}
		if data.Venue != nil {
			entry.VenueName = data.Venue.VenueName
			entry.VenueID = data.Venue.VenueID
		}
		scored = append(scored, entry)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})

	suggestions := es.itinerarySuggestions(scored, apiConfigured)
	overall := overallScore(len(scored), func(i int) float64 { return scored[i].OverallScore })

	log.Printf("[ElderlyService] Optimization complete: %d activities, overall score=%.1f", len(scored), overall)

	return &ElderlyItineraryResponse{
		Destination:         req.Destination,
		ScoredActivities:    scored,
		Suggestions:         suggestions,
		OverallElderlyScore: overall,
		APIConfigured:       apiConfigured,
	}
}

// itinerarySuggestions builds the fixed ordered suggestion list from score
// band counts.
func (es *ElderlyService) itinerarySuggestions(scored []ElderlyScoredActivity, apiConfigured bool) []string {
	var suggestions []string

	var highRisk, moderateRisk, longOnes, highWalk []string
	for _, s := range scored {
		switch {
		case s.OverallScore < 40:
			highRisk = append(highRisk, s.Name)
		case s.OverallScore < 55:
			moderateRisk = append(moderateRisk, s.Name)
		}
		for _, r := range s.Reasons {
			if strings.Contains(r, "Long duration") {
				longOnes = append(longOnes, s.Name)
				break
			}
		}
		if s.WalkabilityScore < 40 {
			highWalk = append(highWalk, s.Name)
		}
	}

	if len(highRisk) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"⚠️ %d activities may be challenging for elderly travelers: %s",
			len(highRisk), strings.Join(highRisk, ", ")))
	}
	if len(moderateRisk) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"🟡 %d activities need some adjustments: %s",
			len(moderateRisk), strings.Join(moderateRisk, ", ")))
	}
	if len(longOnes) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"⏰ %d activities are long — schedule 15-30 min rest breaks.", len(longOnes)))
	}
	if len(highWalk) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"🚕 Consider taxi/auto for: %s", strings.Join(highWalk, ", ")))
	}

	suggestions = append(suggestions,
		"💡 Schedule the most physically demanding activities in the morning when energy is highest.",
		"🪑 Plan rest breaks of 15-30 minutes between activities.",
	)

	if !apiConfigured {
		suggestions = append(suggestions,
			"ℹ️ Scores are estimated without crowd data. Configure BestTime API for more accurate results.")
	}

	return suggestions
}

// Suggestions searches elderly-friendly venue types in the destination and
// returns the best scored venues. Requires configured API keys; there is no
// meaningful prediction substitute for venue discovery.
func (es *ElderlyService) Suggestions(destination string, types []string, num int) ([]VenueScore, error) {
	if !es.isConfigured() {
		return nil, ErrAPINotConfigured
	}
	if len(types) == 0 {
		types = defaultElderlyVenueTypes
	}
	if num <= 0 {
		num = 10
	}

	var inputs []ElderlyActivityInput
	for _, venueType := range types {
		query := fmt.Sprintf("%s in %s", venueType, destination)
		log.Printf("[ElderlyService] Searching elderly venues: %q", query)

		progress, err := es.besttimeApi.SearchVenues(query, 3)
		if err != nil {
			log.Printf("[ElderlyService] Venue search failed for %q: %v", query, err)
			continue
		}

		venues := progress.FoundVenues()
		for i := range venues {
			v := &venues[i]
			var busynessPct *float64
			if pct, ok := WeeklyMeanBusyness(v); ok {
				busynessPct = &pct
			}
			inputs = append(inputs, ElderlyActivityInput{
				Name:            v.VenueName,
				BusynessPct:     busynessPct,
				IsOutdoor:       false,
				DurationMinutes: 60,
				VenueType:       venueType,
				Description:     v.VenueType,
				HasSeating:      true,
			})
		}
	}

	if len(inputs) == 0 {
		return nil, ErrNoVenuesFound
	}

	scored := es.scorer.RankActivitiesForElderly(inputs)
	if len(scored) > num {
		scored = scored[:num]
	}
	return scored, nil
}

// overallScore averages n scores rounded to one decimal, 0 when empty.
func overallScore(n int, at func(i int) float64) float64 {
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += at(i)
	}
	return roundTo(sum/float64(n), 1)
}
