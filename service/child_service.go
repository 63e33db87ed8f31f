package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"roamiq/api/besttime"
	"roamiq/models"
)

// ChildScoredActivity is one itinerary activity with its kid score and the
// crowd data resolved for its planned time. The child score itself ignores
// crowd levels; the busyness figure is provenance for the caller.
type ChildScoredActivity struct {
	ChildScore
	VenueName             string  `json:"venue_name,omitempty"`
	VenueID               string  `json:"venue_id,omitempty"`
	BusynessAtPlannedTime float64 `json:"busyness_at_planned_time"`
	IsPredicted           bool    `json:"is_predicted"`
}

// ChildItineraryResponse is the optimization result for a whole itinerary.
type ChildItineraryResponse struct {
	Destination            string                `json:"destination"`
	ScoredActivities       []ChildScoredActivity `json:"scored_activities"`
	Suggestions            []string              `json:"suggestions"`
	OverallChildScore      float64               `json:"overall_child_score"`
	KidActivitySuggestions []KidSuggestion       `json:"kid_activity_suggestions"`
	APIConfigured          bool                  `json:"api_configured"`
}

// ChildService scores itineraries for family travelers. It always works,
// with or without configured API keys.
type ChildService struct {
	besttimeApi besttime.BestTimeAPI
	resolver    *CrowdDataResolver
	scorer      *ChildScorer
}

func NewChildService(bestTimeApi besttime.BestTimeAPI, resolver *CrowdDataResolver, scorer *ChildScorer) *ChildService {
	return &ChildService{
		besttimeApi: bestTimeApi,
		resolver:    resolver,
		scorer:      scorer,
	}
}

// OptimizeItinerary scores every activity for kid-friendliness, ranks them
// best first and assembles fun suggestions.
func (chs *ChildService) OptimizeItinerary(req models.ItineraryRequest) *ChildItineraryResponse {
	apiConfigured := chs.besttimeApi != nil && chs.besttimeApi.IsConfigured()

	scored := make([]ChildScoredActivity, 0, len(req.Activities))
	for _, activity := range req.Activities {
		data := chs.resolver.Resolve(req.Destination, activity)

		score := chs.scorer.ScoreActivityForChild(ChildActivityInput{
			Name:            activity.Title,
			Description:     activity.Description,
			IsOutdoor:       activity.IsOutdoor,
			DurationMinutes: activity.DurationMinutes,
			VenueType:       activity.Category,
		})

		entry := ChildScoredActivity{
			ChildScore:            score,
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

	suggestions := childSuggestions(scored)
	overall := overallScore(len(scored), func(i int) float64 { return scored[i].OverallScore })

	log.Printf("[ChildService] Optimization complete: %d activities, overall score=%.1f", len(scored), overall)

	return &ChildItineraryResponse{
		Destination:            req.Destination,
		ScoredActivities:       scored,
		Suggestions:            suggestions,
		OverallChildScore:      overall,
		KidActivitySuggestions: chs.scorer.KidSuggestions(req.Destination),
		APIConfigured:          apiConfigured,
	}
}

// childSuggestions builds the fixed ordered suggestion list from score band
// counts. Name lists are capped at three so the strings stay readable.
func childSuggestions(scored []ChildScoredActivity) []string {
	var fun, okay, boring []string
	for _, s := range scored {
		switch {
		case s.OverallScore >= 70:
			fun = append(fun, s.Name)
		case s.OverallScore < 40:
			boring = append(boring, s.Name)
		case s.OverallScore >= 40 && s.OverallScore < 55:
			okay = append(okay, s.Name)
		}
	}

	var suggestions []string
	if len(fun) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"🎉 %d activities are super fun for kids: %s",
			len(fun), strings.Join(capNames(fun, 3), ", ")))
	}
	if len(boring) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"😴 %d activities might bore kids: %s",
			len(boring), strings.Join(capNames(boring, 3), ", ")))
		suggestions = append(suggestions,
			"💡 Click \"Make it Fun!\" to get kid-friendly alternatives.")
	}
	if len(okay) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"👍 %d activities are okay but could be more fun.", len(okay)))
	}

	suggestions = append(suggestions,
		"🍦 Don't forget snack breaks every 1-2 hours!",
		"🧴 Pack sunscreen, hats, and water for outdoor activities.",
		"📱 Download offline games and movies for travel segments.",
	)
	return suggestions
}

func capNames(names []string, max int) []string {
	if len(names) > max {
		return names[:max]
	}
	return names
}
