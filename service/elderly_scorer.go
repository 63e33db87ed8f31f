package services

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
)

// VenueScore is the elderly-suitability breakdown for one activity. All
// component scores run 0-100, higher is friendlier.
type VenueScore struct {
	Name               string   `json:"name"`
	CrowdScore         float64  `json:"crowd_score"`
	WalkabilityScore   float64  `json:"walkability_score"`
	AccessibilityScore float64  `json:"accessibility_score"`
	OverallScore       float64  `json:"overall_score"`
	Recommendation     string   `json:"recommendation"`
	Reasons            []string `json:"reasons"`
}

// ElderlyActivityInput carries everything the elderly scorer looks at.
// Pointer fields distinguish "not provided" from zero; distance and steps
// are estimated from duration when absent.
type ElderlyActivityInput struct {
	Name            string
	BusynessPct     *float64
	IsOutdoor       bool
	DurationMinutes int
	VenueType       string
	Description     string
	HasSeating      bool
	DistanceKm      *float64
	EstimatedSteps  *int
}

// ElderlyScorer rates activities on crowd pressure, physical demand and
// accessibility. It is deterministic and has no external dependencies.
type ElderlyScorer struct{}

func NewElderlyScorer() *ElderlyScorer {
	return &ElderlyScorer{}
}

// ComputeCrowdScore inverts a busyness percentage. An unknown busyness gets
// a neutral 50.
func (s *ElderlyScorer) ComputeCrowdScore(busynessPct *float64) float64 {
	if busynessPct == nil {
		return 50.0
	}
	return clampScore(100 - *busynessPct)
}

// EstimateStepsFromDuration approximates walking steps for an activity.
// Roughly 70 steps a minute outdoors and 30 indoors, adjusted by effort
// class of the venue type.
func (s *ElderlyScorer) EstimateStepsFromDuration(durationMinutes int, isOutdoor bool, venueType string) int {
	if durationMinutes <= 0 {
		return 0
	}
	stepsPerMin := 30
	switch {
	case isHighEffortType(venueType):
		stepsPerMin = 90
	case isLowEffortType(venueType):
		stepsPerMin = 20
	case isOutdoor:
		stepsPerMin = 70
	}
	return durationMinutes * stepsPerMin
}

// EstimateDistanceFromDuration approximates walking distance in km, rounded
// to two decimals. Elderly pace runs around 3.5 km/h for active outdoor
// venues down to 0.5 km/h for mostly seated ones.
func (s *ElderlyScorer) EstimateDistanceFromDuration(durationMinutes int, isOutdoor bool, venueType string) float64 {
	if durationMinutes <= 0 {
		return 0.0
	}
	kmPerHour := 1.5
	switch {
	case isHighEffortType(venueType):
		kmPerHour = 3.5
	case isLowEffortType(venueType):
		kmPerHour = 0.5
	case isOutdoor:
		kmPerHour = 3.0
	}
	return roundTo(float64(durationMinutes)/60.0*kmPerHour, 2)
}

// ComputeWalkabilityScore rates physical demand, higher meaning less walking
// required. Distance and step figures are the strongest signals when present.
func (s *ElderlyScorer) ComputeWalkabilityScore(
	isOutdoor bool,
	durationMinutes int,
	venueType string,
	description string,
	distanceKm float64,
	estimatedSteps int,
) float64 {
	score := 70.0

	switch {
	case distanceKm > 5:
		score -= 35
	case distanceKm > 3:
		score -= 25
	case distanceKm > 2:
		score -= 15
	case distanceKm > 1:
		score -= 8
	}

	switch {
	case estimatedSteps > 8000:
		score -= 35
	case estimatedSteps > 5000:
		score -= 20
	case estimatedSteps > 3000:
		score -= 10
	case estimatedSteps > 1500:
		score -= 5
	}

	if isOutdoor {
		score -= 10
	}

	switch {
	case durationMinutes > 180:
		score -= 20
	case durationMinutes > 120:
		score -= 12
	case durationMinutes > 60:
		score -= 5
	}

	if isHighEffortType(venueType) {
		score -= 25
	} else if isLowEffortType(venueType) {
		score += 15
	}

	if description != "" {
		descLower := strings.ToLower(description)
		for _, kw := range elderlyTab.HighEffortKeywords {
			if strings.Contains(descLower, kw) {
				score -= 8
			}
		}
	}

	return clampScore(score)
}

// ComputeAccessibilityScore rates how easy the venue is to get around in.
func (s *ElderlyScorer) ComputeAccessibilityScore(isIndoor bool, venueType string, hasSeating bool) float64 {
	score := 60.0
	if isIndoor {
		score += 20
	}
	if hasSeating {
		score += 10
	}
	if isLowEffortTypeExact(venueType) {
		score += 10
	}
	return clampScore(score)
}

// ScoreVenueForElderly computes the weighted elderly-suitability score.
// Crowd pressure weighs heaviest, then walkability, then accessibility.
func (s *ElderlyScorer) ScoreVenueForElderly(in ElderlyActivityInput) VenueScore {
	distanceKm := s.EstimateDistanceFromDuration(in.DurationMinutes, in.IsOutdoor, in.VenueType)
	if in.DistanceKm != nil {
		distanceKm = *in.DistanceKm
	}
	estimatedSteps := s.EstimateStepsFromDuration(in.DurationMinutes, in.IsOutdoor, in.VenueType)
	if in.EstimatedSteps != nil {
		estimatedSteps = *in.EstimatedSteps
	}

	crowd := s.ComputeCrowdScore(in.BusynessPct)
	walk := s.ComputeWalkabilityScore(
		in.IsOutdoor, in.DurationMinutes, in.VenueType, in.Description,
		distanceKm, estimatedSteps,
	)
	access := s.ComputeAccessibilityScore(!in.IsOutdoor, in.VenueType, in.HasSeating)

	overall := crowd*0.35 + walk*0.40 + access*0.25

	var reasons []string

	if in.BusynessPct != nil {
		switch {
		case crowd >= 70:
			reasons = append(reasons, "Low crowd levels — comfortable for elderly visitors")
		case crowd <= 30:
			reasons = append(reasons, "⚠️ High crowd levels — may be uncomfortable")
		default:
			reasons = append(reasons, fmt.Sprintf("Moderate crowd levels (%d%% busy)", int(math.Round(*in.BusynessPct))))
		}
	} else {
		reasons = append(reasons, "ℹ️ Crowd data unavailable — score is estimated")
	}

	if estimatedSteps > 0 {
		switch {
		case estimatedSteps > 6000:
			reasons = append(reasons, fmt.Sprintf("⚠️ ~%s steps estimated — plan rest breaks and consider taxi", humanizeInt(estimatedSteps)))
		case estimatedSteps > 3000:
			reasons = append(reasons, fmt.Sprintf("~%s steps — moderate walking involved", humanizeInt(estimatedSteps)))
		default:
			reasons = append(reasons, fmt.Sprintf("~%s steps — light walking", humanizeInt(estimatedSteps)))
		}
	}

	if distanceKm > 3 {
		reasons = append(reasons, fmt.Sprintf("⚠️ ~%.1f km distance — consider taxi or auto-rickshaw", distanceKm))
	} else if distanceKm > 1 {
		reasons = append(reasons, fmt.Sprintf("~%.1f km — manageable walking distance", distanceKm))
	}

	if walk >= 70 {
		reasons = append(reasons, "Minimal physical effort required")
	} else if walk <= 40 {
		reasons = append(reasons, "⚠️ Significant physical effort needed")
	}

	if in.IsOutdoor {
		reasons = append(reasons, "Outdoor venue — check weather conditions")
	} else {
		reasons = append(reasons, "Indoor venue — weather-protected")
	}

	if in.DurationMinutes > 120 {
		reasons = append(reasons, fmt.Sprintf("⚠️ Long duration (%d min) — plan rest breaks", in.DurationMinutes))
	}

	var rec string
	switch {
	case overall >= 75:
		rec = "Highly Recommended"
	case overall >= 55:
		rec = "Suitable"
	case overall >= 35:
		rec = "Use Caution"
	default:
		rec = "Not Recommended"
	}

	log.Printf("[ElderlyScorer] Scored %q: crowd=%.0f walk=%.0f access=%.0f overall=%.0f steps=%d dist=%.1fkm",
		in.Name, crowd, walk, access, overall, estimatedSteps, distanceKm)

	return VenueScore{
		Name:               in.Name,
		CrowdScore:         roundTo(crowd, 1),
		WalkabilityScore:   roundTo(walk, 1),
		AccessibilityScore: roundTo(access, 1),
		OverallScore:       roundTo(overall, 1),
		Recommendation:     rec,
		Reasons:            reasons,
	}
}

// RankActivitiesForElderly scores every input and returns them best first.
// The sort is stable so equal scores keep their submitted order.
func (s *ElderlyScorer) RankActivitiesForElderly(inputs []ElderlyActivityInput) []VenueScore {
	scored := make([]VenueScore, 0, len(inputs))
	for _, in := range inputs {
		scored = append(scored, s.ScoreVenueForElderly(in))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})
	return scored
}

// isHighEffortType reports whether the venue type contains any high-effort
// type token. Substring matching on purpose: "jungle trek tour" counts.
func isHighEffortType(venueType string) bool {
	if venueType == "" {
		return false
	}
	vtype := strings.ToLower(venueType)
	for _, t := range elderlyTab.HighEffortTypes {
		if strings.Contains(vtype, t) {
			return true
		}
	}
	return false
}

func isLowEffortType(venueType string) bool {
	if venueType == "" {
		return false
	}
	vtype := strings.ToLower(venueType)
	for _, t := range elderlyTab.LowEffortTypes {
		if strings.Contains(vtype, t) {
			return true
		}
	}
	return false
}

// isLowEffortTypeExact requires the whole type to be a low-effort entry,
// unlike the substring scans used for effort estimation.
func isLowEffortTypeExact(venueType string) bool {
	vtype := strings.ToLower(venueType)
	for _, t := range elderlyTab.LowEffortTypes {
		if vtype == t {
			return true
		}
	}
	return false
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// humanizeInt renders an integer with thousands separators, 10500 as
// "10,500".
func humanizeInt(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + humanizeInt(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
