package services

import (
	"fmt"
	"sort"
	"strings"
)

// ChildScore is the kid-suitability breakdown for one activity. All
// component scores run 0-100, higher is better for kids.
type ChildScore struct {
	Name            string   `json:"name"`
	FunScore        float64  `json:"fun_score"`
	SafetyScore     float64  `json:"safety_score"`
	EngagementScore float64  `json:"engagement_score"`
	OverallScore    float64  `json:"overall_score"`
	Recommendation  string   `json:"recommendation"`
	Emoji           string   `json:"emoji"`
	Reasons         []string `json:"reasons"`
	// SuggestedAlternative is a kid-friendly replacement offered when the
	// activity scores poorly.
	SuggestedAlternative string `json:"suggested_alternative,omitempty"`
}

// ChildActivityInput carries everything the child scorer looks at. VenueType
// overrides classification when set.
type ChildActivityInput struct {
	Name            string
	Description     string
	IsOutdoor       bool
	DurationMinutes int
	VenueType       string
}

// ChildScorer rates activities on fun, safety and engagement for kids.
// Deterministic, table driven, no external dependencies.
type ChildScorer struct{}

func NewChildScorer() *ChildScorer {
	return &ChildScorer{}
}

// ClassifyForKids maps an activity to a venue type for kid scoring. Known
// kid-friendly types win over the broader patterns; unmatched activities
// fall back to "attraction".
func (s *ChildScorer) ClassifyForKids(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, t := range childTab.KidFriendlyTypes {
		if strings.Contains(text, strings.ReplaceAll(t, "_", " ")) || strings.Contains(text, t) {
			return t
		}
	}
	for _, pattern := range childTab.Patterns {
		for _, kw := range pattern.Keywords {
			if strings.Contains(text, kw) {
				return pattern.Type
			}
		}
	}
	return "attraction"
}

// ScoreActivityForChild scores one activity for child-friendliness. Fun
// weighs heaviest, then engagement, then safety.
func (s *ChildScorer) ScoreActivityForChild(in ChildActivityInput) ChildScore {
	text := strings.ToLower(in.Name + " " + in.Description)
	vtype := in.VenueType
	if vtype == "" {
		vtype = s.ClassifyForKids(in.Name, in.Description)
	}
	emoji, ok := childTab.Emojis[vtype]
	if !ok {
		emoji = "⭐"
	}

	superFunHits := countKeywordHits(text, childTab.SuperFunKeywords)
	boringHits := countKeywordHits(text, childTab.BoringKeywords)
	riskyHits := countKeywordHits(text, childTab.RiskyKeywords)

	fun := 50.0
	fun += float64(superFunHits) * 12
	fun -= float64(boringHits) * 15
	if kidFriendlySet[vtype] {
		fun += 20
	}
	if in.IsOutdoor {
		fun += 5
	}
	if in.DurationMinutes > 0 && in.DurationMinutes <= 60 {
		fun += 5
	} else if in.DurationMinutes > 120 {
		fun -= 10
	}
	fun = clampScore(fun)

	safety := 70.0
	safety -= float64(riskyHits) * 20
	if !in.IsOutdoor {
		safety += 10
	}
	switch vtype {
	case "restaurant", "hotel", "museum", "cinema", "mall":
		safety += 10
	case "beach", "waterfall", "viewpoint":
		// open water and drops, kids need supervision
		safety -= 5
	}
	safety = clampScore(safety)

	engagement := 50.0
	switch vtype {
	case "zoo", "aquarium", "amusement_park", "theme_park", "playground", "museum":
		engagement += 30
	case "park", "beach":
		engagement += 15
	case "temple", "monument":
		engagement -= 5
	}
	if superFunHits > 0 {
		engagement += 15
	}
	if boringHits > 0 {
		engagement -= 20
	}
	engagement = clampScore(engagement)

	overall := clampScore(fun*0.45 + safety*0.25 + engagement*0.30)

	var reasons []string
	switch {
	case fun >= 70:
		reasons = append(reasons, "🎉 Kids will love this activity!")
	case fun >= 50:
		reasons = append(reasons, "👍 Decent fun level for children")
	case fun < 30:
		reasons = append(reasons, "😴 Might not hold kids' interest")
	}

	if safety >= 70 {
		reasons = append(reasons, "✅ Safe environment for children")
	} else if safety < 50 {
		reasons = append(reasons, "⚠️ Extra supervision needed for kids")
	}

	if riskyHits > 0 {
		reasons = append(reasons, "🚫 May have age restrictions — verify before booking")
	}

	if in.DurationMinutes > 120 {
		reasons = append(reasons, fmt.Sprintf("⏰ Long duration (%d min) — pack snacks and activities", in.DurationMinutes))
	} else if in.DurationMinutes > 0 && in.DurationMinutes <= 45 {
		reasons = append(reasons, "⚡ Perfect duration for kids' attention span")
	}

	if in.IsOutdoor {
		reasons = append(reasons, "☀️ Outdoor — bring sunscreen, hats, and water")
	}

	var rec string
	switch {
	case overall >= 75:
		rec = "Super Fun!"
		emoji = "🌟"
	case overall >= 55:
		rec = "Good for Kids"
	case overall >= 35:
		rec = "Okay"
	default:
		rec = "Not for Kids"
	}

	alternative := ""
	if overall < 55 {
		if alts, ok := childTab.Alternatives[vtype]; ok && len(alts) > 0 {
			alternative = alts[0]
		} else {
			alternative = fmt.Sprintf("🎪 Find a kid-friendly attraction near %s", in.Name)
		}
	}

	return ChildScore{
		Name:                 in.Name,
		FunScore:             roundTo(fun, 1),
		SafetyScore:          roundTo(safety, 1),
		EngagementScore:      roundTo(engagement, 1),
		OverallScore:         roundTo(overall, 1),
		Recommendation:       rec,
		Emoji:                emoji,
		Reasons:              reasons,
		SuggestedAlternative: alternative,
	}
}

// RankActivitiesForChildren scores every input and returns them best first.
func (s *ChildScorer) RankActivitiesForChildren(inputs []ChildActivityInput) []ChildScore {
	scored := make([]ChildScore, 0, len(inputs))
	for _, in := range inputs {
		scored = append(scored, s.ScoreActivityForChild(in))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})
	return scored
}

// KidSuggestions returns canned kid-friendly activity ideas. The list is
// destination independent for now.
func (s *ChildScorer) KidSuggestions(destination string) []KidSuggestion {
	return childTab.KidSuggestions
}

func countKeywordHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}
