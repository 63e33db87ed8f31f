package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyForKids(t *testing.T) {
	s := NewChildScorer()

	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"kid-friendly type wins", "City Zoo and Safari", "", "zoo"},
		{"underscore type matched with space", "Esselworld amusement park", "", "amusement_park"},
		{"pattern fallback", "Shri Ram Mandir", "", "temple"},
		{"food pattern", "Biryani lunch stop", "", "restaurant"},
		{"unknown", "Mystery stop", "", "attraction"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, s.ClassifyForKids(test.title, test.description))
		})
	}
}

func TestScoreActivityForChild_SuperFun(t *testing.T) {
	s := NewChildScorer()

	score := s.ScoreActivityForChild(ChildActivityInput{
		Name:        "Roller Coaster Rides at the Zoo",
		Description: "",
		IsOutdoor:   false,
	})

	assert.Equal(t, "Super Fun!", score.Recommendation)
	assert.Equal(t, "🌟", score.Emoji)
	assert.GreaterOrEqual(t, score.OverallScore, 75.0)
	assert.Contains(t, score.Reasons, "🎉 Kids will love this activity!")
	assert.Empty(t, score.SuggestedAlternative)
}

func TestScoreActivityForChild_NotForKids(t *testing.T) {
	s := NewChildScorer()

	score := s.ScoreActivityForChild(ChildActivityInput{
		Name:        "Wine Tasting Tour",
		Description: "Brewery and cocktail sampling for adults",
	})

	assert.Equal(t, "Not for Kids", score.Recommendation)
	assert.Contains(t, score.Reasons, "😴 Might not hold kids' interest")
	assert.NotEmpty(t, score.SuggestedAlternative)
}

func TestScoreActivityForChild_RiskyActivity(t *testing.T) {
	s := NewChildScorer()

	score := s.ScoreActivityForChild(ChildActivityInput{
		Name:      "Bungee jumping from the cliff",
		IsOutdoor: true,
	})

	assert.Contains(t, score.Reasons, "🚫 May have age restrictions — verify before booking")
	assert.Less(t, score.SafetyScore, 50.0)
}

func TestScoreActivityForChild_AlternativeFromTable(t *testing.T) {
	s := NewChildScorer()

	score := s.ScoreActivityForChild(ChildActivityInput{
		Name:            "Heritage walk at the old fort",
		IsOutdoor:       true,
		DurationMinutes: 180,
		VenueType:       "monument",
	})

	assert.Less(t, score.OverallScore, 55.0)
	assert.Equal(t, "🏰 Take a treasure hunt tour of the monument", score.SuggestedAlternative)
}

func TestScoreActivityForChild_GenericAlternative(t *testing.T) {
	s := NewChildScorer()

	score := s.ScoreActivityForChild(ChildActivityInput{
		Name:      "Antique business seminar",
		VenueType: "attraction",
	})

	assert.Less(t, score.OverallScore, 55.0)
	assert.Equal(t, "🎪 Find a kid-friendly attraction near Antique business seminar", score.SuggestedAlternative)
}

func TestScoreActivityForChild_DurationEffects(t *testing.T) {
	s := NewChildScorer()

	short := s.ScoreActivityForChild(ChildActivityInput{Name: "Ice cream stop", DurationMinutes: 30})
	long := s.ScoreActivityForChild(ChildActivityInput{Name: "Ice cream stop", DurationMinutes: 200})

	assert.Greater(t, short.FunScore, long.FunScore)
	assert.Contains(t, short.Reasons, "⚡ Perfect duration for kids' attention span")
	assert.Contains(t, long.Reasons, "⏰ Long duration (200 min) — pack snacks and activities")
}

func TestRankActivitiesForChildren(t *testing.T) {
	s := NewChildScorer()

	ranked := s.RankActivitiesForChildren([]ChildActivityInput{
		{Name: "Wine Tasting Tour"},
		{Name: "Water slide splash park", IsOutdoor: true},
		{Name: "Old tomb visit", VenueType: "monument"},
	})

	assert.Len(t, ranked, 3)
	assert.Equal(t, "Water slide splash park", ranked[0].Name)
	assert.Equal(t, "Wine Tasting Tour", ranked[2].Name)
}

func TestRankActivitiesForChildren_EqualScoresKeepInputOrder(t *testing.T) {
	s := NewChildScorer()

	// Same type, no scoring keywords in either name, so both activities
	// land on the same overall score; the stable sort must keep the
	// submitted order.
	ranked := s.RankActivitiesForChildren([]ChildActivityInput{
		{Name: "Prince of Wales annex", VenueType: "museum"},
		{Name: "Salar Jung annex", VenueType: "museum"},
	})

	assert.Equal(t, ranked[0].OverallScore, ranked[1].OverallScore)
	assert.Equal(t, "Prince of Wales annex", ranked[0].Name)
	assert.Equal(t, "Salar Jung annex", ranked[1].Name)
}

func TestKidSuggestions(t *testing.T) {
	s := NewChildScorer()

	suggestions := s.KidSuggestions("Mumbai")
	assert.Len(t, suggestions, 6)
	assert.Equal(t, "🎢 Visit an Amusement Park", suggestions[0].Title)
	assert.Equal(t, "amusement_park", suggestions[0].Category)
}
