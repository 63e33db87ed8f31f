package services

import (
	"math"
	"strings"
)

// CrowdPredictor estimates busyness levels from venue-type hourly curves and
// day-of-week modifiers when no live foot-traffic data is available. The same
// inputs always produce the same output.
type CrowdPredictor struct{}

func NewCrowdPredictor() *CrowdPredictor {
	return &CrowdPredictor{}
}

// ClassifyVenue maps a venue title plus optional location to a venue type.
// Patterns are scanned in order and the first keyword hit wins; unmatched
// venues fall back to "attraction".
func (p *CrowdPredictor) ClassifyVenue(title, location string) string {
	text := strings.ToLower(title + " " + location)
	for _, pattern := range crowdTab.Patterns {
		for _, kw := range pattern.Keywords {
			if strings.Contains(text, kw) {
				return pattern.Type
			}
		}
	}
	return "attraction"
}

// PredictBusyness estimates how crowded a venue will be. Pass hour and
// dayOfWeek as -1 when unknown; an unknown hour uses the curve average and an
// unknown day skips the weekday modifier. It returns the busyness percentage
// clamped to [0, 100], an optimization tip and the classified venue type.
func (p *CrowdPredictor) PredictBusyness(title, location string, hour, dayOfWeek int) (int, string, string) {
	venueType := p.ClassifyVenue(title, location)
	curve, ok := crowdTab.Curves[venueType]
	if !ok {
		curve = crowdTab.DefaultCurve
	}

	var base int
	if hour >= 0 && hour <= 23 {
		base = curve[hour]
	} else {
		sum := 0
		for _, v := range curve {
			sum += v
		}
		base = int(math.RoundToEven(float64(sum) / float64(len(curve))))
	}

	if dayOfWeek >= 0 && dayOfWeek <= 6 {
		base = int(math.RoundToEven(float64(base) * crowdTab.DayMultipliers[dayOfWeek]))
	}

	busyness := clampPct(base)

	var tip string
	switch {
	case busyness > 80:
		tip = "🔴 Predicted very crowded! Consider visiting at a quieter hour."
	case busyness > 60:
		tip = "🟡 Expected to be moderately busy. Plan extra time."
	case busyness > 30:
		tip = "🟢 Predicted reasonable crowd levels for this time."
	default:
		tip = "✅ Predicted to be quiet — great time to visit!"
	}
	tip += venueTip(venueType, hour)

	return busyness, tip, venueType
}

// HourlyCurves exposes the per-type base curves, keyed by venue type.
func (p *CrowdPredictor) HourlyCurves() map[string][]int {
	curves := make(map[string][]int, len(crowdTab.Curves))
	for venueType, curve := range crowdTab.Curves {
		curves[venueType] = curve
	}
	return curves
}

// venueTip returns a venue-specific addendum for the optimization tip, or an
// empty string when the hour is unknown or nothing applies.
func venueTip(venueType string, hour int) string {
	if hour < 0 {
		return ""
	}
	switch venueType {
	case "beach":
		if hour >= 16 && hour <= 19 {
			return " 🌅 Popular sunset hours at the beach."
		}
		if hour >= 5 && hour <= 7 {
			return " 🌅 Great time for a peaceful sunrise walk."
		}
	case "temple":
		if hour >= 5 && hour <= 8 {
			return " 🛕 Morning prayers tend to draw crowds."
		}
		if hour >= 17 && hour <= 19 {
			return " 🛕 Evening aarti/prayer rush expected."
		}
	case "restaurant":
		switch {
		case hour >= 7 && hour <= 9:
			return " 🍳 Peak breakfast hours."
		case hour >= 12 && hour <= 14:
			return " 🍽️ Lunch rush expected."
		case hour >= 19 && hour <= 21:
			return " 🍽️ Dinner rush expected."
		}
	case "viewpoint":
		if hour >= 16 && hour <= 19 {
			return " 📸 Sunset viewing — arrive early for best spots."
		}
	}
	return ""
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
