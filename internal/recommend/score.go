package recommend

import (
	"math"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

// Engine computes candidate scores and assembles trip recommendations.
// It holds only static read-only tuning, so a single instance is safe
// for concurrent use.
type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	if w.Affinity == nil {
		w.Affinity = DefaultWeights().Affinity
	}
	return &Engine{weights: w}
}

// InterestMatchScore measures how well item categories match the user's
// interests on a 0-10 scale. An empty side yields a neutral 5.0: absence
// of information must not penalize or reward.
func (e *Engine) InterestMatchScore(userInterests, itemCategories []string) float64 {
	if len(userInterests) == 0 || len(itemCategories) == 0 {
		return 5.0
	}

	var earned, normalizer float64
	for _, interest := range userInterests {
		related, ok := e.weights.Affinity[interest]
		if !ok {
			// Unknown interest: treat as a singleton category of itself.
			related = map[string]float64{interest: 1.0}
		}
		normalizer += maxWeight(related)

		for _, category := range itemCategories {
			if w, ok := related[category]; ok {
				earned += w
			} else if category == interest {
				earned += 1.0
			}
		}
	}

	if normalizer <= 0 {
		return 5.0
	}
	return clamp(earned/normalizer*10, 0, 10)
}

// budgetMultipliers reflect that budget travelers tolerate less and
// luxury travelers tolerate more relative overspend.
var budgetMultipliers = map[domain.BudgetTier]float64{
	domain.TierBudget: 0.7,
	domain.TierMid:    1.0,
	domain.TierLuxury: 1.5,
}

// BudgetFitScore buckets the cost/reference ratio into a fixed step
// function. A non-positive reference budget expresses no constraint and
// scores a default 8.0.
func BudgetFitScore(cost, referenceBudget float64, tier domain.BudgetTier) float64 {
	if referenceBudget <= 0 {
		return 8.0
	}

	mult, ok := budgetMultipliers[tier]
	if !ok {
		mult = 1.0
	}
	ratio := cost / referenceBudget / mult

	switch {
	case ratio <= 0.5:
		return 10.0
	case ratio <= 0.8:
		return 8.0
	case ratio <= 1.0:
		return 6.0
	case ratio <= 1.2:
		return 4.0
	default:
		return 2.0
	}
}

// WeatherFactorScore rates travel-month favorability for a destination.
// Destinations carrying best-month data score 9.0 in season and 5.0 out
// of season; otherwise the discrete condition label decides. The bucket
// values feed the externally visible confidence score and must stay
// exactly as they are.
func WeatherFactorScore(dest domain.Destination, month int, condition string) float64 {
	if len(dest.BestMonths) > 0 {
		if dest.HasBestMonth(month) {
			return 9.0
		}
		return 5.0
	}

	switch condition {
	case "sunny", "partly_cloudy":
		return 7.0
	case "cloudy":
		return 6.0
	case "":
		return 6.0
	default:
		return 4.0
	}
}

// PopularityScore converts a 0-5 quality rating to the 0-10 scale. A
// zero rating means the field is missing and falls back to 4.0.
func PopularityScore(rating float64) float64 {
	if rating <= 0 {
		rating = 4.0
	}
	return clamp(rating/5.0*10, 0, 10)
}

var intensityTargets = map[domain.Intensity]float64{
	domain.IntensityLow:    1,
	domain.IntensityMedium: 2,
	domain.IntensityHigh:   3,
}

// IntensityMatchScore compares an activity's load (category count plus
// duration hours) against the user's intensity target.
func IntensityMatchScore(a domain.Activity, intensity domain.Intensity) float64 {
	target, ok := intensityTargets[intensity]
	if !ok {
		target = intensityTargets[domain.IntensityMedium]
	}
	load := float64(len(a.Categories) + a.Duration)
	return clamp(10-math.Abs(load-target*2), 0, 10)
}

// TripContext carries the per-request parameters every activity score
// depends on.
type TripContext struct {
	Destination domain.Destination
	TravelMonth int
	DailyBudget float64
	Weather     domain.WeatherReport
}

// ScoreActivity scores one activity against the profile and trip context.
func (e *Engine) ScoreActivity(a domain.Activity, prefs domain.PreferenceProfile, ctx TripContext) domain.ScoreResult {
	interest := e.InterestMatchScore(prefs.Interests, a.Categories)
	budget := BudgetFitScore(a.Cost.For(prefs.BudgetTier), ctx.DailyBudget*0.3, prefs.BudgetTier)
	weather := WeatherFactorScore(ctx.Destination, ctx.TravelMonth, ctx.Weather.Condition)
	popularity := PopularityScore(a.Rating)
	intensity := IntensityMatchScore(a, prefs.ActivityIntensity)

	w := e.weights.Activity
	overall := interest*w.InterestMatch +
		budget*w.BudgetFit +
		weather*w.WeatherFactor +
		popularity*w.Popularity +
		intensity*w.IntensityMatch

	return domain.ScoreResult{
		Overall:       round2(overall),
		InterestMatch: round2(interest),
		BudgetFit:     round2(budget),
		WeatherFactor: round2(weather),
		Popularity:    round2(popularity),
	}
}

// ScoreHotel scores one hotel against the profile. Hotels are
// weather-independent and carry a fixed 8.0 weather factor.
func (e *Engine) ScoreHotel(h domain.Hotel, prefs domain.PreferenceProfile, dailyBudget float64) domain.ScoreResult {
	budget := BudgetFitScore(h.PricePerNight.For(prefs.BudgetTier), dailyBudget*0.5, prefs.BudgetTier)

	accommodation := 6.0
	if h.Category == prefs.AccommodationType {
		accommodation = 10.0
	}

	amenity := e.amenityMatchScore(h, prefs.Interests)
	popularity := PopularityScore(h.Rating)

	w := e.weights.Hotel
	overall := budget*w.BudgetFit +
		accommodation*w.AccommodationMatch +
		amenity*w.AmenityMatch +
		popularity*w.Popularity

	return domain.ScoreResult{
		Overall:       round2(overall),
		InterestMatch: round2(amenity),
		BudgetFit:     round2(budget),
		WeatherFactor: 8.0,
		Popularity:    round2(popularity),
	}
}

// amenityMatchScore starts neutral and adds fixed bonuses for amenities
// matching the traveler's interests, capped at 10.
func (e *Engine) amenityMatchScore(h domain.Hotel, interests []string) float64 {
	score := 5.0
	if h.HasAmenity("spa") && contains(interests, "wellness") {
		score += 2.0
	}
	if h.HasAmenity("gym") && contains(interests, "adventure") {
		score += 1.5
	}
	if h.HasAmenity("restaurant") && contains(interests, "culinary") {
		score += 1.5
	}
	return math.Min(10.0, score)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func maxWeight(m map[string]float64) float64 {
	var max float64
	for _, w := range m {
		if w > max {
			max = w
		}
	}
	return max
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
