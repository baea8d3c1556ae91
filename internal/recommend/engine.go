package recommend

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

const dateLayout = "2006-01-02"

// PlanInput is the catalog snapshot a single planning request works on.
// The caller fetches it once; the engine never reaches back into
// storage mid-computation.
type PlanInput struct {
	Request     domain.TripRequest
	Destination domain.Destination
	Hotels      []domain.Hotel
	Activities  []domain.Activity
	Weather     domain.WeatherReport
	Start       time.Time
	End         time.Time
}

// Plan assembles a complete trip recommendation: cost breakdown, ranked
// hotels and activities, one optimized itinerary per day, confidence
// score and personalization notes.
func (e *Engine) Plan(in PlanInput) (domain.TripRecommendation, error) {
	days := int(in.End.Sub(in.Start).Hours() / 24)
	if days <= 0 {
		return domain.TripRecommendation{}, fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidDateRange)
	}

	req := in.Request
	prefs := req.Preferences
	travelMonth := int(in.Start.Month())

	cost := EstimateCost(in.Destination, days, req.Travelers, prefs.BudgetTier)
	dailyBudget := cost.PerDay / float64(req.Travelers)

	rankedHotels := e.RankHotels(in.Hotels, prefs, dailyBudget)

	ctx := TripContext{
		Destination: in.Destination,
		TravelMonth: travelMonth,
		DailyBudget: dailyBudget,
		Weather:     in.Weather,
	}
	rankedActivities := e.RankActivities(in.Activities, prefs, ctx)

	// Each day is optimized independently over the full pool; the
	// location-diversity set resets per day.
	itinerary := make([]domain.DailyPlan, 0, days)
	for day := 0; day < days; day++ {
		date := in.Start.AddDate(0, 0, day)
		picks := e.OptimizeDay(rankedActivities, prefs, dailyBudget)

		places := make([]domain.VisitPlace, 0, len(picks))
		for _, p := range picks {
			activityCost := p.Cost.For(prefs.BudgetTier)
			places = append(places, domain.VisitPlace{
				Name:        p.Location,
				Times:       fmt.Sprintf("%s (%dh)", p.BestTime, p.Duration),
				Description: fmt.Sprintf("Visit to %s for %s", p.Location, p.Name),
				Cost:        activityCost,
				Events: []domain.Event{{
					Name:        p.Name,
					Time:        p.BestTime,
					Description: p.Description,
					Cost:        activityCost,
				}},
			})
		}

		itinerary = append(itinerary, domain.DailyPlan{
			Date:      date.Format(dateLayout),
			Travelers: req.Travelers,
			Places:    places,
		})
	}

	var booked []domain.BookedHotel
	if len(rankedHotels) > 0 {
		best := rankedHotels[0]
		booked = append(booked, domain.BookedHotel{
			Name:         best.Name,
			CheckIn:      req.StartDate,
			CheckOut:     req.EndDate,
			CostPerNight: best.PricePerNight.For(prefs.BudgetTier),
			Address:      best.Location,
		})
	}

	return domain.TripRecommendation{
		Trip: domain.Trip{
			Destination: in.Destination.Name,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Travelers:   req.Travelers,
			Itinerary:   itinerary,
			Hotels:      booked,
			TotalBudget: cost.Total,
		},
		Weather:               in.Weather,
		CostBreakdown:         cost,
		RecommendedHotels:     topN(rankedHotels, 3),
		RecommendedActivities: topN(rankedActivities, 10),
		PersonalizationNotes:  e.personalizationNotes(prefs, in.Weather),
		ConfidenceScore:       e.confidenceScore(rankedActivities, rankedHotels, in.Weather.IsFavorable),
	}, nil
}

// confidenceScore summarizes recommendation quality: top activity and
// hotel scores weighted with weather favorability. An empty ranked list
// contributes a neutral 5.0 rather than failing the whole plan.
func (e *Engine) confidenceScore(activities []domain.ScoredActivity, hotels []domain.ScoredHotel, favorable bool) float64 {
	activityAvg := 5.0
	if len(activities) > 0 {
		var sum float64
		top := topN(activities, 5)
		for _, a := range top {
			sum += a.Score.Overall
		}
		activityAvg = sum / float64(len(top))
	}

	hotelAvg := 5.0
	if len(hotels) > 0 {
		var sum float64
		top := topN(hotels, 3)
		for _, h := range top {
			sum += h.Score.Overall
		}
		hotelAvg = sum / float64(len(top))
	}

	weatherTerm := 6.0
	if favorable {
		weatherTerm = 9.0
	}

	return round2(activityAvg*0.5 + hotelAvg*0.3 + weatherTerm*0.2)
}

func (e *Engine) personalizationNotes(prefs domain.PreferenceProfile, weather domain.WeatherReport) []string {
	var notes []string
	if len(prefs.Interests) > 0 {
		notes = append(notes, "Customized for your interests: "+strings.Join(prefs.Interests, ", "))
	}
	if prefs.BudgetTier != domain.TierMid {
		notes = append(notes, fmt.Sprintf("Optimized for %s budget preferences", prefs.BudgetTier))
	}
	if weather.IsFavorable {
		notes = append(notes, "Great weather conditions for your travel dates!")
	} else {
		notes = append(notes, "Weather considerations have been factored into recommendations")
	}
	return notes
}

// SuggestDestinations ranks the whole destination catalog against the
// profile: interest match weighted 0.7, budget compatibility 0.3. A nil
// budget range expresses no budget constraint.
func (e *Engine) SuggestDestinations(dests []domain.Destination, prefs domain.PreferenceProfile, minBudget, maxBudget float64) []domain.DestinationSuggestion {
	out := make([]domain.DestinationSuggestion, 0, len(dests))
	for _, d := range dests {
		interestScore := e.InterestMatchScore(prefs.Interests, d.Categories)

		daily := d.DailyBudget.For(prefs.BudgetTier)
		budgetScore := 10.0
		if minBudget > 0 && daily < minBudget*0.8 {
			budgetScore = 6.0
		} else if maxBudget > 0 && daily > maxBudget*1.2 {
			budgetScore = 4.0
		}

		out = append(out, domain.DestinationSuggestion{
			Key:         d.Key,
			Name:        d.Name,
			Country:     d.Country,
			Description: d.Description,
			Categories:  d.Categories,
			BestMonths:  d.BestMonths,
			DailyBudget: d.DailyBudget,
			MatchScore:  round2(interestScore*0.7 + budgetScore*0.3),
			Reasons:     suggestionReasons(d, prefs, interestScore, budgetScore),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

func suggestionReasons(d domain.Destination, prefs domain.PreferenceProfile, interestScore, budgetScore float64) []string {
	var reasons []string
	if interestScore >= 8.0 {
		var matching []string
		for _, c := range d.Categories {
			if contains(prefs.Interests, c) {
				matching = append(matching, c)
			}
		}
		if len(matching) > 0 {
			reasons = append(reasons, "Perfect for "+strings.Join(matching, ", ")+" enthusiasts")
		}
	}
	if budgetScore >= 8.0 {
		reasons = append(reasons, fmt.Sprintf("Great value for %s travelers", prefs.BudgetTier))
	}
	if len(d.BestMonths) > 0 {
		months := make([]string, len(d.BestMonths))
		for i, m := range d.BestMonths {
			months[i] = time.Month(m).String()
		}
		reasons = append(reasons, "Best visited in "+strings.Join(months, ", "))
	}
	return reasons
}
