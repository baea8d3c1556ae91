package recommend

import "github.com/tripwise/ai-trip-planner/internal/domain"

// defaultDailyBudget is used when a destination carries no budget data.
var defaultDailyBudget = domain.TierPrices{Budget: 2000, Mid: 4000, Luxury: 8000}

// Category shares of the daily budget.
const (
	accommodationShare = 0.4
	activitiesShare    = 0.3
	foodShare          = 0.2
	transportShare     = 0.1
)

// EstimateCost derives the trip cost breakdown from the destination's
// daily-budget baseline for the tier. Every category scales linearly
// with days and travelers; the total is the exact sum of the four
// categories, never recomputed separately.
func EstimateCost(dest domain.Destination, days, travelers int, tier domain.BudgetTier) domain.CostBreakdown {
	daily := dest.DailyBudget.For(tier)
	if daily <= 0 {
		daily = defaultDailyBudget.For(tier)
	}

	scale := daily * float64(days) * float64(travelers)
	b := domain.CostBreakdown{
		Accommodation: scale * accommodationShare,
		Activities:    scale * activitiesShare,
		Food:          scale * foodShare,
		Transport:     scale * transportShare,
	}
	b.Total = b.Accommodation + b.Activities + b.Food + b.Transport
	b.PerPerson = b.Total / float64(travelers)
	b.PerDay = b.Total / float64(days)
	return b
}
