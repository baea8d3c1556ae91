package recommend

import (
	"sort"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

const (
	// dayBudgetShare caps how much of the daily budget a single day's
	// activities may consume.
	dayBudgetShare = 0.6
	// maxDayHours caps the accumulated activity duration per day.
	maxDayHours = 10
)

var intensityItemCaps = map[domain.Intensity]int{
	domain.IntensityLow:    2,
	domain.IntensityMedium: 3,
	domain.IntensityHigh:   4,
}

// OptimizeDay greedily selects a bounded subset of the scored pool for a
// single day: best score first, skipping any candidate that would break
// the item-count cap, the cost cap, the duration cap, or the
// one-activity-per-location diversity rule. The walk is deterministic
// for a fixed pool order.
func (e *Engine) OptimizeDay(pool []domain.ScoredActivity, prefs domain.PreferenceProfile, dailyBudget float64) []domain.ScoredActivity {
	ranked := make([]domain.ScoredActivity, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Overall > ranked[j].Score.Overall
	})

	maxItems, ok := intensityItemCaps[prefs.ActivityIntensity]
	if !ok {
		maxItems = intensityItemCaps[domain.IntensityMedium]
	}

	var (
		selected      []domain.ScoredActivity
		totalCost     float64
		totalDuration int
		usedLocations = map[string]bool{}
	)

	for _, a := range ranked {
		cost := a.Cost.For(prefs.BudgetTier)

		if len(selected) >= maxItems ||
			totalCost+cost > dailyBudget*dayBudgetShare ||
			totalDuration+a.Duration > maxDayHours ||
			usedLocations[a.Location] {
			continue
		}

		selected = append(selected, a)
		totalCost += cost
		totalDuration += a.Duration
		usedLocations[a.Location] = true
	}

	return selected
}
