package recommend

import (
	"sort"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

// RankHotels scores every hotel and returns the list ordered by overall
// score, descending. The sort is stable: ties keep input order.
func (e *Engine) RankHotels(hotels []domain.Hotel, prefs domain.PreferenceProfile, dailyBudget float64) []domain.ScoredHotel {
	out := make([]domain.ScoredHotel, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, domain.ScoredHotel{
			Hotel: h,
			Score: e.ScoreHotel(h, prefs, dailyBudget),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score.Overall > out[j].Score.Overall
	})
	return out
}

// RankActivities scores every activity and returns the list ordered by
// overall score, descending, stable for ties.
func (e *Engine) RankActivities(activities []domain.Activity, prefs domain.PreferenceProfile, ctx TripContext) []domain.ScoredActivity {
	out := make([]domain.ScoredActivity, 0, len(activities))
	for _, a := range activities {
		out = append(out, domain.ScoredActivity{
			Activity: a,
			Score:    e.ScoreActivity(a, prefs, ctx),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score.Overall > out[j].Score.Overall
	})
	return out
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
