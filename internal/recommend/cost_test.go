package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

func TestEstimateCost(t *testing.T) {
	dest := domain.Destination{
		Key:         "goa",
		DailyBudget: domain.TierPrices{Budget: 1926, Mid: 3780, Luxury: 7700},
	}

	b := EstimateCost(dest, 3, 2, domain.TierMid)

	// 3780 * 3 days * 2 travelers = 22680 split 40/30/20/10.
	assert.InDelta(t, 9072, b.Accommodation, 0.01)
	assert.InDelta(t, 6804, b.Activities, 0.01)
	assert.InDelta(t, 4536, b.Food, 0.01)
	assert.InDelta(t, 2268, b.Transport, 0.01)
	assert.InDelta(t, 22680, b.Total, 0.01)
	assert.InDelta(t, 11340, b.PerPerson, 0.01)
	assert.InDelta(t, 7560, b.PerDay, 0.01)
}

func TestEstimateCostTotalIsSumOfCategories(t *testing.T) {
	dest := domain.Destination{
		DailyBudget: domain.TierPrices{Budget: 1111, Mid: 3333, Luxury: 9999},
	}
	for _, tier := range []domain.BudgetTier{domain.TierBudget, domain.TierMid, domain.TierLuxury} {
		for _, days := range []int{1, 3, 7, 14} {
			for _, travelers := range []int{1, 2, 5} {
				b := EstimateCost(dest, days, travelers, tier)
				sum := b.Accommodation + b.Activities + b.Food + b.Transport
				require.Equal(t, sum, b.Total, "tier=%s days=%d travelers=%d", tier, days, travelers)
				require.Equal(t, b.Total/float64(travelers), b.PerPerson)
				require.Equal(t, b.Total/float64(days), b.PerDay)
			}
		}
	}
}

func TestEstimateCostFallbackBudget(t *testing.T) {
	var empty domain.Destination

	assert.InDelta(t, 2000*2, EstimateCost(empty, 2, 1, domain.TierBudget).Total, 0.01)
	assert.InDelta(t, 4000*2, EstimateCost(empty, 2, 1, domain.TierMid).Total, 0.01)
	assert.InDelta(t, 8000*2, EstimateCost(empty, 2, 1, domain.TierLuxury).Total, 0.01)
}
