package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetTierValid(t *testing.T) {
	assert.True(t, TierBudget.Valid())
	assert.True(t, TierMid.Valid())
	assert.True(t, TierLuxury.Valid())
	assert.False(t, BudgetTier("").Valid())
	assert.False(t, BudgetTier("platinum").Valid())
}

func TestTierPricesFor(t *testing.T) {
	p := TierPrices{Budget: 100, Mid: 200, Luxury: 300}

	assert.Equal(t, 100.0, p.For(TierBudget))
	assert.Equal(t, 200.0, p.For(TierMid))
	assert.Equal(t, 300.0, p.For(TierLuxury))
	// Unknown tiers fall back to mid.
	assert.Equal(t, 200.0, p.For(BudgetTier("platinum")))
	assert.Equal(t, 200.0, p.For(""))
}

func TestDestinationHasBestMonth(t *testing.T) {
	d := Destination{BestMonths: []int{11, 12, 1}}

	assert.True(t, d.HasBestMonth(12))
	assert.False(t, d.HasBestMonth(6))
	assert.False(t, Destination{}.HasBestMonth(6))
}

func TestHotelHasAmenity(t *testing.T) {
	h := Hotel{Amenities: []string{"wifi", "spa"}}

	assert.True(t, h.HasAmenity("spa"))
	assert.False(t, h.HasAmenity("pool"))
	assert.False(t, Hotel{}.HasAmenity("wifi"))
}
