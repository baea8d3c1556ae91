package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

func TestPopularDestinations(t *testing.T) {
	svc := newTestService(goaCatalog())

	got, err := svc.PopularDestinations()
	require.NoError(t, err)

	require.Len(t, got.PopularDestinations, 1)
	top := got.PopularDestinations[0]
	assert.Equal(t, "goa", top.Key)
	assert.Equal(t, "Goa, India", top.Destination)
	// Mean of two hotel and three activity ratings:
	// (4.3 + 4.2 + 4.6 + 4.7 + 4.4) / 5 = 4.44, rounded to one decimal.
	assert.Equal(t, 4.4, top.Popularity)
	assert.Equal(t, top.Popularity, top.AvgRating)
	assert.Equal(t, 888, top.TotalBookings)

	assert.Len(t, got.TrendingCategories, 4)
	assert.Contains(t, got.TrendingCategories, "beach")
	assert.Len(t, got.PeakSeasonMonths, 5)
	assert.Equal(t, 7.5, got.AvgTripDuration)
	assert.Equal(t, "mid", got.MostRequestedBudget)
}

func TestPopularDestinationsDeterministic(t *testing.T) {
	svc := newTestService(goaCatalog())

	a, err := svc.PopularDestinations()
	require.NoError(t, err)
	b, err := svc.PopularDestinations()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestAvgCatalogRatingEmpty(t *testing.T) {
	svc := newTestService(&fakeCatalog{dest: domain.Destination{Key: "empty"}})

	avg, err := svc.avgCatalogRating("empty")
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)
}

func TestTopKeys(t *testing.T) {
	counts := map[string]int{"beach": 3, "adventure": 3, "cultural": 1, "nature": 2}

	got := topKeys(counts, 3)

	// Count descending, name ascending on ties.
	assert.Equal(t, []string{"adventure", "beach", "nature"}, got)
}

func TestTopMonths(t *testing.T) {
	counts := map[int]int{1: 5, 2: 5, 6: 1, 12: 3}

	got := topMonths(counts, 3)

	assert.Equal(t, []int{1, 2, 12}, got)
}
