package trip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/ai-trip-planner/internal/domain"
	"github.com/tripwise/ai-trip-planner/internal/recommend"
	"github.com/tripwise/ai-trip-planner/internal/weather"
)

// fakeCatalog serves a single in-memory destination.
type fakeCatalog struct {
	dest       domain.Destination
	hotels     []domain.Hotel
	activities []domain.Activity
	err        error
}

func (f *fakeCatalog) GetDestination(key string) (domain.Destination, bool, error) {
	if f.err != nil {
		return domain.Destination{}, false, f.err
	}
	if key != f.dest.Key {
		return domain.Destination{}, false, nil
	}
	return f.dest, true, nil
}

func (f *fakeCatalog) ListDestinations() ([]domain.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Destination{f.dest}, nil
}

func (f *fakeCatalog) GetHotels(string, domain.BudgetTier) ([]domain.Hotel, error) {
	return f.hotels, f.err
}

func (f *fakeCatalog) GetActivities(string, []string) ([]domain.Activity, error) {
	return f.activities, f.err
}

func (f *fakeCatalog) ListTripTemplates() ([]domain.TripTemplate, error) {
	return []domain.TripTemplate{{Name: "Coastal Unwind"}}, f.err
}

func (f *fakeCatalog) ListPreferenceTemplates() ([]domain.PreferenceTemplate, error) {
	return []domain.PreferenceTemplate{{ProfileType: "adventure_seeker"}}, f.err
}

func goaCatalog() *fakeCatalog {
	return &fakeCatalog{
		dest: domain.Destination{
			Key:         "goa",
			Name:        "Goa, India",
			Categories:  []string{"beach", "relaxation", "adventure", "culinary"},
			BestMonths:  []int{11, 12, 1, 2, 3, 4},
			DailyBudget: domain.TierPrices{Budget: 1926, Mid: 3780, Luxury: 7700},
		},
		hotels: []domain.Hotel{
			{Name: "Lemon Tree Hotel Candolim", Category: "mid", Rating: 4.3,
				PricePerNight: domain.TierPrices{Budget: 3745, Mid: 5400, Luxury: 7700},
				Amenities:     []string{"wifi", "breakfast", "pool", "restaurant"}},
			{Name: "Zostel Goa", Category: "budget", Rating: 4.2,
				PricePerNight: domain.TierPrices{Budget: 856, Mid: 1296, Luxury: 1760}},
		},
		activities: []domain.Activity{
			{Name: "Beach Hopping Tour", Duration: 8, Rating: 4.6, Location: "North Goa", BestTime: "morning",
				Cost: domain.TierPrices{Budget: 1070, Mid: 1950, Luxury: 3300}, Categories: []string{"beach", "adventure"}},
			{Name: "Sunset Cruise", Duration: 3, Rating: 4.7, Location: "Panaji", BestTime: "evening",
				Cost: domain.TierPrices{Budget: 860, Mid: 1300, Luxury: 2200}, Categories: []string{"adventure", "relaxation"}},
			{Name: "Old Goa Churches Tour", Duration: 3, Rating: 4.4, Location: "Old Goa", BestTime: "morning",
				Cost: domain.TierPrices{Budget: 220, Mid: 430, Luxury: 880}, Categories: []string{"historical", "cultural"}},
		},
	}
}

func newTestService(c Catalog) *Service {
	wx := weather.Fixed{Report: domain.WeatherReport{
		Temperature: 28, Condition: "sunny", IsFavorable: true,
	}}
	return NewService(c, wx, recommend.NewEngine(recommend.DefaultWeights()))
}

func goaRequest() domain.TripRequest {
	return domain.TripRequest{
		Destination: "goa",
		StartDate:   "2025-12-10",
		EndDate:     "2025-12-13",
		Travelers:   2,
		Preferences: domain.PreferenceProfile{
			Interests:         []string{"beach", "adventure"},
			BudgetTier:        domain.TierMid,
			AccommodationType: "mid",
			ActivityIntensity: domain.IntensityMedium,
		},
	}
}

func TestPlan(t *testing.T) {
	svc := newTestService(goaCatalog())

	rec, err := svc.Plan(goaRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Goa, India", rec.Trip.Destination)
	assert.Len(t, rec.Trip.Itinerary, 3)
	assert.NotEmpty(t, rec.RecommendedHotels)
	assert.NotEmpty(t, rec.RecommendedActivities)
	assert.True(t, rec.Weather.IsFavorable)
	assert.InDelta(t, 22680, rec.CostBreakdown.Total, 0.01)
	assert.Greater(t, rec.ConfidenceScore, 5.0)
}

func TestPlanAssignsFreshID(t *testing.T) {
	svc := newTestService(goaCatalog())

	a, err := svc.Plan(goaRequest())
	require.NoError(t, err)
	b, err := svc.Plan(goaRequest())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestPlanUnknownDestination(t *testing.T) {
	svc := newTestService(goaCatalog())
	req := goaRequest()
	req.Destination = "atlantis"

	_, err := svc.Plan(req)
	require.ErrorIs(t, err, domain.ErrDestinationNotFound)
	assert.Contains(t, err.Error(), "atlantis")
}

func TestPlanValidation(t *testing.T) {
	svc := newTestService(goaCatalog())

	cases := []struct {
		name    string
		mutate  func(*domain.TripRequest)
		wantErr error
	}{
		{"missing destination", func(r *domain.TripRequest) { r.Destination = "" }, domain.ErrInvalidRequest},
		{"zero travelers", func(r *domain.TripRequest) { r.Travelers = 0 }, domain.ErrInvalidRequest},
		{"unknown tier", func(r *domain.TripRequest) { r.Preferences.BudgetTier = "platinum" }, domain.ErrInvalidRequest},
		{"bad start date", func(r *domain.TripRequest) { r.StartDate = "12/10/2025" }, domain.ErrInvalidDateRange},
		{"bad end date", func(r *domain.TripRequest) { r.EndDate = "soon" }, domain.ErrInvalidDateRange},
		{"end before start", func(r *domain.TripRequest) { r.EndDate = "2025-12-01" }, domain.ErrInvalidDateRange},
		{"same day", func(r *domain.TripRequest) { r.EndDate = r.StartDate }, domain.ErrInvalidDateRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := goaRequest()
			tc.mutate(&req)
			_, err := svc.Plan(req)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPlanDefaultsEmptyTierToMid(t *testing.T) {
	svc := newTestService(goaCatalog())
	req := goaRequest()
	req.Preferences.BudgetTier = ""

	rec, err := svc.Plan(req)
	require.NoError(t, err)
	// Mid-tier daily budget of 3780 over 3 days for 2 travelers.
	assert.InDelta(t, 22680, rec.CostBreakdown.Total, 0.01)
}

func TestPlanPropagatesCatalogErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := newTestService(&fakeCatalog{err: boom})

	_, err := svc.Plan(goaRequest())
	require.ErrorIs(t, err, boom)
}

func TestOptimizeMatchesPlanShape(t *testing.T) {
	svc := newTestService(goaCatalog())

	rec, err := svc.Optimize(goaRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Len(t, rec.Trip.Itinerary, 3)
}

func TestDestination(t *testing.T) {
	svc := newTestService(goaCatalog())

	dest, err := svc.Destination("goa")
	require.NoError(t, err)
	assert.Equal(t, "Goa, India", dest.Name)

	_, err = svc.Destination("nowhere")
	require.ErrorIs(t, err, domain.ErrDestinationNotFound)
}

func TestSuggestDestinations(t *testing.T) {
	svc := newTestService(goaCatalog())

	got, err := svc.SuggestDestinations([]string{"beach"}, domain.TierMid, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "goa", got[0].Key)
	assert.Greater(t, got[0].MatchScore, 0.0)

	_, err = svc.SuggestDestinations([]string{"beach"}, "platinum", 0, 0)
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestHotels(t *testing.T) {
	svc := newTestService(goaCatalog())

	hotels, err := svc.Hotels("goa", domain.TierMid)
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	for i := 1; i < len(hotels); i++ {
		assert.GreaterOrEqual(t, hotels[i-1].Score.Overall, hotels[i].Score.Overall)
	}

	_, err = svc.Hotels("nowhere", domain.TierMid)
	require.ErrorIs(t, err, domain.ErrDestinationNotFound)
}

func TestActivities(t *testing.T) {
	svc := newTestService(goaCatalog())

	activities, err := svc.Activities("goa", domain.TierMid, []string{"beach"})
	require.NoError(t, err)
	require.Len(t, activities, 3)
	for i := 1; i < len(activities); i++ {
		assert.GreaterOrEqual(t, activities[i-1].Score.Overall, activities[i].Score.Overall)
	}
}

func TestTemplates(t *testing.T) {
	svc := newTestService(goaCatalog())

	trips, err := svc.TripTemplates()
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Coastal Unwind", trips[0].Name)

	profiles, err := svc.PreferenceTemplates()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "adventure_seeker", profiles[0].ProfileType)
}
