// Package trip wires the catalog, the weather provider and the
// recommendation engine into the planning operations the HTTP layer
// exposes. All catalog reads happen once per request; the engine works
// on that snapshot.
package trip

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tripwise/ai-trip-planner/internal/domain"
	"github.com/tripwise/ai-trip-planner/internal/recommend"
	"github.com/tripwise/ai-trip-planner/internal/weather"
)

const dateLayout = "2006-01-02"

// Catalog is the read-only data access the service depends on.
type Catalog interface {
	GetDestination(key string) (domain.Destination, bool, error)
	ListDestinations() ([]domain.Destination, error)
	GetHotels(destinationKey string, tier domain.BudgetTier) ([]domain.Hotel, error)
	GetActivities(destinationKey string, interests []string) ([]domain.Activity, error)
	ListTripTemplates() ([]domain.TripTemplate, error)
	ListPreferenceTemplates() ([]domain.PreferenceTemplate, error)
}

type Service struct {
	catalog Catalog
	weather weather.Provider
	engine  *recommend.Engine
}

func NewService(catalog Catalog, wx weather.Provider, engine *recommend.Engine) *Service {
	return &Service{catalog: catalog, weather: wx, engine: engine}
}

// Plan validates the request, fetches the catalog snapshot and runs the
// engine. Unknown destinations fail with domain.ErrDestinationNotFound;
// bad request shapes fail with domain.ErrInvalidRequest or
// domain.ErrInvalidDateRange.
func (s *Service) Plan(req domain.TripRequest) (domain.TripRecommendation, error) {
	req, start, end, err := validate(req)
	if err != nil {
		return domain.TripRecommendation{}, err
	}

	dest, ok, err := s.catalog.GetDestination(req.Destination)
	if err != nil {
		return domain.TripRecommendation{}, fmt.Errorf("load destination: %w", err)
	}
	if !ok {
		return domain.TripRecommendation{}, fmt.Errorf("%w: %q", domain.ErrDestinationNotFound, req.Destination)
	}

	hotels, err := s.catalog.GetHotels(req.Destination, req.Preferences.BudgetTier)
	if err != nil {
		return domain.TripRecommendation{}, fmt.Errorf("load hotels: %w", err)
	}
	activities, err := s.catalog.GetActivities(req.Destination, req.Preferences.Interests)
	if err != nil {
		return domain.TripRecommendation{}, fmt.Errorf("load activities: %w", err)
	}

	wx := s.weather.Snapshot(dest, int(start.Month()))

	rec, err := s.engine.Plan(recommend.PlanInput{
		Request:     req,
		Destination: dest,
		Hotels:      hotels,
		Activities:  activities,
		Weather:     wx,
		Start:       start,
		End:         end,
	})
	if err != nil {
		return domain.TripRecommendation{}, err
	}

	rec.ID = uuid.NewString()
	return rec, nil
}

// Optimize re-plans a trip with updated preferences. Today it is an
// alias of Plan; an incremental optimization contract does not exist yet.
func (s *Service) Optimize(req domain.TripRequest) (domain.TripRecommendation, error) {
	return s.Plan(req)
}

func validate(req domain.TripRequest) (domain.TripRequest, time.Time, time.Time, error) {
	var zero time.Time

	if req.Destination == "" {
		return req, zero, zero, fmt.Errorf("%w: destination is required", domain.ErrInvalidRequest)
	}
	if req.Travelers < 1 {
		return req, zero, zero, fmt.Errorf("%w: travelers must be at least 1", domain.ErrInvalidRequest)
	}

	if req.Preferences.BudgetTier == "" {
		req.Preferences.BudgetTier = domain.TierMid
	}
	if !req.Preferences.BudgetTier.Valid() {
		return req, zero, zero, fmt.Errorf("%w: unknown budget tier %q", domain.ErrInvalidRequest, req.Preferences.BudgetTier)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return req, zero, zero, fmt.Errorf("%w: bad start date %q", domain.ErrInvalidDateRange, req.StartDate)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return req, zero, zero, fmt.Errorf("%w: bad end date %q", domain.ErrInvalidDateRange, req.EndDate)
	}
	if !end.After(start) {
		return req, zero, zero, fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidDateRange)
	}

	return req, start, end, nil
}

// Destinations lists the full destination catalog.
func (s *Service) Destinations() ([]domain.Destination, error) {
	return s.catalog.ListDestinations()
}

// Destination returns a single catalog record.
func (s *Service) Destination(key string) (domain.Destination, error) {
	dest, ok, err := s.catalog.GetDestination(key)
	if err != nil {
		return domain.Destination{}, err
	}
	if !ok {
		return domain.Destination{}, fmt.Errorf("%w: %q", domain.ErrDestinationNotFound, key)
	}
	return dest, nil
}

// SuggestDestinations ranks all destinations against the interests and
// tier. minBudget/maxBudget of 0 mean unbounded.
func (s *Service) SuggestDestinations(interests []string, tier domain.BudgetTier, minBudget, maxBudget float64) ([]domain.DestinationSuggestion, error) {
	if tier == "" {
		tier = domain.TierMid
	}
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown budget tier %q", domain.ErrInvalidRequest, tier)
	}

	dests, err := s.catalog.ListDestinations()
	if err != nil {
		return nil, err
	}
	prefs := domain.PreferenceProfile{Interests: interests, BudgetTier: tier}
	return s.engine.SuggestDestinations(dests, prefs, minBudget, maxBudget), nil
}

// Hotels returns the destination's hotels, ranked for the tier.
func (s *Service) Hotels(key string, tier domain.BudgetTier) ([]domain.ScoredHotel, error) {
	if tier == "" {
		tier = domain.TierMid
	}
	dest, err := s.Destination(key)
	if err != nil {
		return nil, err
	}
	hotels, err := s.catalog.GetHotels(key, tier)
	if err != nil {
		return nil, err
	}

	prefs := domain.PreferenceProfile{BudgetTier: tier, AccommodationType: string(tier)}
	return s.engine.RankHotels(hotels, prefs, dest.DailyBudget.For(tier)), nil
}

// Activities returns the destination's activities filtered by interests
// and ranked for the tier and the current month.
func (s *Service) Activities(key string, tier domain.BudgetTier, interests []string) ([]domain.ScoredActivity, error) {
	if tier == "" {
		tier = domain.TierMid
	}
	dest, err := s.Destination(key)
	if err != nil {
		return nil, err
	}
	activities, err := s.catalog.GetActivities(key, interests)
	if err != nil {
		return nil, err
	}

	month := int(time.Now().Month())
	prefs := domain.PreferenceProfile{Interests: interests, BudgetTier: tier}
	ctx := recommend.TripContext{
		Destination: dest,
		TravelMonth: month,
		DailyBudget: dest.DailyBudget.For(tier),
		Weather:     s.weather.Snapshot(dest, month),
	}
	return s.engine.RankActivities(activities, prefs, ctx), nil
}

// TripTemplates lists the predefined trip templates.
func (s *Service) TripTemplates() ([]domain.TripTemplate, error) {
	return s.catalog.ListTripTemplates()
}

// PreferenceTemplates lists the predefined traveler profiles.
func (s *Service) PreferenceTemplates() ([]domain.PreferenceTemplate, error) {
	return s.catalog.ListPreferenceTemplates()
}
