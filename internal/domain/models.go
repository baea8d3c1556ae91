package domain

// BudgetTier selects which column of a tiered price map applies.
type BudgetTier string

const (
	TierBudget BudgetTier = "budget"
	TierMid    BudgetTier = "mid"
	TierLuxury BudgetTier = "luxury"
)

func (t BudgetTier) Valid() bool {
	switch t {
	case TierBudget, TierMid, TierLuxury:
		return true
	}
	return false
}

// TierPrices holds a price or budget per tier.
type TierPrices struct {
	Budget float64 `json:"budget"`
	Mid    float64 `json:"mid"`
	Luxury float64 `json:"luxury"`
}

// For returns the price at the given tier, falling back to mid for
// anything unrecognized.
func (p TierPrices) For(t BudgetTier) float64 {
	switch t {
	case TierBudget:
		return p.Budget
	case TierLuxury:
		return p.Luxury
	default:
		return p.Mid
	}
}

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// PreferenceProfile is the immutable preference input to scoring.
type PreferenceProfile struct {
	Interests         []string   `json:"interests"`
	BudgetTier        BudgetTier `json:"budget_type"`
	TravelStyle       string     `json:"travel_style,omitempty"`
	AccommodationType string     `json:"accommodation_type"`
	ActivityIntensity Intensity  `json:"activity_intensity"`
	GroupSize         string     `json:"group_size_preference,omitempty"`
}

type Destination struct {
	Key          string     `json:"key"`
	Name         string     `json:"name"`
	Country      string     `json:"country"`
	Description  string     `json:"description"`
	Categories   []string   `json:"categories"`
	BestMonths   []int      `json:"best_months"`
	AvgTempMin   int        `json:"avg_temp_min"`
	AvgTempMax   int        `json:"avg_temp_max"`
	Currency     string     `json:"currency"`
	DailyBudget  TierPrices `json:"avg_daily_budget"`
	PopularAreas []string   `json:"popular_areas"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
}

// HasBestMonth reports whether the month (1-12) is one of the
// destination's best travel months.
func (d Destination) HasBestMonth(month int) bool {
	for _, m := range d.BestMonths {
		if m == month {
			return true
		}
	}
	return false
}

type Hotel struct {
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Rating        float64    `json:"rating"`
	PricePerNight TierPrices `json:"price_per_night"`
	Amenities     []string   `json:"amenities"`
	Location      string     `json:"location"`
	Description   string     `json:"description"`
}

func (h Hotel) HasAmenity(name string) bool {
	for _, a := range h.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

type Activity struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Duration    int        `json:"duration"` // hours
	Cost        TierPrices `json:"cost"`
	Rating      float64    `json:"rating"`
	Description string     `json:"description"`
	BestTime    string     `json:"best_time"` // morning, afternoon, evening
	Location    string     `json:"location"`
	Categories  []string   `json:"categories"`
}

// ScoreResult carries the sub-scores behind a recommendation. All
// fields are in [0,10].
type ScoreResult struct {
	Overall       float64 `json:"overall_score"`
	InterestMatch float64 `json:"interest_match"`
	BudgetFit     float64 `json:"budget_fit"`
	WeatherFactor float64 `json:"weather_factor"`
	Popularity    float64 `json:"popularity_score"`
}

type ScoredHotel struct {
	Hotel
	Score ScoreResult `json:"recommendation_score"`
}

type ScoredActivity struct {
	Activity
	Score ScoreResult `json:"recommendation_score"`
}

// Event is a scheduled entry inside a visited place.
type Event struct {
	Name        string  `json:"name"`
	Time        string  `json:"time"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost"`
}

type VisitPlace struct {
	Name        string  `json:"name"`
	Times       string  `json:"times"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost_per_visitplace"`
	Events      []Event `json:"events,omitempty"`
}

// DailyPlan is the itinerary for a single day.
type DailyPlan struct {
	Date      string       `json:"date"`
	Travelers int          `json:"number_of_persons"`
	Places    []VisitPlace `json:"places"`
}

type BookedHotel struct {
	Name         string  `json:"name"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	CostPerNight float64 `json:"cost_per_night"`
	Address      string  `json:"address,omitempty"`
}

type Trip struct {
	Destination string        `json:"destination"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Travelers   int           `json:"travelers"`
	Itinerary   []DailyPlan   `json:"itinerary"`
	Hotels      []BookedHotel `json:"hotels,omitempty"`
	TotalBudget float64       `json:"total_budget"`
}

// CostBreakdown splits the trip cost by category. Total is always the
// exact sum of the four categories.
type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Total         float64 `json:"total"`
	PerPerson     float64 `json:"per_person"`
	PerDay        float64 `json:"per_day"`
}

type WeatherReport struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	IsFavorable bool   `json:"is_favorable"`
	Description string `json:"description"`
}

// TripRecommendation is the complete planning result. Built once per
// request, never persisted.
type TripRecommendation struct {
	ID                    string           `json:"id"`
	Trip                  Trip             `json:"trip"`
	Weather               WeatherReport    `json:"weather_info"`
	CostBreakdown         CostBreakdown    `json:"cost_breakdown"`
	RecommendedHotels     []ScoredHotel    `json:"recommended_hotels"`
	RecommendedActivities []ScoredActivity `json:"recommended_activities"`
	PersonalizationNotes  []string         `json:"personalization_notes"`
	ConfidenceScore       float64          `json:"confidence_score"`
}

type TripRequest struct {
	Destination string            `json:"destination"`
	StartDate   string            `json:"start_date"` // YYYY-MM-DD
	EndDate     string            `json:"end_date"`
	Travelers   int               `json:"travelers"`
	Preferences PreferenceProfile `json:"preferences"`
}

type DestinationSuggestion struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Country     string     `json:"country"`
	Description string     `json:"description"`
	Categories  []string   `json:"categories"`
	BestMonths  []int      `json:"best_months"`
	DailyBudget TierPrices `json:"avg_daily_budget"`
	MatchScore  float64    `json:"match_score"`
	Reasons     []string   `json:"reasons"`
}

type TripTemplate struct {
	Name                    string     `json:"name"`
	Description             string     `json:"description"`
	Interests               []string   `json:"interests"`
	BudgetTier              BudgetTier `json:"budget_type"`
	TravelStyle             string     `json:"travel_style"`
	AccommodationType       string     `json:"accommodation_type"`
	ActivityIntensity       Intensity  `json:"activity_intensity"`
	RecommendedDestinations []string   `json:"recommended_destinations"`
	DurationMin             int        `json:"duration_min"`
	DurationMax             int        `json:"duration_max"`
	Highlights              []string   `json:"highlights"`
}

type PreferenceTemplate struct {
	ProfileType       string     `json:"profile_type"`
	Interests         []string   `json:"interests"`
	BudgetTier        BudgetTier `json:"budget_preference"`
	AccommodationType string     `json:"accommodation_type"`
	ActivityIntensity Intensity  `json:"activity_intensity"`
	GroupSize         string     `json:"group_size_preference"`
}
