package recommend

import (
	"encoding/json"
	"fmt"
	"os"
)

// ActivityWeights are the overall-score coefficients for activities.
type ActivityWeights struct {
	InterestMatch  float64 `json:"interest_match"`
	BudgetFit      float64 `json:"budget_fit"`
	WeatherFactor  float64 `json:"weather_factor"`
	Popularity     float64 `json:"popularity"`
	IntensityMatch float64 `json:"intensity_match"`
}

// HotelWeights are the overall-score coefficients for hotels.
type HotelWeights struct {
	BudgetFit          float64 `json:"budget_fit"`
	AccommodationMatch float64 `json:"accommodation_match"`
	AmenityMatch       float64 `json:"amenity_match"`
	Popularity         float64 `json:"popularity"`
}

// Weights bundles every tunable of the engine: score combination
// coefficients and the interest affinity table.
type Weights struct {
	Activity ActivityWeights               `json:"activity"`
	Hotel    HotelWeights                  `json:"hotel"`
	Affinity map[string]map[string]float64 `json:"affinity"`
}

// DefaultWeights returns the baseline tuning. The affinity table maps a
// user interest to related item categories with a weight in (0,1];
// direct matches carry 1.0.
func DefaultWeights() Weights {
	return Weights{
		Activity: ActivityWeights{
			InterestMatch:  0.35,
			BudgetFit:      0.25,
			WeatherFactor:  0.15,
			Popularity:     0.15,
			IntensityMatch: 0.10,
		},
		Hotel: HotelWeights{
			BudgetFit:          0.4,
			AccommodationMatch: 0.3,
			AmenityMatch:       0.2,
			Popularity:         0.1,
		},
		Affinity: map[string]map[string]float64{
			"adventure":  {"adventure": 1.0, "nature": 0.8, "sports": 0.7},
			"cultural":   {"cultural": 1.0, "historical": 0.9, "educational": 0.8},
			"relaxation": {"relaxation": 1.0, "wellness": 0.9, "beach": 0.8},
			"culinary":   {"culinary": 1.0, "food": 1.0, "cultural": 0.6},
			"nature":     {"nature": 1.0, "adventure": 0.7, "photography": 0.8},
			"historical": {"historical": 1.0, "cultural": 0.9, "educational": 0.8},
			"urban":      {"urban": 1.0, "entertainment": 0.8, "shopping": 0.7},
			"spiritual":  {"spiritual": 1.0, "cultural": 0.7, "wellness": 0.6},
		},
	}
}

// LoadWeightsFromFile loads weights from a JSON file, falling back to
// defaults on read errors.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}
