package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

// Catalog is the shape of the seed data file: hotels and activities are
// grouped by destination key.
type Catalog struct {
	Destinations        []domain.Destination         `json:"destinations"`
	Hotels              map[string][]domain.Hotel    `json:"hotels"`
	Activities          map[string][]domain.Activity `json:"activities"`
	TripTemplates       []domain.TripTemplate        `json:"trip_templates"`
	PreferenceTemplates []domain.PreferenceTemplate  `json:"preference_templates"`
}

// LoadCatalogFromFile reads the seed catalog from a JSON file.
func LoadCatalogFromFile(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return c, nil
}
