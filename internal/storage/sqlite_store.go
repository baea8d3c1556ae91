package storage

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

// SQLiteStore is the read-mostly travel catalog. List-valued columns are
// stored as JSON text.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS destinations (
  key TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  country TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  latitude REAL NOT NULL DEFAULT 0,
  longitude REAL NOT NULL DEFAULT 0,
  best_months_json TEXT NOT NULL DEFAULT '[]',
  avg_temp_min INTEGER NOT NULL DEFAULT 0,
  avg_temp_max INTEGER NOT NULL DEFAULT 0,
  currency TEXT NOT NULL DEFAULT 'INR',
  daily_budget REAL NOT NULL DEFAULT 0,
  daily_mid REAL NOT NULL DEFAULT 0,
  daily_luxury REAL NOT NULL DEFAULT 0,
  popular_areas_json TEXT NOT NULL DEFAULT '[]',
  categories_json TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS hotels (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  destination_key TEXT NOT NULL REFERENCES destinations(key),
  name TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT 'mid',
  rating REAL NOT NULL DEFAULT 0,
  price_budget REAL NOT NULL DEFAULT 0,
  price_mid REAL NOT NULL DEFAULT 0,
  price_luxury REAL NOT NULL DEFAULT 0,
  amenities_json TEXT NOT NULL DEFAULT '[]',
  location TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS activities (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  destination_key TEXT NOT NULL REFERENCES destinations(key),
  name TEXT NOT NULL,
  type TEXT NOT NULL DEFAULT '',
  duration INTEGER NOT NULL DEFAULT 0,
  rating REAL NOT NULL DEFAULT 0,
  cost_budget REAL NOT NULL DEFAULT 0,
  cost_mid REAL NOT NULL DEFAULT 0,
  cost_luxury REAL NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  best_time TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  categories_json TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS trip_templates (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  interests_json TEXT NOT NULL DEFAULT '[]',
  budget_type TEXT NOT NULL DEFAULT 'mid',
  travel_style TEXT NOT NULL DEFAULT '',
  accommodation_type TEXT NOT NULL DEFAULT '',
  activity_intensity TEXT NOT NULL DEFAULT 'medium',
  destinations_json TEXT NOT NULL DEFAULT '[]',
  duration_min INTEGER NOT NULL DEFAULT 0,
  duration_max INTEGER NOT NULL DEFAULT 0,
  highlights_json TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS preference_templates (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  profile_type TEXT NOT NULL UNIQUE,
  interests_json TEXT NOT NULL DEFAULT '[]',
  budget_preference TEXT NOT NULL DEFAULT 'mid',
  accommodation_type TEXT NOT NULL DEFAULT '',
  activity_intensity TEXT NOT NULL DEFAULT 'medium',
  group_size TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_hotels_destination ON hotels(destination_key);
CREATE INDEX IF NOT EXISTS idx_activities_destination ON activities(destination_key);
`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) CountDestinations() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM destinations`).Scan(&n)
	return n, err
}

// Seed inserts the catalog without duplicating destinations by key.
func (s *SQLiteStore) Seed(c Catalog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, d := range c.Destinations {
		months, _ := json.Marshal(d.BestMonths)
		areas, _ := json.Marshal(d.PopularAreas)
		cats, _ := json.Marshal(d.Categories)

		if _, err := tx.Exec(`
INSERT OR IGNORE INTO destinations
(key, name, country, description, latitude, longitude, best_months_json,
 avg_temp_min, avg_temp_max, currency, daily_budget, daily_mid, daily_luxury,
 popular_areas_json, categories_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
			d.Key, d.Name, d.Country, d.Description, d.Latitude, d.Longitude, string(months),
			d.AvgTempMin, d.AvgTempMax, d.Currency, d.DailyBudget.Budget, d.DailyBudget.Mid, d.DailyBudget.Luxury,
			string(areas), string(cats),
		); err != nil {
			return err
		}
	}

	for destKey, hotels := range c.Hotels {
		for _, h := range hotels {
			am, _ := json.Marshal(h.Amenities)
			if _, err := tx.Exec(`
INSERT INTO hotels
(destination_key, name, category, rating, price_budget, price_mid, price_luxury,
 amenities_json, location, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
				destKey, h.Name, h.Category, h.Rating,
				h.PricePerNight.Budget, h.PricePerNight.Mid, h.PricePerNight.Luxury,
				string(am), h.Location, h.Description,
			); err != nil {
				return err
			}
		}
	}

	for destKey, activities := range c.Activities {
		for _, a := range activities {
			cats, _ := json.Marshal(a.Categories)
			if _, err := tx.Exec(`
INSERT INTO activities
(destination_key, name, type, duration, rating, cost_budget, cost_mid, cost_luxury,
 description, best_time, location, categories_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
				destKey, a.Name, a.Type, a.Duration, a.Rating,
				a.Cost.Budget, a.Cost.Mid, a.Cost.Luxury,
				a.Description, a.BestTime, a.Location, string(cats),
			); err != nil {
				return err
			}
		}
	}

	for _, t := range c.TripTemplates {
		interests, _ := json.Marshal(t.Interests)
		dests, _ := json.Marshal(t.RecommendedDestinations)
		highlights, _ := json.Marshal(t.Highlights)
		if _, err := tx.Exec(`
INSERT INTO trip_templates
(name, description, interests_json, budget_type, travel_style, accommodation_type,
 activity_intensity, destinations_json, duration_min, duration_max, highlights_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
			t.Name, t.Description, string(interests), t.BudgetTier, t.TravelStyle, t.AccommodationType,
			t.ActivityIntensity, string(dests), t.DurationMin, t.DurationMax, string(highlights),
		); err != nil {
			return err
		}
	}

	for _, t := range c.PreferenceTemplates {
		interests, _ := json.Marshal(t.Interests)
		if _, err := tx.Exec(`
INSERT OR IGNORE INTO preference_templates
(profile_type, interests_json, budget_preference, accommodation_type, activity_intensity, group_size)
VALUES (?, ?, ?, ?, ?, ?)
`,
			t.ProfileType, string(interests), t.BudgetTier, t.AccommodationType, t.ActivityIntensity, t.GroupSize,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetDestination(key string) (domain.Destination, bool, error) {
	var (
		d                           domain.Destination
		monthsJSON, areasJSON, cats string
	)
	err := s.db.QueryRow(`
SELECT key, name, country, description, latitude, longitude, best_months_json,
       avg_temp_min, avg_temp_max, currency, daily_budget, daily_mid, daily_luxury,
       popular_areas_json, categories_json
FROM destinations WHERE key = ?
`, key).Scan(
		&d.Key, &d.Name, &d.Country, &d.Description, &d.Latitude, &d.Longitude, &monthsJSON,
		&d.AvgTempMin, &d.AvgTempMax, &d.Currency, &d.DailyBudget.Budget, &d.DailyBudget.Mid, &d.DailyBudget.Luxury,
		&areasJSON, &cats,
	)
	if err == sql.ErrNoRows {
		return domain.Destination{}, false, nil
	}
	if err != nil {
		return domain.Destination{}, false, err
	}

	_ = json.Unmarshal([]byte(monthsJSON), &d.BestMonths)
	_ = json.Unmarshal([]byte(areasJSON), &d.PopularAreas)
	_ = json.Unmarshal([]byte(cats), &d.Categories)
	return d, true, nil
}

func (s *SQLiteStore) ListDestinations() ([]domain.Destination, error) {
	rows, err := s.db.Query(`
SELECT key, name, country, description, latitude, longitude, best_months_json,
       avg_temp_min, avg_temp_max, currency, daily_budget, daily_mid, daily_luxury,
       popular_areas_json, categories_json
FROM destinations ORDER BY key
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		var (
			d                           domain.Destination
			monthsJSON, areasJSON, cats string
		)
		if err := rows.Scan(
			&d.Key, &d.Name, &d.Country, &d.Description, &d.Latitude, &d.Longitude, &monthsJSON,
			&d.AvgTempMin, &d.AvgTempMax, &d.Currency, &d.DailyBudget.Budget, &d.DailyBudget.Mid, &d.DailyBudget.Luxury,
			&areasJSON, &cats,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(monthsJSON), &d.BestMonths)
		_ = json.Unmarshal([]byte(areasJSON), &d.PopularAreas)
		_ = json.Unmarshal([]byte(cats), &d.Categories)
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetHotels returns the destination's hotels priced for the tier. Hotels
// without a price at the tier are skipped unless that would leave the
// list empty, in which case the full list is returned.
func (s *SQLiteStore) GetHotels(destinationKey string, tier domain.BudgetTier) ([]domain.Hotel, error) {
	rows, err := s.db.Query(`
SELECT name, category, rating, price_budget, price_mid, price_luxury,
       amenities_json, location, description
FROM hotels WHERE destination_key = ? ORDER BY id
`, destinationKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all, priced []domain.Hotel
	for rows.Next() {
		var (
			h  domain.Hotel
			am string
		)
		if err := rows.Scan(
			&h.Name, &h.Category, &h.Rating,
			&h.PricePerNight.Budget, &h.PricePerNight.Mid, &h.PricePerNight.Luxury,
			&am, &h.Location, &h.Description,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(am), &h.Amenities)
		all = append(all, h)
		if h.PricePerNight.For(tier) > 0 {
			priced = append(priced, h)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(priced) > 0 {
		return priced, nil
	}
	return all, nil
}

// GetActivities returns the destination's activities, filtered to those
// sharing a category with the interests. An empty filter result falls
// back to the full list so sparse catalogs still produce itineraries.
func (s *SQLiteStore) GetActivities(destinationKey string, interests []string) ([]domain.Activity, error) {
	rows, err := s.db.Query(`
SELECT name, type, duration, rating, cost_budget, cost_mid, cost_luxury,
       description, best_time, location, categories_json
FROM activities WHERE destination_key = ? ORDER BY id
`, destinationKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all, matched []domain.Activity
	for rows.Next() {
		var (
			a    domain.Activity
			cats string
		)
		if err := rows.Scan(
			&a.Name, &a.Type, &a.Duration, &a.Rating,
			&a.Cost.Budget, &a.Cost.Mid, &a.Cost.Luxury,
			&a.Description, &a.BestTime, &a.Location, &cats,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(cats), &a.Categories)
		all = append(all, a)
		if matchesAnyInterest(a.Categories, interests) {
			matched = append(matched, a)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(interests) == 0 || len(matched) == 0 {
		return all, nil
	}
	return matched, nil
}

func matchesAnyInterest(categories, interests []string) bool {
	for _, c := range categories {
		for _, i := range interests {
			if c == i {
				return true
			}
		}
	}
	return false
}

func (s *SQLiteStore) ListTripTemplates() ([]domain.TripTemplate, error) {
	rows, err := s.db.Query(`
SELECT name, description, interests_json, budget_type, travel_style, accommodation_type,
       activity_intensity, destinations_json, duration_min, duration_max, highlights_json
FROM trip_templates ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TripTemplate
	for rows.Next() {
		var (
			t                            domain.TripTemplate
			interests, dests, highlights string
		)
		if err := rows.Scan(
			&t.Name, &t.Description, &interests, &t.BudgetTier, &t.TravelStyle, &t.AccommodationType,
			&t.ActivityIntensity, &dests, &t.DurationMin, &t.DurationMax, &highlights,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(interests), &t.Interests)
		_ = json.Unmarshal([]byte(dests), &t.RecommendedDestinations)
		_ = json.Unmarshal([]byte(highlights), &t.Highlights)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListPreferenceTemplates() ([]domain.PreferenceTemplate, error) {
	rows, err := s.db.Query(`
SELECT profile_type, interests_json, budget_preference, accommodation_type, activity_intensity, group_size
FROM preference_templates ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PreferenceTemplate
	for rows.Next() {
		var (
			t         domain.PreferenceTemplate
			interests string
		)
		if err := rows.Scan(
			&t.ProfileType, &interests, &t.BudgetTier, &t.AccommodationType, &t.ActivityIntensity, &t.GroupSize,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(interests), &t.Interests)
		out = append(out, t)
	}
	return out, rows.Err()
}
