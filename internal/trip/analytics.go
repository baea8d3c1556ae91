package trip

import (
	"math"
	"sort"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

type PopularDestination struct {
	Destination   string  `json:"destination"`
	Key           string  `json:"key"`
	Popularity    float64 `json:"popularity_score"`
	TotalBookings int     `json:"total_bookings"`
	AvgRating     float64 `json:"avg_rating"`
}

type Analytics struct {
	PopularDestinations []PopularDestination `json:"popular_destinations"`
	TrendingCategories  []string             `json:"trending_categories"`
	PeakSeasonMonths    []int                `json:"peak_season_months"`
	AvgTripDuration     float64              `json:"avg_trip_duration"`
	MostRequestedBudget string               `json:"most_requested_budget"`
}

// PopularDestinations derives popularity from catalog quality ratings
// (mean hotel and activity rating per destination) instead of simulating
// it per request, so repeated calls agree. Booking totals are a simple
// projection of the same signal; real usage data does not exist here.
func (s *Service) PopularDestinations() (Analytics, error) {
	dests, err := s.catalog.ListDestinations()
	if err != nil {
		return Analytics{}, err
	}

	popular := make([]PopularDestination, 0, len(dests))
	categoryCounts := map[string]int{}
	monthCounts := map[int]int{}

	for _, d := range dests {
		for _, c := range d.Categories {
			categoryCounts[c]++
		}
		for _, m := range d.BestMonths {
			monthCounts[m]++
		}

		avg, err := s.avgCatalogRating(d.Key)
		if err != nil {
			return Analytics{}, err
		}

		popular = append(popular, PopularDestination{
			Destination:   d.Name,
			Key:           d.Key,
			Popularity:    round1(avg),
			TotalBookings: int(avg * 200),
			AvgRating:     round1(avg),
		})
	}

	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Popularity > popular[j].Popularity
	})
	if len(popular) > 5 {
		popular = popular[:5]
	}

	return Analytics{
		PopularDestinations: popular,
		TrendingCategories:  topKeys(categoryCounts, 4),
		PeakSeasonMonths:    topMonths(monthCounts, 5),
		AvgTripDuration:     7.5,
		MostRequestedBudget: string(domain.TierMid),
	}, nil
}

func (s *Service) avgCatalogRating(key string) (float64, error) {
	hotels, err := s.catalog.GetHotels(key, domain.TierMid)
	if err != nil {
		return 0, err
	}
	activities, err := s.catalog.GetActivities(key, nil)
	if err != nil {
		return 0, err
	}

	var sum float64
	var n int
	for _, h := range hotels {
		sum += h.Rating
		n++
	}
	for _, a := range activities {
		sum += a.Rating
		n++
	}
	if n == 0 {
		return 4.0, nil
	}
	return sum / float64(n), nil
}

func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func topMonths(counts map[int]int, n int) []int {
	months := make([]int, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		if counts[months[i]] != counts[months[j]] {
			return counts[months[i]] > counts[months[j]]
		}
		return months[i] < months[j]
	})
	if len(months) > n {
		months = months[:n]
	}
	return months
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
