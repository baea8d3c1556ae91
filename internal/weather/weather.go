// Package weather supplies the simulated weather snapshot used by trip
// planning. Favorability is deterministic (month in the destination's
// best months); temperature and condition come from a seedable random
// source so scenario tests can pin them down.
package weather

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

// Provider produces a weather snapshot for a destination and month.
type Provider interface {
	Snapshot(dest domain.Destination, month int) domain.WeatherReport
}

var (
	favorableConditions = []string{"sunny", "partly_cloudy"}
	allConditions       = []string{"sunny", "partly_cloudy", "cloudy", "rainy"}
)

// Simulated draws temperature and condition from its own rand source.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulated(seed int64) *Simulated {
	return &Simulated{rng: rand.New(rand.NewSource(seed))}
}

func (s *Simulated) Snapshot(dest domain.Destination, month int) domain.WeatherReport {
	favorable := dest.HasBestMonth(month)

	min, max := dest.AvgTempMin, dest.AvgTempMax
	if max <= min {
		min, max = 20, 30
	}

	pool := allConditions
	if favorable {
		pool = favorableConditions
	}

	s.mu.Lock()
	temp := min + s.rng.Intn(max-min+1)
	condition := pool[s.rng.Intn(len(pool))]
	s.mu.Unlock()

	word := "acceptable"
	if favorable {
		word = "favorable"
	}

	return domain.WeatherReport{
		Temperature: temp,
		Condition:   condition,
		IsFavorable: favorable,
		Description: fmt.Sprintf("Weather is %s for travel", word),
	}
}

// Fixed always returns the same report. Test double.
type Fixed struct {
	Report domain.WeatherReport
}

func (f Fixed) Snapshot(domain.Destination, int) domain.WeatherReport {
	return f.Report
}
