package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripwise/ai-trip-planner/internal/domain"
)

func TestSimulatedSnapshot(t *testing.T) {
	dest := domain.Destination{
		BestMonths: []int{11, 12, 1},
		AvgTempMin: 20,
		AvgTempMax: 35,
	}
	p := NewSimulated(1)

	for i := 0; i < 50; i++ {
		got := p.Snapshot(dest, 12)
		assert.True(t, got.IsFavorable)
		assert.Contains(t, favorableConditions, got.Condition)
		assert.GreaterOrEqual(t, got.Temperature, 20)
		assert.LessOrEqual(t, got.Temperature, 35)
		assert.Equal(t, "Weather is favorable for travel", got.Description)
	}
}

func TestSimulatedSnapshotOutOfSeason(t *testing.T) {
	dest := domain.Destination{
		BestMonths: []int{11, 12, 1},
		AvgTempMin: 20,
		AvgTempMax: 35,
	}
	p := NewSimulated(1)

	got := p.Snapshot(dest, 6)
	assert.False(t, got.IsFavorable)
	assert.Contains(t, allConditions, got.Condition)
	assert.Equal(t, "Weather is acceptable for travel", got.Description)
}

func TestSimulatedSnapshotDefaultTempRange(t *testing.T) {
	p := NewSimulated(7)

	for i := 0; i < 50; i++ {
		got := p.Snapshot(domain.Destination{}, 3)
		assert.GreaterOrEqual(t, got.Temperature, 20)
		assert.LessOrEqual(t, got.Temperature, 30)
	}
}

func TestSimulatedIsDeterministicForSeed(t *testing.T) {
	dest := domain.Destination{BestMonths: []int{5}, AvgTempMin: 10, AvgTempMax: 25}

	a := NewSimulated(42).Snapshot(dest, 5)
	b := NewSimulated(42).Snapshot(dest, 5)
	assert.Equal(t, a, b)
}

func TestFixedSnapshot(t *testing.T) {
	want := domain.WeatherReport{Temperature: 28, Condition: "sunny", IsFavorable: true}
	f := Fixed{Report: want}
	assert.Equal(t, want, f.Snapshot(domain.Destination{}, 1))
}
