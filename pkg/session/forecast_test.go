package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

func TestAggregateDaily(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	day := func(offset int, hour int) time.Time {
		return time.Date(2024, 3, 10+offset, hour, 0, 0, 0, time.UTC)
	}

	series := domain.ForecastSeries{
		Unit: domain.UnitCelsius,
		Samples: []domain.ForecastSample{
			// today, excluded entirely
			{Time: day(0, 12), Temperature: 100, Condition: "Tornado"},
			{Time: day(0, 15), Temperature: 100, Condition: "Tornado"},
			// tomorrow: 2x Rain, 1x Clouds
			{Time: day(1, 9), Temperature: 10, Condition: "Rain", Description: "light rain"},
			{Time: day(1, 12), Temperature: 14, Condition: "Clouds", Description: "few clouds"},
			{Time: day(1, 15), Temperature: 12, Condition: "Rain", Description: "moderate rain"},
			// day after: single sample
			{Time: day(2, 12), Temperature: 20, Condition: "Clear", Description: "clear sky"},
		},
	}

	got := aggregateDaily(series, now)
	require.Len(t, got, 2)

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.InDelta(t, 12.0, got[0].Temperature, 0.001)
	assert.Equal(t, "Rain", got[0].Condition)
	assert.Equal(t, "light rain", got[0].Description) // first sample with the dominant condition

	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), got[1].Date)
	assert.InDelta(t, 20.0, got[1].Temperature, 0.001)
	assert.Equal(t, "Clear", got[1].Condition)
}

func TestAggregateDaily_TieKeepsFirstEncountered(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	series := domain.ForecastSeries{
		Samples: []domain.ForecastSample{
			{Time: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), Temperature: 10, Condition: "Snow"},
			{Time: time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC), Temperature: 10, Condition: "Rain"},
		},
	}

	got := aggregateDaily(series, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Snow", got[0].Condition)
}

func TestAggregateDaily_MonthBoundary(t *testing.T) {
	// samples on Jan 31 and Feb 28 share the day-of-month but are distinct days
	now := time.Date(2024, 1, 30, 9, 0, 0, 0, time.UTC)
	series := domain.ForecastSeries{
		Samples: []domain.ForecastSample{
			{Time: time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC), Temperature: 2, Condition: "Snow"},
			{Time: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), Temperature: 4, Condition: "Clouds"},
			{Time: time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC), Temperature: 6, Condition: "Clear"},
		},
	}

	got := aggregateDaily(series, now)
	require.Len(t, got, 3)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got[1].Date)
	assert.Equal(t, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), got[2].Date)
}

func TestAggregateDaily_CapsAtFiveDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	var samples []domain.ForecastSample
	for i := 1; i <= 7; i++ {
		samples = append(samples, domain.ForecastSample{
			Time:        time.Date(2024, 3, 10+i, 12, 0, 0, 0, time.UTC),
			Temperature: float64(i),
			Condition:   "Clear",
		})
	}

	got := aggregateDaily(domain.ForecastSeries{Samples: samples}, now)
	require.Len(t, got, 5)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got[4].Date)
}

func TestAggregateDaily_Empty(t *testing.T) {
	got := aggregateDaily(domain.ForecastSeries{}, time.Now())
	assert.Empty(t, got)
}

func TestCoordinator_DailyForecast(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	c := testCoordinator(Params{})
	assert.Nil(t, c.DailyForecast())

	c.forecastData = &domain.ForecastSeries{
		Samples: []domain.ForecastSample{
			{Time: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), Temperature: 8, Condition: "Rain"},
			{Time: time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC), Temperature: 10, Condition: "Clear"},
		},
	}

	got := c.DailyForecast()
	require.Len(t, got, 1)
	assert.Equal(t, "Clear", got[0].Condition)
}
