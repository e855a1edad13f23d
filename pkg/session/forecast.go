package session

import (
	"time"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

// timeNow is swapped in tests
var timeNow = time.Now

const dailyForecastDays = 5

// aggregateDaily groups forecast samples by calendar day, excluding the
// current day, averaging temperature and picking the condition with the
// highest occurrence count. Ties keep the condition encountered first.
// Days compare by full date, not day-of-month, so a forecast crossing a
// month boundary groups correctly.
func aggregateDaily(series domain.ForecastSeries, now time.Time) []domain.DailyForecast {
	type dayAgg struct {
		date       time.Time
		tempSum    float64
		count      int
		condCounts map[string]int
		condOrder  []string
		samples    []domain.ForecastSample
	}

	todayY, todayM, todayD := now.Date()

	byDay := make(map[time.Time]*dayAgg)
	var order []time.Time

	for _, sample := range series.Samples {
		y, m, d := sample.Time.Date()
		if y == todayY && m == todayM && d == todayD {
			continue
		}
		day := time.Date(y, m, d, 0, 0, 0, 0, sample.Time.Location())

		agg, ok := byDay[day]
		if !ok {
			agg = &dayAgg{date: day, condCounts: map[string]int{}}
			byDay[day] = agg
			order = append(order, day)
		}
		agg.tempSum += sample.Temperature
		agg.count++
		if sample.Condition != "" {
			if _, seen := agg.condCounts[sample.Condition]; !seen {
				agg.condOrder = append(agg.condOrder, sample.Condition)
			}
			agg.condCounts[sample.Condition]++
		}
		agg.samples = append(agg.samples, sample)
	}

	if len(order) > dailyForecastDays {
		order = order[:dailyForecastDays]
	}

	result := make([]domain.DailyForecast, 0, len(order))
	for _, day := range order {
		agg := byDay[day]

		// dominant condition: highest count, first-encountered wins ties
		var dominant string
		best := 0
		for _, cond := range agg.condOrder {
			if agg.condCounts[cond] > best {
				best = agg.condCounts[cond]
				dominant = cond
			}
		}

		df := domain.DailyForecast{
			Date:        day,
			Temperature: agg.tempSum / float64(agg.count),
			Condition:   dominant,
		}
		for _, sample := range agg.samples {
			if sample.Condition == dominant {
				df.Description = sample.Description
				break
			}
		}
		result = append(result, df)
	}
	return result
}
