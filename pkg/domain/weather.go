package domain

import "time"

// TemperatureUnit is the display unit for temperatures
type TemperatureUnit string

// supported temperature units
const (
	UnitCelsius    TemperatureUnit = "celsius"
	UnitFahrenheit TemperatureUnit = "fahrenheit"
)

// APIUnits maps the display unit to the provider's unit system parameter
func (u TemperatureUnit) APIUnits() string {
	if u == UnitFahrenheit {
		return "imperial"
	}
	return "metric"
}

// Celsius converts a temperature expressed in this unit to celsius.
// The classifier always works in celsius regardless of the display unit.
func (u TemperatureUnit) Celsius(t float64) float64 {
	if u == UnitFahrenheit {
		return (t - 32) * 5 / 9
	}
	return t
}

// WeatherSnapshot is a complete, immutable weather reading at fetch time.
// Each successful fetch replaces the previous snapshot wholesale.
type WeatherSnapshot struct {
	Location    string
	Condition   string // primary condition code, e.g. "Rain"
	Description string
	Temperature float64 // in the unit the fetch was issued with
	Unit        TemperatureUnit
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
}

// TemperatureCelsius returns the snapshot temperature normalized to celsius
func (w WeatherSnapshot) TemperatureCelsius() float64 {
	return w.Unit.Celsius(w.Temperature)
}

// ForecastSample is a single timestamped entry of a forecast series
type ForecastSample struct {
	Time        time.Time
	Temperature float64
	Condition   string
	Description string
}

// ForecastSeries is the ordered multi-day forecast as returned by the provider
type ForecastSeries struct {
	Location string
	Unit     TemperatureUnit
	Samples  []ForecastSample
}

// DailyForecast is one aggregated day derived from a ForecastSeries
type DailyForecast struct {
	Date        time.Time
	Temperature float64 // average over the day's samples
	Condition   string  // most frequent condition, first-encountered wins ties
	Description string
}
