package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureUnit_APIUnits(t *testing.T) {
	assert.Equal(t, "metric", UnitCelsius.APIUnits())
	assert.Equal(t, "imperial", UnitFahrenheit.APIUnits())
}

func TestTemperatureUnit_Celsius(t *testing.T) {
	tests := []struct {
		unit TemperatureUnit
		in   float64
		want float64
	}{
		{UnitCelsius, 5, 5},
		{UnitCelsius, -10, -10},
		{UnitFahrenheit, 32, 0},
		{UnitFahrenheit, 41, 5},
		{UnitFahrenheit, 212, 100},
		{UnitFahrenheit, -40, -40},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %.0f", tt.unit, tt.in), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.unit.Celsius(tt.in), 0.0001)
		})
	}
}

func TestWeatherSnapshot_TemperatureCelsius(t *testing.T) {
	snap := WeatherSnapshot{Temperature: 41, Unit: UnitFahrenheit}
	assert.InDelta(t, 5.0, snap.TemperatureCelsius(), 0.0001)

	snap = WeatherSnapshot{Temperature: 22, Unit: UnitCelsius}
	assert.InDelta(t, 22.0, snap.TemperatureCelsius(), 0.0001)
}

func TestValidCategory(t *testing.T) {
	for _, c := range NewsCategories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("gossip"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("General")) // vocabulary is lowercase
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, UnitCelsius, s.TemperatureUnit)
	assert.Equal(t, []string{"general"}, s.Categories)
	assert.True(t, s.WeatherFiltering)
	assert.False(t, s.AutoRefresh)
	assert.Zero(t, s.RefreshInterval)
}

func TestSettings_Clone(t *testing.T) {
	s := Settings{TemperatureUnit: UnitCelsius, Categories: []string{"science", "sports"}}
	c := s.Clone()
	c.Categories[0] = "mutated"

	assert.Equal(t, "science", s.Categories[0])
}

func TestArticle_Key(t *testing.T) {
	withURL := Article{Title: "a", URL: "https://example.com/a"}
	assert.Equal(t, "https://example.com/a", withURL.Key(3))

	withoutURL := Article{Title: "b", PublishedAt: time.Now()}
	assert.Equal(t, "idx:3", withoutURL.Key(3))
}

func TestFailuref(t *testing.T) {
	err := Failuref(ErrNetwork, "fetch %s: timeout", "weather")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "fetch weather: timeout")
}

func TestWrapFailure(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := WrapFailure(ErrNetwork, cause, "fetch headlines")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "fetch headlines")

	assert.NoError(t, WrapFailure(ErrNetwork, nil, "no-op"))
}
