package domain

// NewsCategories is the fixed vocabulary of provider categories
var NewsCategories = []string{
	"business", "entertainment", "general", "health", "science", "sports", "technology",
}

// ValidCategory reports whether c is one of the known provider categories
func ValidCategory(c string) bool {
	for _, known := range NewsCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Settings holds user preferences. Categories preserve insertion order and
// never contain duplicates; the set is never empty.
type Settings struct {
	TemperatureUnit  TemperatureUnit `json:"temperatureUnit"`
	Categories       []string        `json:"newsCategories"`
	WeatherFiltering bool            `json:"enableWeatherFiltering"`
	AutoRefresh      bool            `json:"autoRefresh"`
	RefreshInterval  int             `json:"refreshInterval"` // minutes, 0 means default
}

// SettingsUpdate is a partial settings change; nil fields keep current values
type SettingsUpdate struct {
	TemperatureUnit  *TemperatureUnit `json:"temperatureUnit,omitempty"`
	Categories       []string         `json:"newsCategories,omitempty"`
	WeatherFiltering *bool            `json:"enableWeatherFiltering,omitempty"`
	AutoRefresh      *bool            `json:"autoRefresh,omitempty"`
	RefreshInterval  *int             `json:"refreshInterval,omitempty"`
}

// DefaultSettings returns the documented defaults used before any persisted
// value is loaded and as the load fallback.
func DefaultSettings() Settings {
	return Settings{
		TemperatureUnit:  UnitCelsius,
		Categories:       []string{"general"},
		WeatherFiltering: true,
	}
}

// Clone returns a deep copy safe to hand to consumers
func (s Settings) Clone() Settings {
	out := s
	out.Categories = append([]string(nil), s.Categories...)
	return out
}
