package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

// settingsKey is the single fixed key used in the persistent store
const settingsKey = "user_settings"

// update rejection reasons
var (
	ErrEmptyCategories  = errors.New("news categories can't be empty")
	ErrUnknownCategory  = errors.New("unknown news category")
	ErrUnknownUnit      = errors.New("unknown temperature unit")
	ErrNegativeInterval = errors.New("refresh interval can't be negative")
)

// SettingsStore holds the current user settings and persists them through
// the key-value collaborator. Updates take effect in memory even when
// persistence fails; durability is best-effort.
type SettingsStore struct {
	kv KV

	mu      sync.RWMutex
	current domain.Settings
}

// NewSettingsStore creates a store initialized with the documented defaults
func NewSettingsStore(kv KV) *SettingsStore {
	return &SettingsStore{kv: kv, current: domain.DefaultSettings()}
}

// Get returns the current settings, always defined from initialization on
func (s *SettingsStore) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// LoadInitial reads the persisted settings. Missing or malformed data falls
// back to the defaults without raising an error.
func (s *SettingsStore) LoadInitial(ctx context.Context) domain.Settings {
	raw, err := s.kv.Get(ctx, settingsKey)
	if err != nil {
		lgr.Printf("[WARN] failed to load settings, using defaults: %v", err)
		return s.Get()
	}
	if raw == "" {
		return s.Get()
	}

	var loaded domain.Settings
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		lgr.Printf("[WARN] malformed persisted settings, using defaults: %v", err)
		return s.Get()
	}
	if err := validateSettings(loaded); err != nil {
		lgr.Printf("[WARN] invalid persisted settings, using defaults: %v", err)
		return s.Get()
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return s.Get()
}

// Update merges the partial change into the current settings. A merge that
// would leave the category set empty or reference an unknown category is
// rejected: the prior value is returned untouched. On success the merged
// value is adopted and persisted; a persistence failure is logged and
// swallowed, the in-memory update stands.
func (s *SettingsStore) Update(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	s.mu.Lock()
	merged := s.current.Clone()

	if upd.TemperatureUnit != nil {
		merged.TemperatureUnit = *upd.TemperatureUnit
	}
	if upd.Categories != nil {
		merged.Categories = dedupe(upd.Categories)
	}
	if upd.WeatherFiltering != nil {
		merged.WeatherFiltering = *upd.WeatherFiltering
	}
	if upd.AutoRefresh != nil {
		merged.AutoRefresh = *upd.AutoRefresh
	}
	if upd.RefreshInterval != nil {
		merged.RefreshInterval = *upd.RefreshInterval
	}

	if err := validateSettings(merged); err != nil {
		prev := s.current.Clone()
		s.mu.Unlock()
		return prev, err
	}

	s.current = merged
	s.mu.Unlock()

	s.persist(ctx, merged)
	return merged.Clone(), nil
}

// Reset restores the documented defaults and persists them
func (s *SettingsStore) Reset(ctx context.Context) domain.Settings {
	defaults := domain.DefaultSettings()

	s.mu.Lock()
	s.current = defaults
	s.mu.Unlock()

	s.persist(ctx, defaults)
	return defaults.Clone()
}

func (s *SettingsStore) persist(ctx context.Context, settings domain.Settings) {
	data, err := json.Marshal(settings)
	if err != nil {
		lgr.Printf("[ERROR] failed to marshal settings: %v", err)
		return
	}
	if err := s.kv.Set(ctx, settingsKey, string(data)); err != nil {
		// no rollback, the in-memory update already took effect
		lgr.Printf("[WARN] failed to persist settings: %v",
			domain.WrapFailure(domain.ErrPersistence, err, "save settings"))
	}
}

func validateSettings(s domain.Settings) error {
	if len(s.Categories) == 0 {
		return ErrEmptyCategories
	}
	for _, c := range s.Categories {
		if !domain.ValidCategory(c) {
			return ErrUnknownCategory
		}
	}
	if s.TemperatureUnit != domain.UnitCelsius && s.TemperatureUnit != domain.UnitFahrenheit {
		return ErrUnknownUnit
	}
	if s.RefreshInterval < 0 {
		return ErrNegativeInterval
	}
	return nil
}

// dedupe removes duplicates preserving the first-seen order
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
