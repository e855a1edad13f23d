package session

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodfeed/moodfeed/pkg/domain"
	"github.com/moodfeed/moodfeed/pkg/session/mocks"
)

func newTestKV() *mocks.KVMock {
	stored := map[string]string{}
	return &mocks.KVMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return stored[key], nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			stored[key] = value
			return nil
		},
	}
}

func TestSettingsStore_Defaults(t *testing.T) {
	s := NewSettingsStore(newTestKV())

	got := s.Get()
	assert.Equal(t, domain.UnitCelsius, got.TemperatureUnit)
	assert.Equal(t, []string{"general"}, got.Categories)
	assert.True(t, got.WeatherFiltering)
}

func TestSettingsStore_LoadInitial(t *testing.T) {
	kv := newTestKV()
	persisted := domain.Settings{
		TemperatureUnit:  domain.UnitFahrenheit,
		Categories:       []string{"science", "health"},
		WeatherFiltering: false,
	}
	data, err := json.Marshal(persisted)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), "user_settings", string(data)))

	s := NewSettingsStore(kv)
	got := s.LoadInitial(context.Background())

	assert.Equal(t, domain.UnitFahrenheit, got.TemperatureUnit)
	assert.Equal(t, []string{"science", "health"}, got.Categories)
	assert.False(t, got.WeatherFiltering)
}

func TestSettingsStore_LoadInitialFallsBack(t *testing.T) {
	tests := []struct {
		name string
		kv   *mocks.KVMock
	}{
		{
			name: "missing value",
			kv: &mocks.KVMock{
				GetFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
			},
		},
		{
			name: "malformed json",
			kv: &mocks.KVMock{
				GetFunc: func(ctx context.Context, key string) (string, error) { return "{not json", nil },
			},
		},
		{
			name: "empty categories persisted",
			kv: &mocks.KVMock{
				GetFunc: func(ctx context.Context, key string) (string, error) {
					return `{"temperatureUnit":"celsius","newsCategories":[]}`, nil
				},
			},
		},
		{
			name: "store failure",
			kv: &mocks.KVMock{
				GetFunc: func(ctx context.Context, key string) (string, error) {
					return "", fmt.Errorf("disk on fire")
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettingsStore(tt.kv)
			got := s.LoadInitial(context.Background())
			assert.Equal(t, domain.DefaultSettings(), got)
		})
	}
}

func TestSettingsStore_UpdateMerges(t *testing.T) {
	kv := newTestKV()
	s := NewSettingsStore(kv)

	unit := domain.UnitFahrenheit
	got, err := s.Update(context.Background(), domain.SettingsUpdate{TemperatureUnit: &unit})
	require.NoError(t, err)

	// only the unit changed, the rest kept
	assert.Equal(t, domain.UnitFahrenheit, got.TemperatureUnit)
	assert.Equal(t, []string{"general"}, got.Categories)
	assert.True(t, got.WeatherFiltering)

	// persisted through the collaborator
	require.Len(t, kv.SetCalls(), 1)
	assert.Equal(t, "user_settings", kv.SetCalls()[0].Key)
}

func TestSettingsStore_UpdateRejectsEmptyCategories(t *testing.T) {
	s := NewSettingsStore(newTestKV())

	got, err := s.Update(context.Background(), domain.SettingsUpdate{Categories: []string{}})
	require.ErrorIs(t, err, ErrEmptyCategories)

	// prior value retained
	assert.Equal(t, []string{"general"}, got.Categories)
	assert.Equal(t, []string{"general"}, s.Get().Categories)
}

func TestSettingsStore_UpdateRejectsUnknownCategory(t *testing.T) {
	s := NewSettingsStore(newTestKV())

	_, err := s.Update(context.Background(), domain.SettingsUpdate{Categories: []string{"astrology"}})
	require.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, []string{"general"}, s.Get().Categories)
}

func TestSettingsStore_UpdateDedupesCategories(t *testing.T) {
	s := NewSettingsStore(newTestKV())

	got, err := s.Update(context.Background(), domain.SettingsUpdate{
		Categories: []string{"science", "sports", "science", "sports"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"science", "sports"}, got.Categories)
}

func TestSettingsStore_PersistenceFailureKeepsUpdate(t *testing.T) {
	kv := &mocks.KVMock{
		GetFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
		SetFunc: func(ctx context.Context, key, value string) error {
			return fmt.Errorf("disk full")
		},
	}
	s := NewSettingsStore(kv)

	filtering := false
	got, err := s.Update(context.Background(), domain.SettingsUpdate{WeatherFiltering: &filtering})

	// persistence failure is swallowed, in-memory state not rolled back
	require.NoError(t, err)
	assert.False(t, got.WeatherFiltering)
	assert.False(t, s.Get().WeatherFiltering)
	assert.Len(t, kv.SetCalls(), 1)
}

func TestSettingsStore_Reset(t *testing.T) {
	kv := newTestKV()
	s := NewSettingsStore(kv)

	unit := domain.UnitFahrenheit
	_, err := s.Update(context.Background(), domain.SettingsUpdate{
		TemperatureUnit: &unit,
		Categories:      []string{"sports"},
	})
	require.NoError(t, err)

	got := s.Reset(context.Background())
	assert.Equal(t, domain.DefaultSettings(), got)
	assert.Equal(t, domain.DefaultSettings(), s.Get())
}

func TestSettingsStore_GetReturnsCopy(t *testing.T) {
	s := NewSettingsStore(newTestKV())

	got := s.Get()
	got.Categories[0] = "mutated"

	assert.Equal(t, []string{"general"}, s.Get().Categories)
}
