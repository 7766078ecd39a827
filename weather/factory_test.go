package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewDonelson/sysinfo"
)

func TestNewService_Dispatch(t *testing.T) {
	coords := CoordsLocation(59.91, 10.75)

	p, err := NewService(ProviderMetNo, coords, Metric, "", nil)
	require.NoError(t, err)
	assert.IsType(t, &MetNo{}, p)

	p, err = NewService(ProviderOpenMeteo, coords, Imperial, "", nil)
	require.NoError(t, err)
	assert.IsType(t, &OpenMeteo{}, p)

	p, err = NewService(ProviderOpenWeatherMap, NamedLocation("Berlin"), Metric, "key", nil)
	require.NoError(t, err)
	assert.IsType(t, &OpenWeatherMap{}, p)
}

func TestNewService_Preconditions(t *testing.T) {
	cases := map[string]struct {
		kind   ProviderKind
		loc    Location
		apiKey string
	}{
		"metno without coords":     {ProviderMetNo, NamedLocation("Oslo"), ""},
		"openmeteo without coords": {ProviderOpenMeteo, NamedLocation("Berlin"), ""},
		"owm without city":         {ProviderOpenWeatherMap, CoordsLocation(1, 2), "key"},
		"owm without key":          {ProviderOpenWeatherMap, NamedLocation("Berlin"), ""},
		"unknown kind":             {ProviderKind("weatherstack"), CoordsLocation(1, 2), "key"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := NewService(tc.kind, tc.loc, Metric, tc.apiKey, nil)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, sysinfo.KindInvalidArgument)
		})
	}
}

func TestCacheKey(t *testing.T) {
	coords := CoordsLocation(59.91, 10.75)

	key := CacheKey(ProviderMetNo, coords, Metric)
	assert.Contains(t, key, "weather_metno_")
	require.NoError(t, sysinfo.ValidateKey(key), "cache keys must be storable")

	// Any change to the tuple changes the key.
	assert.NotEqual(t, key, CacheKey(ProviderOpenMeteo, coords, Metric))
	assert.NotEqual(t, key, CacheKey(ProviderMetNo, coords, Imperial))
	assert.NotEqual(t, key, CacheKey(ProviderMetNo, CoordsLocation(59.92, 10.75), Metric))
	assert.NotEqual(t,
		CacheKey(ProviderOpenWeatherMap, NamedLocation("Berlin"), Metric),
		CacheKey(ProviderOpenWeatherMap, NamedLocation("Paris"), Metric))

	// Deterministic across calls.
	assert.Equal(t, key, CacheKey(ProviderMetNo, coords, Metric))
}
