// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// factory.go — dispatches a (kind, location, units, key) tuple to a concrete
// provider, and builds the cache keys callers memoize reports under.

package weather

import (
	"net/http"

	"github.com/AndrewDonelson/sysinfo"
)

// NewService returns the concrete provider for kind.
//
// Preconditions, checked and reported as KindInvalidArgument:
//   - ProviderOpenWeatherMap needs a named location and an API key;
//   - ProviderMetNo and ProviderOpenMeteo need coordinates.
//
// A nil client uses the package default with a 10s deadline.
func NewService(kind ProviderKind, loc Location, units UnitSystem, apiKey string, client *http.Client) (Provider, error) {
	switch kind {
	case ProviderMetNo, ProviderOpenMeteo:
		if loc.Coords == nil {
			return nil, sysinfo.Errorf(sysinfo.KindInvalidArgument, "provider %s requires coordinates", kind)
		}
		if kind == ProviderMetNo {
			return NewMetNo(loc.Coords.Lat, loc.Coords.Lon, units, client), nil
		}
		return NewOpenMeteo(loc.Coords.Lat, loc.Coords.Lon, units, client), nil
	case ProviderOpenWeatherMap:
		if loc.Name == "" {
			return nil, sysinfo.New(sysinfo.KindInvalidArgument, "provider openweathermap requires a city name")
		}
		if apiKey == "" {
			return nil, sysinfo.New(sysinfo.KindInvalidArgument, "provider openweathermap requires an api key")
		}
		return NewOpenWeatherMap(loc.Name, apiKey, units, client), nil
	default:
		return nil, sysinfo.Errorf(sysinfo.KindInvalidArgument, "unknown provider kind %q", kind)
	}
}

// CacheKey builds the cache key a report for this tuple is memoized under.
// Provider kind, resolved location and units all feed the fingerprint so no
// two distinct tuples collide.
func CacheKey(kind ProviderKind, loc Location, units UnitSystem) string {
	return "weather_" + string(kind) + "_" + sysinfo.Fingerprint(string(kind), loc.cacheKeyPart(), string(units))
}
