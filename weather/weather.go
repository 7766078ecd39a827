// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// weather.go — the unified weather data model and the Provider abstraction
// fronting the three concrete HTTP providers.

// Package weather fronts three disparate HTTP weather providers behind a
// single Provider interface with a unified Report output, plus location
// resolution by name or client IP. Providers are stateless and never cache;
// callers wrap Fetch in the cache manager keyed by provider, location and
// units (see CacheKey).
package weather

import "context"

// UnitSystem selects the unit system of a Report's temperature.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// Report is the unified weather output. Temperature is already in the
// caller-requested unit system; Description is a short lowercase English
// phrase; Name is the place name when the provider resolves one, otherwise
// empty.
type Report struct {
	Temperature float64 `msgpack:"temperature" json:"temperature"`
	Description string  `msgpack:"description" json:"description"`
	Name        string  `msgpack:"name,omitempty" json:"name,omitempty"`
}

// Provider is a weather-data source. Implementations are immutable after
// construction; Fetch is reentrant and safe to call concurrently on the
// same instance.
type Provider interface {
	// Fetch issues one HTTPS GET to the backing service and normalizes the
	// response into a Report.
	Fetch(ctx context.Context) (Report, error)
}

// ProviderKind identifies one of the three concrete providers.
type ProviderKind string

const (
	// ProviderMetNo is coordinate-based and keyless (met.no timeseries
	// forecast).
	ProviderMetNo ProviderKind = "metno"
	// ProviderOpenMeteo is coordinate-based current weather.
	ProviderOpenMeteo ProviderKind = "openmeteo"
	// ProviderOpenWeatherMap is city-name-based and requires an API key.
	ProviderOpenWeatherMap ProviderKind = "openweathermap"
)
