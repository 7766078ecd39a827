// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)

// Package config loads library configuration from the environment, with an
// optional .env file for development. All failures report
// sysinfo.KindConfigurationError.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/AndrewDonelson/sysinfo"
	"github.com/AndrewDonelson/sysinfo/weather"
)

var validate = validator.New()

// AppConfig is the environment-driven configuration for callers embedding
// the library in a tool or daemon.
type AppConfig struct {
	// CacheDir overrides the persistent cache directory. Empty means the
	// platform user-cache default.
	CacheDir string

	// CacheTTL is the default time-to-live for cached results. Zero means
	// entries never expire.
	CacheTTL time.Duration `validate:"gte=0"`

	// IgnoreCache bypasses all cache reads and writes when true.
	IgnoreCache bool

	// OpenWeatherMapAPIKey is required only when Provider is
	// openweathermap.
	OpenWeatherMapAPIKey string

	Units    weather.UnitSystem   `validate:"oneof=metric imperial"`
	Provider weather.ProviderKind `validate:"oneof=metno openmeteo openweathermap"`

	// HTTPTimeout bounds every outbound provider request.
	HTTPTimeout time.Duration `validate:"gt=0"`
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is applied first when present.
//
// Recognized variables:
//
//	SYSINFO_CACHE_DIR       persistent cache directory override
//	SYSINFO_CACHE_TTL       default entry TTL, Go duration (default 24h)
//	SYSINFO_IGNORE_CACHE    "true"/"1" bypasses the cache entirely
//	OPENWEATHERMAP_API_KEY  openweathermap credentials
//	WEATHER_UNITS           "metric" or "imperial" (default metric)
//	WEATHER_PROVIDER        "metno", "openmeteo" or "openweathermap"
//	HTTP_TIMEOUT            outbound request deadline (default 10s)
func Load() (*AppConfig, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &AppConfig{
		CacheDir:             os.Getenv("SYSINFO_CACHE_DIR"),
		OpenWeatherMapAPIKey: os.Getenv("OPENWEATHERMAP_API_KEY"),
		Units:                weather.UnitSystem(getenvDefault("WEATHER_UNITS", string(weather.Metric))),
		Provider:             weather.ProviderKind(getenvDefault("WEATHER_PROVIDER", string(weather.ProviderMetNo))),
	}

	ttl, err := getenvDuration("SYSINFO_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = ttl

	timeout, err := getenvDuration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	ignore, err := getenvBool("SYSINFO_IGNORE_CACHE", false)
	if err != nil {
		return nil, err
	}
	cfg.IgnoreCache = ignore

	if err := validate.Struct(cfg); err != nil {
		return nil, sysinfo.Errorf(sysinfo.KindConfigurationError, "invalid configuration: %v", err)
	}
	if cfg.Provider == weather.ProviderOpenWeatherMap && cfg.OpenWeatherMapAPIKey == "" {
		return nil, sysinfo.New(sysinfo.KindConfigurationError, "WEATHER_PROVIDER=openweathermap requires OPENWEATHERMAP_API_KEY")
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, sysinfo.Errorf(sysinfo.KindConfigurationError, "invalid %s: %v", key, err)
	}
	return d, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, sysinfo.Errorf(sysinfo.KindConfigurationError, "invalid %s: %v", key, err)
	}
	return b, nil
}
