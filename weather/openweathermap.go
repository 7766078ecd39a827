// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// openweathermap.go — the city-name-based keyed provider backed by the
// OpenWeatherMap current-weather endpoint.

package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/AndrewDonelson/sysinfo"
)

// OpenWeatherMap fetches current weather by city name. Requires an API key;
// the endpoint converts to the requested unit system via the units query
// parameter and resolves the place name.
type OpenWeatherMap struct {
	city    string
	apiKey  string
	units   UnitSystem
	client  *http.Client
	baseURL string
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherMap creates an OpenWeatherMap provider. A nil client uses
// the package default with a 10s deadline.
func NewOpenWeatherMap(city, apiKey string, units UnitSystem, client *http.Client) *OpenWeatherMap {
	return &OpenWeatherMap{
		city:    city,
		apiKey:  apiKey,
		units:   units,
		client:  client,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		circuit: newBreaker("openweathermap"),
	}
}

// Fetch issues one GET and normalizes the response.
func (p *OpenWeatherMap) Fetch(ctx context.Context) (Report, error) {
	q := url.Values{}
	q.Set("q", p.city)
	q.Set("appid", p.apiKey)
	q.Set("units", string(p.units))

	var payload struct {
		Main *struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Name string `json:"name"`
		Dt   int64  `json:"dt"`
	}

	err := getJSON(ctx, p.client, p.circuit, "openweathermap", fmt.Sprintf("%s?%s", p.baseURL, q.Encode()), "", &payload)
	if err != nil {
		return Report{}, err
	}
	if payload.Main == nil || payload.Main.Temp == nil {
		return Report{}, sysinfo.New(sysinfo.KindParseError, "openweathermap: missing main.temp")
	}
	if len(payload.Weather) == 0 || payload.Weather[0].Description == "" {
		return Report{}, sysinfo.New(sysinfo.KindParseError, "openweathermap: missing weather description")
	}

	return Report{
		Temperature: *payload.Main.Temp,
		Description: strings.ToLower(payload.Weather[0].Description),
		Name:        payload.Name,
	}, nil
}
