// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// openmeteo.go — the coordinate-based current-weather provider backed by the
// Open-Meteo forecast endpoint.

package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/AndrewDonelson/sysinfo"
)

// OpenMeteo fetches current weather for a coordinate pair. No API key is
// required; the endpoint converts to the requested unit system itself via
// the temperature_unit query parameter.
type OpenMeteo struct {
	lat, lon float64
	units    UnitSystem
	client   *http.Client
	baseURL  string
	circuit  *gobreaker.CircuitBreaker
}

// NewOpenMeteo creates an Open-Meteo provider. A nil client uses the package
// default with a 10s deadline.
func NewOpenMeteo(lat, lon float64, units UnitSystem, client *http.Client) *OpenMeteo {
	return &OpenMeteo{
		lat:     lat,
		lon:     lon,
		units:   units,
		client:  client,
		baseURL: "https://api.open-meteo.com/v1/forecast",
		circuit: newBreaker("openmeteo"),
	}
}

// Fetch issues one GET and normalizes the current_weather block.
func (p *OpenMeteo) Fetch(ctx context.Context) (Report, error) {
	unit := "celsius"
	if p.units == Imperial {
		unit = "fahrenheit"
	}
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(p.lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(p.lon, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("temperature_unit", unit)

	var payload struct {
		CurrentWeather *struct {
			Temperature *float64 `json:"temperature"`
			WeatherCode *int     `json:"weathercode"`
			Time        string   `json:"time"`
		} `json:"current_weather"`
	}

	err := getJSON(ctx, p.client, p.circuit, "openmeteo", fmt.Sprintf("%s?%s", p.baseURL, q.Encode()), "", &payload)
	if err != nil {
		return Report{}, err
	}
	cw := payload.CurrentWeather
	if cw == nil || cw.Temperature == nil || cw.WeatherCode == nil {
		return Report{}, sysinfo.New(sysinfo.KindParseError, "openmeteo: missing current_weather fields")
	}

	return Report{
		Temperature: *cw.Temperature,
		Description: DescribeWeatherCode(*cw.WeatherCode),
	}, nil
}
