// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// metno.go — the coordinate-based keyless provider backed by the met.no
// locationforecast timeseries endpoint.

package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/AndrewDonelson/sysinfo"
)

// metNoUserAgent identifies us to the met.no Terms of Service, which reject
// anonymous clients.
const metNoUserAgent = "sysinfo-weather/1.0 (+https://github.com/AndrewDonelson/sysinfo)"

// MetNo fetches the met.no compact timeseries forecast for a coordinate
// pair and reports the entry closest to the current time. No API key is
// required. The endpoint always reports Celsius; conversion to the
// requested unit system happens here.
type MetNo struct {
	lat, lon float64
	units    UnitSystem
	client   *http.Client
	baseURL  string
	circuit  *gobreaker.CircuitBreaker
	now      func() time.Time
}

// NewMetNo creates a met.no provider. A nil client uses the package default
// with a 10s deadline.
func NewMetNo(lat, lon float64, units UnitSystem, client *http.Client) *MetNo {
	return &MetNo{
		lat:     lat,
		lon:     lon,
		units:   units,
		client:  client,
		baseURL: "https://api.met.no/weatherapi/locationforecast/2.0/compact",
		circuit: newBreaker("metno"),
		now:     time.Now,
	}
}

// Fetch issues one GET and normalizes the closest timeseries entry.
func (p *MetNo) Fetch(ctx context.Context) (Report, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(p.lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(p.lon, 'f', -1, 64))

	var payload struct {
		Properties struct {
			Timeseries []struct {
				Time string `json:"time"`
				Data struct {
					Instant struct {
						Details struct {
							AirTemperature *float64 `json:"air_temperature"`
						} `json:"details"`
					} `json:"instant"`
					Next1Hours *struct {
						Summary struct {
							SymbolCode string `json:"symbol_code"`
						} `json:"summary"`
					} `json:"next_1_hours"`
				} `json:"data"`
			} `json:"timeseries"`
		} `json:"properties"`
	}

	err := getJSON(ctx, p.client, p.circuit, "metno", fmt.Sprintf("%s?%s", p.baseURL, q.Encode()), metNoUserAgent, &payload)
	if err != nil {
		return Report{}, err
	}

	series := payload.Properties.Timeseries
	if len(series) == 0 {
		return Report{}, sysinfo.New(sysinfo.KindParseError, "metno: empty timeseries")
	}

	// Pick the entry whose timestamp is closest to now; ties keep the
	// earliest. Entries with unparseable timestamps are skipped.
	now := p.now().Unix()
	best := -1
	var bestDist int64
	for i, ts := range series {
		epoch, perr := ParseISO8601Z(ts.Time)
		if perr != nil {
			continue
		}
		dist := epoch - now
		if dist < 0 {
			dist = -dist
		}
		if best == -1 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best == -1 {
		return Report{}, sysinfo.New(sysinfo.KindParseError, "metno: no parseable timeseries timestamps")
	}

	chosen := series[best]
	if chosen.Data.Instant.Details.AirTemperature == nil {
		return Report{}, sysinfo.New(sysinfo.KindParseError, "metno: missing air_temperature")
	}
	if chosen.Data.Next1Hours == nil || chosen.Data.Next1Hours.Summary.SymbolCode == "" {
		return Report{}, sysinfo.New(sysinfo.KindParseError, "metno: missing symbol_code")
	}

	temp := *chosen.Data.Instant.Details.AirTemperature
	if p.units == Imperial {
		temp = temp*9/5 + 32
	}

	symbol := StripTimeOfDaySuffix(chosen.Data.Next1Hours.Summary.SymbolCode)
	desc, ok := DescribeSymbol(symbol)
	if !ok {
		// Unknown symbols still produce a readable phrase.
		desc = strings.ReplaceAll(symbol, "_", " ")
	}

	return Report{Temperature: temp, Description: desc}, nil
}
