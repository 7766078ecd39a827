// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// location.go — location resolution: name to coordinates through a public
// geocoding endpoint, and coordinates plus display name from the client IP.
// The resolver never caches; callers wrap these in the cache manager under
// keys that include the input (e.g. "geo_<lowercased-name>").

package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/AndrewDonelson/sysinfo"
)

// Coords is a latitude/longitude pair in decimal degrees.
type Coords struct {
	Lat float64 `msgpack:"lat" json:"lat"`
	Lon float64 `msgpack:"lon" json:"lon"`
}

// Location is either a place name or a coordinate pair.
type Location struct {
	Name   string
	Coords *Coords
}

// NamedLocation builds a Location from a place name.
func NamedLocation(name string) Location { return Location{Name: name} }

// CoordsLocation builds a Location from a coordinate pair.
func CoordsLocation(lat, lon float64) Location {
	return Location{Coords: &Coords{Lat: lat, Lon: lon}}
}

// cacheKeyPart renders the location deterministically for fingerprinting.
func (l Location) cacheKeyPart() string {
	if l.Coords != nil {
		return strconv.FormatFloat(l.Coords.Lat, 'f', 4, 64) + "," + strconv.FormatFloat(l.Coords.Lon, 'f', 4, 64)
	}
	return l.Name
}

// IPLocationInfo is the place resolved from the client's public IP.
type IPLocationInfo struct {
	Coords       Coords `msgpack:"coords" json:"coords"`
	LocationName string `msgpack:"location_name" json:"location_name"`
}

// Endpoint roots, overridable in tests.
var (
	geocodeBaseURL  = "https://nominatim.openstreetmap.org/search"
	ipLocateBaseURL = "http://ip-api.com/json"
)

// Geocode resolves a place name to coordinates using the first result of a
// public geocoding endpoint. An empty result set is KindNotFound.
func Geocode(ctx context.Context, client *http.Client, name string) (Coords, error) {
	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "json")
	q.Set("limit", "1")

	// The geocoder reports lat/lon as JSON strings.
	var results []struct {
		Lat looseFloat `json:"lat"`
		Lon looseFloat `json:"lon"`
	}
	err := getJSON(ctx, client, nil, "geocode", fmt.Sprintf("%s?%s", geocodeBaseURL, q.Encode()), metNoUserAgent, &results)
	if err != nil {
		return Coords{}, err
	}
	if len(results) == 0 {
		return Coords{}, sysinfo.Errorf(sysinfo.KindNotFound, "geocode: no results for %q", name)
	}
	return Coords{Lat: float64(results[0].Lat), Lon: float64(results[0].Lon)}, nil
}

// looseFloat accepts both a JSON number and a quoted numeric string; public
// geocoders disagree on which they emit.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse coordinate %q: %w", s, err)
	}
	*f = looseFloat(v)
	return nil
}

// CurrentLocationFromIP resolves the machine's public IP to coordinates and
// a human-readable place name.
func CurrentLocationFromIP(ctx context.Context, client *http.Client) (IPLocationInfo, error) {
	var payload struct {
		Lat  *float64 `json:"lat"`
		Lon  *float64 `json:"lon"`
		City string   `json:"city"`
	}
	err := getJSON(ctx, client, nil, "iplocate", ipLocateBaseURL+"?format=json", "", &payload)
	if err != nil {
		return IPLocationInfo{}, err
	}
	if payload.Lat == nil || payload.Lon == nil {
		return IPLocationInfo{}, sysinfo.New(sysinfo.KindParseError, "iplocate: missing coordinates")
	}
	return IPLocationInfo{
		Coords:       Coords{Lat: *payload.Lat, Lon: *payload.Lon},
		LocationName: payload.City,
	}, nil
}
