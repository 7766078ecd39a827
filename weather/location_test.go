package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewDonelson/sysinfo"
)

func overrideGeocode(t *testing.T, srv *httptest.Server) {
	t.Helper()
	prev := geocodeBaseURL
	geocodeBaseURL = srv.URL
	t.Cleanup(func() { geocodeBaseURL = prev })
}

func overrideIPLocate(t *testing.T, srv *httptest.Server) {
	t.Helper()
	prev := ipLocateBaseURL
	ipLocateBaseURL = srv.URL
	t.Cleanup(func() { ipLocateBaseURL = prev })
}

func TestGeocode(t *testing.T) {
	srv, last := serve(t, http.StatusOK, `[{"lat": "59.9133301", "lon": "10.7389701", "display_name": "Oslo, Norway"}]`)
	overrideGeocode(t, srv)

	coords, err := Geocode(context.Background(), srv.Client(), "Oslo")
	require.NoError(t, err)
	assert.InDelta(t, 59.9133301, coords.Lat, 1e-9)
	assert.InDelta(t, 10.7389701, coords.Lon, 1e-9)

	q := last.URL.Query()
	assert.Equal(t, "Oslo", q.Get("q"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "1", q.Get("limit"))
	assert.NotEmpty(t, last.Header.Get("User-Agent"))
}

func TestGeocode_NumericCoords(t *testing.T) {
	// Some geocoders emit bare numbers instead of quoted strings.
	srv, _ := serve(t, http.StatusOK, `[{"lat": 52.52, "lon": 13.405}]`)
	overrideGeocode(t, srv)

	coords, err := Geocode(context.Background(), srv.Client(), "Berlin")
	require.NoError(t, err)
	assert.InDelta(t, 52.52, coords.Lat, 1e-9)
	assert.InDelta(t, 13.405, coords.Lon, 1e-9)
}

func TestGeocode_FirstResultWins(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[{"lat": "1", "lon": "2"}, {"lat": "3", "lon": "4"}]`)
	overrideGeocode(t, srv)

	coords, err := Geocode(context.Background(), srv.Client(), "Springfield")
	require.NoError(t, err)
	assert.Equal(t, Coords{Lat: 1, Lon: 2}, coords)
}

func TestGeocode_NoResults(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[]`)
	overrideGeocode(t, srv)

	_, err := Geocode(context.Background(), srv.Client(), "Nowhereville")
	assert.ErrorIs(t, err, sysinfo.KindNotFound)
	assert.Contains(t, err.Error(), "Nowhereville")
}

func TestGeocode_BadCoordinate(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[{"lat": "not-a-number", "lon": "2"}]`)
	overrideGeocode(t, srv)

	_, err := Geocode(context.Background(), srv.Client(), "Oslo")
	assert.ErrorIs(t, err, sysinfo.KindParseError)
}

func TestGeocode_ServerError(t *testing.T) {
	srv, _ := serve(t, http.StatusBadGateway, `upstream down`)
	overrideGeocode(t, srv)

	_, err := Geocode(context.Background(), srv.Client(), "Oslo")
	assert.ErrorIs(t, err, sysinfo.KindAPIUnavailable)
}

func TestCurrentLocationFromIP(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"status": "success", "lat": 40.7128, "lon": -74.006, "city": "New York"}`)
	overrideIPLocate(t, srv)

	info, err := CurrentLocationFromIP(context.Background(), srv.Client())
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, info.Coords.Lat, 1e-9)
	assert.InDelta(t, -74.006, info.Coords.Lon, 1e-9)
	assert.Equal(t, "New York", info.LocationName)
}

func TestCurrentLocationFromIP_MissingCoords(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"status": "fail", "message": "private range"}`)
	overrideIPLocate(t, srv)

	_, err := CurrentLocationFromIP(context.Background(), srv.Client())
	assert.ErrorIs(t, err, sysinfo.KindParseError)
}

func TestCurrentLocationFromIP_EmptyCity(t *testing.T) {
	// City is optional; coordinates alone are a usable answer.
	srv, _ := serve(t, http.StatusOK, `{"lat": 1.5, "lon": 2.5}`)
	overrideIPLocate(t, srv)

	info, err := CurrentLocationFromIP(context.Background(), srv.Client())
	require.NoError(t, err)
	assert.Empty(t, info.LocationName)
	assert.Equal(t, Coords{Lat: 1.5, Lon: 2.5}, info.Coords)
}

func TestLocation_CacheKeyPart(t *testing.T) {
	assert.Equal(t, "Oslo", NamedLocation("Oslo").cacheKeyPart())
	assert.Equal(t, "59.9133,10.7390", CoordsLocation(59.91333, 10.739).cacheKeyPart())
	// Nearby coordinates stay distinct at four decimals.
	assert.NotEqual(t,
		CoordsLocation(59.9133, 10.739).cacheKeyPart(),
		CoordsLocation(59.9134, 10.739).cacheKeyPart())
}
