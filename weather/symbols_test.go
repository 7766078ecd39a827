package weather

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewDonelson/sysinfo"
)

func TestStripTimeOfDaySuffix(t *testing.T) {
	cases := map[string]string{
		"clearsky_day":           "clearsky",
		"clearsky_night":         "clearsky",
		"fair_polartwilight":     "fair",
		"heavyrainandthunder":    "heavyrainandthunder",
		"cloudy":                 "cloudy",
		"_day":                   "_day", // suffix-only would strip to empty
		"_night":                 "_night",
		"_polartwilight":         "_polartwilight",
		"":                       "",
		"rainshowers_day":        "rainshowers",
		"partlycloudy_night":     "partlycloudy",
		"snow_polartwilight":     "snow",
		"lightsnowshowers_night": "lightsnowshowers",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripTimeOfDaySuffix(in), "input %q", in)
	}
}

func TestStripTimeOfDaySuffix_Idempotent(t *testing.T) {
	inputs := []string{"clearsky_day", "clearsky", "_day", "", "fog_night", "rain"}
	for _, in := range inputs {
		once := StripTimeOfDaySuffix(in)
		assert.Equal(t, once, StripTimeOfDaySuffix(once), "input %q", in)
	}
}

func TestDescribeSymbol(t *testing.T) {
	desc, ok := DescribeSymbol("clearsky")
	require.True(t, ok)
	assert.Equal(t, "clear sky", desc)

	desc, ok = DescribeSymbol("heavyrainandthunder")
	require.True(t, ok)
	assert.Equal(t, "heavy rain and thunder", desc)

	_, ok = DescribeSymbol("_day")
	assert.False(t, ok, "suffix-only symbol is a table miss")

	_, ok = DescribeSymbol("nosuchsymbol")
	assert.False(t, ok)
}

func TestDescribeSymbol_StripThenLookup(t *testing.T) {
	desc, ok := DescribeSymbol(StripTimeOfDaySuffix("clearsky_day"))
	require.True(t, ok)
	assert.Equal(t, "clear sky", desc)
}

func TestDescribeWeatherCode(t *testing.T) {
	cases := map[int]string{
		0:    "clear sky",
		1:    "mainly clear",
		2:    "partly cloudy",
		3:    "overcast",
		45:   "fog",
		48:   "fog",
		51:   "drizzle",
		53:   "drizzle",
		55:   "drizzle",
		61:   "rain",
		63:   "rain",
		65:   "rain",
		71:   "snow fall",
		73:   "snow fall",
		75:   "snow fall",
		77:   "snow grains",
		80:   "rain showers",
		81:   "rain showers",
		82:   "rain showers",
		85:   "snow showers",
		86:   "snow showers",
		95:   "thunderstorm",
		96:   "thunderstorm with hail",
		99:   "thunderstorm with hail",
		1234: "unknown",
		-1:   "unknown",
	}
	for code, want := range cases {
		assert.Equal(t, want, DescribeWeatherCode(code), "code %d", code)
	}
}

func TestParseISO8601Z(t *testing.T) {
	got, err := ParseISO8601Z("1970-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	got, err = ParseISO8601Z("2023-10-26T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, int64(1698316200), got)
}

func TestParseISO8601Z_Rejects(t *testing.T) {
	bad := []string{
		"",
		"2023-10-26T10:30:00",     // missing Z
		"2023-10-26 10:30:00Z",    // wrong separator
		"2023/10/26T10:30:00Z",    // wrong date separators
		"2023-10-26T10:30:0xZ",    // non-numeric
		"2023-10-26T10:30:00Z ",   // trailing junk
		"+023-10-26T10:30:00Z",    // sign is not a digit
		"2023-10-26T10:30:00.00Z", // fractional seconds
	}
	for _, s := range bad {
		_, err := ParseISO8601Z(s)
		assert.ErrorIs(t, err, sysinfo.KindParseError, "input %q", s)
	}
}

func TestParseISO8601Z_DoesNotValidateRanges(t *testing.T) {
	// Month 13 normalizes into January of the next year.
	got, err := ParseISO8601Z("2023-13-01T00:00:00Z")
	require.NoError(t, err)
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, want, got)
}

func TestParseISO8601Z_LeftInverseOfFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		epoch := rng.Int63n(1 << 31)
		s := time.Unix(epoch, 0).UTC().Format("2006-01-02T15:04:05Z")
		got, err := ParseISO8601Z(s)
		require.NoError(t, err, "formatted %q", s)
		require.Equal(t, epoch, got, fmt.Sprintf("round trip of %d via %q", epoch, s))
	}
}
