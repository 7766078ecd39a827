// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// symbols.go — provider-agnostic weather utilities: the met.no symbol table,
// the numeric weather-code table, time-of-day suffix stripping, and a strict
// ISO-8601-Z to epoch parser.

package weather

import (
	"strings"
	"time"

	"github.com/AndrewDonelson/sysinfo"
)

// timeOfDaySuffixes are appended by met.no to symbol codes depending on
// daylight; they carry no weather information.
var timeOfDaySuffixes = []string{"_day", "_night", "_polartwilight"}

// StripTimeOfDaySuffix removes a trailing _day, _night or _polartwilight
// from a symbol code. A suffix-only string (e.g. "_day") would strip to
// empty and is returned unchanged. The function is idempotent.
func StripTimeOfDaySuffix(symbol string) string {
	for _, suffix := range timeOfDaySuffixes {
		if strings.HasSuffix(symbol, suffix) && len(symbol) > len(suffix) {
			return symbol[:len(symbol)-len(suffix)]
		}
	}
	return symbol
}

// symbolDescriptions maps met.no symbol codes (after suffix stripping) to
// lowercase English phrases.
var symbolDescriptions = map[string]string{
	"clearsky":                   "clear sky",
	"fair":                       "fair",
	"partlycloudy":               "partly cloudy",
	"cloudy":                     "cloudy",
	"fog":                        "fog",
	"lightrain":                  "light rain",
	"rain":                       "rain",
	"heavyrain":                  "heavy rain",
	"lightrainandthunder":        "light rain and thunder",
	"rainandthunder":             "rain and thunder",
	"heavyrainandthunder":        "heavy rain and thunder",
	"lightrainshowers":           "light rain showers",
	"rainshowers":                "rain showers",
	"heavyrainshowers":           "heavy rain showers",
	"lightrainshowersandthunder": "light rain showers and thunder",
	"rainshowersandthunder":      "rain showers and thunder",
	"heavyrainshowersandthunder": "heavy rain showers and thunder",
	"lightsleet":                 "light sleet",
	"sleet":                      "sleet",
	"heavysleet":                 "heavy sleet",
	"lightsleetandthunder":       "light sleet and thunder",
	"sleetandthunder":            "sleet and thunder",
	"heavysleetandthunder":       "heavy sleet and thunder",
	"lightsleetshowers":          "light sleet showers",
	"sleetshowers":               "sleet showers",
	"heavysleetshowers":          "heavy sleet showers",
	"sleetshowersandthunder":     "sleet showers and thunder",
	"lightsnow":                  "light snow",
	"snow":                       "snow",
	"heavysnow":                  "heavy snow",
	"lightsnowandthunder":        "light snow and thunder",
	"snowandthunder":             "snow and thunder",
	"heavysnowandthunder":        "heavy snow and thunder",
	"lightsnowshowers":           "light snow showers",
	"snowshowers":                "snow showers",
	"heavysnowshowers":           "heavy snow showers",
	"snowshowersandthunder":      "snow showers and thunder",
	"hail":                       "hail",
}

// DescribeSymbol translates a met.no symbol code (after suffix stripping)
// into its canonical lowercase English phrase. The second return is false on
// a table miss.
func DescribeSymbol(symbol string) (string, bool) {
	desc, ok := symbolDescriptions[symbol]
	return desc, ok
}

// DescribeWeatherCode translates a numeric WMO weather code into a lowercase
// English phrase. Unknown codes describe as "unknown".
func DescribeWeatherCode(code int) string {
	switch code {
	case 0:
		return "clear sky"
	case 1:
		return "mainly clear"
	case 2:
		return "partly cloudy"
	case 3:
		return "overcast"
	case 45, 48:
		return "fog"
	case 51, 53, 55:
		return "drizzle"
	case 61, 63, 65:
		return "rain"
	case 71, 73, 75:
		return "snow fall"
	case 77:
		return "snow grains"
	case 80, 81, 82:
		return "rain showers"
	case 85, 86:
		return "snow showers"
	case 95:
		return "thunderstorm"
	case 96, 99:
		return "thunderstorm with hail"
	default:
		return "unknown"
	}
}

// ParseISO8601Z parses exactly the 20-character form YYYY-MM-DDTHH:MM:SSZ
// into UNIX epoch seconds. Any deviation in length, separators or digits is
// a parse error. Component ranges are not validated; out-of-range values
// normalize the way time.Date does (month 13 rolls into the next year).
func ParseISO8601Z(s string) (int64, error) {
	if len(s) != 20 {
		return 0, sysinfo.Errorf(sysinfo.KindParseError, "timestamp %q: want 20-char YYYY-MM-DDTHH:MM:SSZ", s)
	}
	if s[4] != '-' || s[7] != '-' || s[10] != 'T' || s[13] != ':' || s[16] != ':' || s[19] != 'Z' {
		return 0, sysinfo.Errorf(sysinfo.KindParseError, "timestamp %q: bad separators", s)
	}
	year, ok1 := atoi(s[0:4])
	month, ok2 := atoi(s[5:7])
	day, ok3 := atoi(s[8:10])
	hour, ok4 := atoi(s[11:13])
	minute, ok5 := atoi(s[14:16])
	second, ok6 := atoi(s[17:19])
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return 0, sysinfo.Errorf(sysinfo.KindParseError, "timestamp %q: non-numeric component", s)
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return t.Unix(), nil
}

// atoi parses an all-digit decimal string. Unlike strconv.Atoi it rejects
// signs and whitespace, which ParseISO8601Z must not accept.
func atoi(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
