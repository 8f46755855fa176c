// Package mains resolves the regional electrical mains frequency from the
// system timezone. The report layer uses it to probe analysed audio for
// hum at the frequency a contaminated recording would actually carry.
package mains

import (
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// Frequency returns the local mains frequency in Hz (50 or 60), falling
// back to 50 Hz when the timezone cannot be resolved.
func Frequency() int {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return 50
	}
	return FrequencyForTimezone(timezone)
}

// FrequencyForTimezone maps an IANA timezone to its mains frequency.
func FrequencyForTimezone(timezone string) int {
	// UTC/GMT and the Etc/ zones carry no country association.
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return 50
	}

	tzMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return 50
	}
	country, err := tzMap.GetCountry(timezone)
	if err != nil {
		return 50
	}
	return frequencyForCountry(country)
}

func frequencyForCountry(country string) int {
	// Japan is split 50/60 Hz by region; the 50 Hz Tokyo grid covers the
	// larger population, so resolve it that way.
	if country == "Japan" {
		return 50
	}
	if hz60Countries[country] {
		return 60
	}
	return 50
}

// hz60Countries lists the countries on 60 Hz grids; everywhere else runs
// 50 Hz. Compiled from the mains-electricity-by-country reference tables.
var hz60Countries = map[string]bool{
	"United States": true,
	"Canada":        true,
	"Mexico":        true,

	"Belize":      true,
	"Costa Rica":  true,
	"El Salvador": true,
	"Guatemala":   true,
	"Honduras":    true,
	"Nicaragua":   true,
	"Panama":      true,

	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,

	"Brazil":    true,
	"Colombia":  true,
	"Ecuador":   true,
	"Guyana":    true,
	"Peru":      true,
	"Suriname":  true,
	"Venezuela": true,

	"South Korea":  true,
	"Taiwan":       true,
	"Philippines":  true,
	"Saudi Arabia": true,

	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
