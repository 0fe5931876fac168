// backend/utils/airports.go
package utils

import "strings"

// NormalizeAirportCode trims whitespace and uppercases an airport code so
// lookups against the ICAO-keyed reference table are case-insensitive.
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
