// backend/models/plan.go
package models

import (
	"fmt"
	"time"
)

// Outcome classifies the urgency of a departure recommendation.
type Outcome string

const (
	OutcomeAlreadyLanded    Outcome = "ALREADY_LANDED"
	OutcomeLeaveImmediately Outcome = "LEAVE_IMMEDIATELY"
	OutcomeHasBuffer        Outcome = "HAS_BUFFER"
	OutcomeUnresolvable     Outcome = "UNRESOLVABLE"
)

// FlightSnapshot is the result of resolving a flight number against the
// flight-position provider. DestinationICAO is always set; ArrivalTime is nil
// when only historic data was available, which carries no timing. A nil
// ArrivalTime means "unknown", never "now".
type FlightSnapshot struct {
	DestinationICAO string
	ArrivalTime     *time.Time
}

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within geographic bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String renders the coordinate in the "lat,lng" form the Distance Matrix
// API expects as a location.
func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}

// TravelEstimate is a door-to-airport travel estimate for a single
// origin/destination pair.
type TravelEstimate struct {
	DurationSeconds int    `json:"duration_seconds"`
	DurationText    string `json:"duration_text"`
	DistanceText    string `json:"distance_text"`
}

// DepartureRecommendation is the terminal result of one planning run.
// RequiredDepartureTime and MinutesUntilDeparture are set only for the
// HAS_BUFFER and LEAVE_IMMEDIATELY outcomes (the latter carries the time but
// no positive minute count).
type DepartureRecommendation struct {
	Outcome               Outcome         `json:"outcome"`
	RequiredDepartureTime *time.Time      `json:"required_departure_time,omitempty"`
	MinutesUntilDeparture *int            `json:"minutes_until_departure,omitempty"`
	Travel                *TravelEstimate `json:"travel,omitempty"`
	Message               string          `json:"message"`
}
