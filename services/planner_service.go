// backend/services/planner_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/tsagara/whentoleave/backend/models"
)

// FlightResolver maps a flight number to its destination and arrival time.
type FlightResolver interface {
	Resolve(ctx context.Context, flightNumber string) (*models.FlightSnapshot, error)
}

// AirportResolver maps an ICAO code to coordinates.
type AirportResolver interface {
	Find(code string) (models.Coordinate, error)
}

// TravelEstimator computes door-to-airport travel time for one
// origin/destination pair.
type TravelEstimator interface {
	Estimate(ctx context.Context, origin string, destination models.Coordinate) (*models.TravelEstimate, error)
}

// PlannerService is the departure decision engine. It sequences the three
// resolvers (flight, airport, travel — each call depends on the previous
// result) and classifies the current moment against the flight's arrival
// time. Every run starts fresh; nothing is cached between requests.
type PlannerService struct {
	flights  FlightResolver
	airports AirportResolver
	travel   TravelEstimator
	now      func() time.Time
}

func NewPlannerService(flights FlightResolver, airports AirportResolver, travel TravelEstimator) *PlannerService {
	return &PlannerService{
		flights:  flights,
		airports: airports,
		travel:   travel,
		now:      time.Now,
	}
}

// Plan resolves a flight and an origin address into a departure
// recommendation. It never returns an error: every resolver failure is
// absorbed into an UNRESOLVABLE recommendation whose message says which
// stage failed (flight, airport, or route).
func (s *PlannerService) Plan(ctx context.Context, flightNumber, originAddress string, bufferMinutes int) models.DepartureRecommendation {
	log.Printf("Service: Planning departure for flight %s from %q (buffer %d min)\n", flightNumber, originAddress, bufferMinutes)

	snapshot, err := s.flights.Resolve(ctx, flightNumber)
	if err != nil {
		log.Printf("Service: Flight resolution failed for %s: %v\n", flightNumber, err)
		return unresolvable(fmt.Sprintf(
			"Flight %s was not found in live or historic data. It is likely not airborne right now.", flightNumber))
	}

	coords, err := s.airports.Find(snapshot.DestinationICAO)
	if err != nil {
		log.Printf("Service: Airport resolution failed for %s: %v\n", snapshot.DestinationICAO, err)
		return unresolvable(fmt.Sprintf(
			"Destination coordinates unavailable for airport %s.", snapshot.DestinationICAO))
	}

	estimate, err := s.travel.Estimate(ctx, originAddress, coords)
	if err != nil {
		log.Printf("Service: Travel estimation failed for %q -> %s: %v\n", originAddress, coords, err)
		return unresolvable(fmt.Sprintf(
			"Travel time cannot be computed for the route from %q to %s.", originAddress, snapshot.DestinationICAO))
	}

	return s.classify(flightNumber, snapshot, estimate, bufferMinutes)
}

// classify turns a fully resolved snapshot and travel estimate into one of
// the four urgency outcomes.
func (s *PlannerService) classify(flightNumber string, snapshot *models.FlightSnapshot, estimate *models.TravelEstimate, bufferMinutes int) models.DepartureRecommendation {
	// Historic-only data carries no timing. Report the travel figures but
	// make no urgency call: unknown is unknown, not "landing now".
	if snapshot.ArrivalTime == nil {
		return models.DepartureRecommendation{
			Outcome: models.OutcomeUnresolvable,
			Travel:  estimate,
			Message: fmt.Sprintf(
				"Arrival time for flight %s is unknown (only historic data was available). Travel to %s takes %s (%s), but no departure time can be recommended.",
				flightNumber, snapshot.DestinationICAO, estimate.DurationText, estimate.DistanceText),
		}
	}

	now := s.now()
	arrival := *snapshot.ArrivalTime
	travelTime := time.Duration(estimate.DurationSeconds) * time.Second
	buffer := time.Duration(bufferMinutes) * time.Minute
	requiredDeparture := arrival.Add(-travelTime).Add(-buffer)

	if !now.Before(arrival) {
		return models.DepartureRecommendation{
			Outcome: models.OutcomeAlreadyLanded,
			Travel:  estimate,
			Message: fmt.Sprintf("Flight %s has landed. You must go immediately.", flightNumber),
		}
	}

	if !now.Before(requiredDeparture) {
		minutesToArrival := int(math.Ceil(arrival.Sub(now).Minutes()))
		travelMinutes := int(math.Ceil(travelTime.Minutes()))
		return models.DepartureRecommendation{
			Outcome:               models.OutcomeLeaveImmediately,
			RequiredDepartureTime: &requiredDeparture,
			Travel:                estimate,
			Message: fmt.Sprintf(
				"Flight %s lands in %d minutes but travel takes %d minutes (plus a %d minute buffer). Leave immediately.",
				flightNumber, minutesToArrival, travelMinutes, bufferMinutes),
		}
	}

	minutesUntilDeparture := int(math.Ceil(requiredDeparture.Sub(now).Minutes()))
	return models.DepartureRecommendation{
		Outcome:               models.OutcomeHasBuffer,
		RequiredDepartureTime: &requiredDeparture,
		MinutesUntilDeparture: &minutesUntilDeparture,
		Travel:                estimate,
		Message: fmt.Sprintf(
			"Flight %s arrives at %s. You should leave by %s (in %d minutes). Travel takes %s (%s).",
			flightNumber,
			arrival.UTC().Format(time.RFC1123),
			requiredDeparture.UTC().Format(time.RFC1123),
			minutesUntilDeparture,
			estimate.DurationText, estimate.DistanceText),
	}
}

func unresolvable(message string) models.DepartureRecommendation {
	return models.DepartureRecommendation{
		Outcome: models.OutcomeUnresolvable,
		Message: message,
	}
}
