// backend/models/api_models.go
package models

// PlanDepartureRequest is the expected JSON body for the /api/plan endpoint.
type PlanDepartureRequest struct {
	FlightNumber  string `json:"flight_number"`  // e.g. "UA123"
	Address       string `json:"address"`        // free-form origin address
	BufferMinutes *int   `json:"buffer_minutes"` // optional extra margin; nil means server default
}
