// backend/handlers/plan_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tsagara/whentoleave/backend/models"
	"github.com/tsagara/whentoleave/backend/services"
)

// PlanHandler exposes the departure planner over HTTP. Input validation
// (non-empty flight number and address) happens here, before the engine is
// ever invoked.
type PlanHandler struct {
	planner              *services.PlannerService
	defaultBufferMinutes int
}

func NewPlanHandler(planner *services.PlannerService, defaultBufferMinutes int) *PlanHandler {
	return &PlanHandler{planner: planner, defaultBufferMinutes: defaultBufferMinutes}
}

// PlanDeparture handles requests to plan a departure for an arriving flight.
// Expects POST to /api/plan
// with JSON body: {"flight_number": "UA123", "address": "...", "buffer_minutes": 15}
func (h *PlanHandler) PlanDeparture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req models.PlanDepartureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.FlightNumber == "" {
		respondWithError(w, http.StatusBadRequest, "Missing 'flight_number' in request body")
		return
	}
	if req.Address == "" {
		respondWithError(w, http.StatusBadRequest, "Missing 'address' in request body")
		return
	}

	bufferMinutes := h.defaultBufferMinutes
	if req.BufferMinutes != nil {
		if *req.BufferMinutes < 0 {
			respondWithError(w, http.StatusBadRequest, "'buffer_minutes' must not be negative")
			return
		}
		bufferMinutes = *req.BufferMinutes
	}

	log.Printf("Handler: Received plan request for flight %s from %q\n", req.FlightNumber, req.Address)

	recommendation := h.planner.Plan(r.Context(), req.FlightNumber, req.Address, bufferMinutes)
	respondWithJSON(w, http.StatusOK, recommendation)
}
