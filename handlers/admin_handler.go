// backend/handlers/admin_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/tsagara/whentoleave/backend/services"
)

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// AdminHandler exposes dataset maintenance endpoints.
type AdminHandler struct {
	updater *services.DataUpdateService
}

func NewAdminHandler(updater *services.DataUpdateService) *AdminHandler {
	return &AdminHandler{updater: updater}
}

// ForceRefreshAirportData handles requests to manually refresh the airport
// dataset. Expects POST requests to /api/admin/refresh-airports
func (h *AdminHandler) ForceRefreshAirportData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	if err := h.updater.RefreshAirportData(); err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to refresh airport dataset: %v", err))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Airport dataset refreshed successfully."})
}

// CheckAndUpdateAirportData handles requests to refresh the airport dataset
// only if the dataset page advertises a newer version.
// Expects POST requests to /api/admin/check-update-airports
func (h *AdminHandler) CheckAndUpdateAirportData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	if err := h.updater.CheckAndUpdateAirportData(); err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to check/update airport dataset: %v", err))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Airport dataset check/update completed."})
}
