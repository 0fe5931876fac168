// backend/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/tsagara/whentoleave/backend/airports"
	"github.com/tsagara/whentoleave/backend/config"
	"github.com/tsagara/whentoleave/backend/database"
	"github.com/tsagara/whentoleave/backend/distancematrix"
	"github.com/tsagara/whentoleave/backend/flightradar"
	"github.com/tsagara/whentoleave/backend/handlers"
	"github.com/tsagara/whentoleave/backend/services"
)

func main() {
	log.Println("Starting Departure Planner Backend Application...")

	// Secrets (FR24 token, Maps key) come from the environment; a local .env
	// file is a convenience for development, not a requirement.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; relying on process environment for secrets.")
	}

	configPath := "backend/config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "config/config.yaml"
		if _, errFallback := os.Stat(configPath); os.IsNotExist(errFallback) {
			log.Fatalf("Config file not found at default paths. Error: %v", errFallback)
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, DB name: %s",
		cfg.Server.Port, cfg.Database.DBName)

	err = database.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer database.CloseDB()

	// Load the airport reference table (downloading the dataset on first run).
	table := airports.NewTable(nil)
	updater := services.NewDataUpdateService(cfg.AirportDataset, table)
	if err := updater.EnsureAirportData(); err != nil {
		log.Fatalf("Error preparing airport reference data: %v", err)
	}

	flightClient := flightradar.NewClient(cfg.FlightRadar)
	travelClient := distancematrix.NewClient(cfg.GoogleMaps)
	planner := services.NewPlannerService(flightClient, table, travelClient)

	planHandler := handlers.NewPlanHandler(planner, cfg.Planner.DefaultBufferMinutes)
	adminHandler := handlers.NewAdminHandler(updater)

	// --- Setup HTTP routes ---
	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := database.DB.Ping(); err != nil {
			http.Error(w, `{"status": "error", "message": "database connection error"}`, http.StatusInternalServerError)
			log.Printf("Health check failed: DB ping error: %v", err)
			return
		}
		fmt.Fprintln(w, `{"status": "ok", "message": "departure planner backend is healthy"}`)
	})

	http.HandleFunc("/api/plan", planHandler.PlanDeparture)

	// Admin routes for managing the airport dataset
	http.HandleFunc("/api/admin/refresh-airports", adminHandler.ForceRefreshAirportData)
	http.HandleFunc("/api/admin/check-update-airports", adminHandler.CheckAndUpdateAirportData)

	serverAddr := ":" + cfg.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	err = http.ListenAndServe(serverAddr, nil)
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
