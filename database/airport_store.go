// backend/database/airport_store.go
package database

import (
	"fmt"
	"log"

	"github.com/tsagara/whentoleave/backend/models"
)

// ReplaceAllAirports saves a freshly parsed airport dataset using a
// clear-and-load strategy inside one transaction, so a failed refresh never
// leaves the table half-populated. Insertion order is preserved via the
// auto-increment id; lookups that need "first record wins" rely on it.
func ReplaceAllAirports(records []models.AirportRecord, sourceFile string) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	if len(records) == 0 {
		return fmt.Errorf("refusing to replace airports table with an empty dataset")
	}

	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for airports: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec("DELETE FROM airports")
	if err != nil {
		return fmt.Errorf("failed to clear airports table: %w", err)
	}
	log.Println("Cleared existing airport records.")

	stmt, err := tx.Prepare(`
		INSERT INTO airports (icao, name, latitude, longitude, source_file, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare airport insert statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.Exec(rec.ICAO, rec.Name, rec.Latitude, rec.Longitude, sourceFile)
		if err != nil {
			log.Printf("ERROR saving airport record: %+v, Error: %v", rec, err)
			return fmt.Errorf("failed to execute airport insert for icao '%s': %w", rec.ICAO, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction for airports: %w", err)
	}

	log.Printf("Successfully saved %d airport records from source: %s\n", len(records), sourceFile)
	return nil
}

// GetAllAirports loads the whole reference table in insertion order, for the
// in-memory lookup table built at startup and after each refresh.
func GetAllAirports() ([]models.AirportRecord, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := DB.Query(`
		SELECT id, icao, name, latitude, longitude
		FROM airports
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query airports: %w", err)
	}
	defer rows.Close()

	var records []models.AirportRecord
	for rows.Next() {
		var rec models.AirportRecord
		if err := rows.Scan(&rec.ID, &rec.ICAO, &rec.Name, &rec.Latitude, &rec.Longitude); err != nil {
			log.Printf("ERROR: Failed to scan airport row: %v", err)
			continue
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating airport rows: %w", err)
	}

	log.Printf("Retrieved %d airport records from the database.\n", len(records))
	return records, nil
}

// CountAirports reports how many airport records are stored.
func CountAirports() (int, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM airports").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count airports: %w", err)
	}
	return count, nil
}
