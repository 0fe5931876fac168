// backend/airports/table.go
package airports

import (
	"fmt"
	"log"
	"sync"

	"github.com/tsagara/whentoleave/backend/models"
	"github.com/tsagara/whentoleave/backend/utils"
)

// ErrAirportNotFound is returned when a code has no entry in the table.
var ErrAirportNotFound = fmt.Errorf("airport not found in reference table")

// Table is the in-memory airport reference table. Records keep their source
// order: if the dataset contains duplicate codes, the first one wins. Lookups
// are pure and deterministic for a fixed table; the table itself may be
// swapped out by a dataset refresh, so access is guarded.
type Table struct {
	mu      sync.RWMutex
	records []models.AirportRecord
}

// NewTable builds a table from dataset records, dropping rows whose
// coordinates fall outside geographic bounds (the dataset has a few blank
// and malformed rows).
func NewTable(records []models.AirportRecord) *Table {
	t := &Table{}
	t.Reload(records)
	return t
}

// Reload replaces the table contents. Used after a dataset refresh.
func (t *Table) Reload(records []models.AirportRecord) {
	kept := make([]models.AirportRecord, 0, len(records))
	dropped := 0
	for _, rec := range records {
		if rec.ICAO == "" || !rec.Coordinate().Valid() {
			dropped++
			continue
		}
		kept = append(kept, rec)
	}
	if dropped > 0 {
		log.Printf("Airports: Dropped %d dataset rows with missing codes or out-of-bounds coordinates.\n", dropped)
	}

	t.mu.Lock()
	t.records = kept
	t.mu.Unlock()
}

// Find resolves an ICAO code to its coordinates. Matching is a
// case-insensitive exact match; the first record in table order wins.
func (t *Table) Find(code string) (models.Coordinate, error) {
	normalized := utils.NormalizeAirportCode(code)

	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, rec := range t.records {
		if utils.NormalizeAirportCode(rec.ICAO) == normalized {
			return rec.Coordinate(), nil
		}
	}
	return models.Coordinate{}, fmt.Errorf("%w: %s", ErrAirportNotFound, normalized)
}

// Len reports the number of usable records currently loaded.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}
