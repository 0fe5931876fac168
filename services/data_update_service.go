// backend/services/data_update_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tsagara/whentoleave/backend/airports"
	"github.com/tsagara/whentoleave/backend/config"
	"github.com/tsagara/whentoleave/backend/database"
	"github.com/tsagara/whentoleave/backend/scraper"
)

const sourceAirportsCsv = "AIRPORTS_CSV"

// DataUpdateService keeps the airport reference data current: it downloads
// the dataset CSV, loads it into the database, and rebuilds the in-memory
// lookup table the planner resolves against.
type DataUpdateService struct {
	cfg   config.AirportDatasetConfig
	table *airports.Table
}

func NewDataUpdateService(cfg config.AirportDatasetConfig, table *airports.Table) *DataUpdateService {
	return &DataUpdateService{cfg: cfg, table: table}
}

// EnsureAirportData is called at startup. If the database already holds a
// dataset it is loaded into the lookup table; otherwise a full refresh runs
// first.
func (s *DataUpdateService) EnsureAirportData() error {
	count, err := database.CountAirports()
	if err != nil {
		return fmt.Errorf("failed to check airport table state: %w", err)
	}

	if count == 0 {
		log.Println("Service: No airport records in the database. Running initial dataset refresh...")
		return s.RefreshAirportData()
	}

	records, err := database.GetAllAirports()
	if err != nil {
		return fmt.Errorf("failed to load airport records: %w", err)
	}
	s.table.Reload(records)
	log.Printf("Service: Loaded %d airport records into the lookup table (%d usable).\n", len(records), s.table.Len())
	return nil
}

// RefreshAirportData downloads the dataset CSV, parses it, replaces the
// database contents, and rebuilds the in-memory table.
func (s *DataUpdateService) RefreshAirportData() error {
	log.Println("Service: Forcing refresh of airport dataset...")

	localPath, err := scraper.DownloadAirportsCsv(s.cfg.CsvURL, s.cfg.LocalCsvPath)
	if err != nil {
		return fmt.Errorf("failed to download airport dataset: %w", err)
	}
	defer func() {
		log.Printf("Service: Cleaning up temporary file: %s\n", localPath)
		if err := os.Remove(localPath); err != nil {
			log.Printf("ERROR Service: Failed to remove temporary file %s: %v\n", localPath, err)
		}
	}()

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open downloaded file %s: %w", localPath, err)
	}
	defer file.Close()

	records, err := scraper.ParseAirportsCsv(file)
	if err != nil {
		return fmt.Errorf("failed to parse airport dataset from %s: %w", localPath, err)
	}

	if err := database.ReplaceAllAirports(records, filepath.Base(localPath)); err != nil {
		return fmt.Errorf("failed to save airport records to database: %w", err)
	}

	s.table.Reload(records)

	downloadedAt := time.Now()
	if err := database.LogDatasetVersionUpdate(sourceAirportsCsv, s.cfg.CsvURL, nil, nil, &downloadedAt, len(records)); err != nil {
		// The refresh itself succeeded; version bookkeeping is best effort.
		log.Printf("WARN Service: Failed to record dataset version: %v\n", err)
	}

	log.Printf("Service: Airport dataset refresh complete. %d records stored, %d usable in lookup table.\n",
		len(records), s.table.Len())
	return nil
}

// CheckAndUpdateAirportData scrapes the dataset page's "last updated" stamp
// and refreshes only when it is newer than the stamp recorded at the last
// refresh. With no page URL configured the check is skipped.
func (s *DataUpdateService) CheckAndUpdateAirportData() error {
	if s.cfg.DatasetPageURL == "" {
		log.Println("Service: No dataset page URL configured; skipping freshness check.")
		return nil
	}

	stamp, raw, err := scraper.GetDatasetLastUpdated(s.cfg.DatasetPageURL, s.cfg.UpdatedStampSelector)
	if err != nil {
		return fmt.Errorf("failed to scrape dataset page for freshness: %w", err)
	}
	checkedAt := time.Now()

	version, err := database.GetDatasetVersion(sourceAirportsCsv)
	if err != nil {
		return fmt.Errorf("failed to load stored dataset version: %w", err)
	}

	updateNeeded := version == nil || version.LastUpdatedStamp == nil || stamp.After(*version.LastUpdatedStamp)
	if !updateNeeded {
		log.Printf("Service: Airport dataset is current (%s). No update needed.\n", raw)
		// Record the check so the version row reflects when we last looked.
		return database.LogDatasetVersionUpdate(sourceAirportsCsv, s.cfg.CsvURL,
			version.LastUpdatedStamp, &checkedAt, version.LastSuccessfullyDownloadedAt, version.RecordCount)
	}

	log.Printf("Service: Dataset page reports a newer dataset (%s). Refreshing...\n", raw)
	if err := s.RefreshAirportData(); err != nil {
		return err
	}

	downloadedAt := time.Now()
	return database.LogDatasetVersionUpdate(sourceAirportsCsv, s.cfg.CsvURL,
		&stamp, &checkedAt, &downloadedAt, s.table.Len())
}
