// backend/database/dataset_version_store.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/tsagara/whentoleave/backend/models"
)

// LogDatasetVersionUpdate inserts or updates the version record for a
// dataset source. This tracks when the dataset page was last checked, what
// "last updated" stamp it advertised, and when a download last succeeded.
func LogDatasetVersionUpdate(
	sourceName string,
	sourceURL string,
	lastUpdatedStamp *time.Time,
	lastCheckedOnSite *time.Time,
	lastSuccessfullyDownloadedAt *time.Time,
	recordCount int,
) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	var sqlStamp, sqlChecked, sqlDownloaded sql.NullTime
	if lastUpdatedStamp != nil {
		sqlStamp = sql.NullTime{Time: *lastUpdatedStamp, Valid: true}
	}
	if lastCheckedOnSite != nil {
		sqlChecked = sql.NullTime{Time: *lastCheckedOnSite, Valid: true}
	}
	if lastSuccessfullyDownloadedAt != nil {
		sqlDownloaded = sql.NullTime{Time: *lastSuccessfullyDownloadedAt, Valid: true}
	}

	query := `
		INSERT INTO dataset_versions (
			source_name, source_file_url, last_updated_stamp,
			last_checked_on_site, last_successfully_downloaded_at,
			record_count, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			source_file_url = VALUES(source_file_url),
			last_updated_stamp = VALUES(last_updated_stamp),
			last_checked_on_site = VALUES(last_checked_on_site),
			last_successfully_downloaded_at = VALUES(last_successfully_downloaded_at),
			record_count = VALUES(record_count),
			updated_at = NOW()
	`

	_, err := DB.Exec(query,
		sourceName, sourceURL, sqlStamp, sqlChecked, sqlDownloaded, recordCount,
	)
	if err != nil {
		log.Printf("ERROR Database: Failed to log/update dataset version for '%s': %v", sourceName, err)
		return fmt.Errorf("failed to log dataset version for %s: %w", sourceName, err)
	}

	log.Printf("Database: Successfully logged/updated dataset version for '%s'. Stamp: %v, Records: %d\n",
		sourceName, lastUpdatedStamp, recordCount)
	return nil
}

// GetDatasetVersion retrieves the version record for one dataset source, or
// nil when the source has never been recorded.
func GetDatasetVersion(sourceName string) (*models.DatasetVersion, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var v models.DatasetVersion
	var stamp, checked, downloaded sql.NullTime

	err := DB.QueryRow(`
		SELECT id, source_name, source_file_url, last_updated_stamp,
		       last_checked_on_site, last_successfully_downloaded_at,
		       record_count, created_at, updated_at
		FROM dataset_versions
		WHERE source_name = ?
	`, sourceName).Scan(
		&v.ID, &v.SourceName, &v.SourceFileURL, &stamp,
		&checked, &downloaded, &v.RecordCount, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query dataset version for %s: %w", sourceName, err)
	}

	if stamp.Valid {
		v.LastUpdatedStamp = &stamp.Time
	}
	if checked.Valid {
		v.LastCheckedOnSite = &checked.Time
	}
	if downloaded.Valid {
		v.LastSuccessfullyDownloadedAt = &downloaded.Time
	}
	return &v, nil
}
