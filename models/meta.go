// backend/models/meta.go
package models

import "time"

// DatasetVersion tracks the freshness of the downloaded airport dataset.
type DatasetVersion struct {
	ID                           int        `db:"id" json:"id"`
	SourceName                   string     `db:"source_name" json:"source_name"` // e.g. "AIRPORTS_CSV"
	SourceFileURL                string     `db:"source_file_url" json:"source_file_url"`
	LastUpdatedStamp             *time.Time `db:"last_updated_stamp" json:"last_updated_stamp,omitempty"` // "last updated" stamp scraped from the dataset page
	LastCheckedOnSite            *time.Time `db:"last_checked_on_site" json:"last_checked_on_site,omitempty"`
	LastSuccessfullyDownloadedAt *time.Time `db:"last_successfully_downloaded_at" json:"last_successfully_downloaded_at,omitempty"`
	RecordCount                  int        `db:"record_count" json:"record_count"`
	CreatedAt                    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt                    time.Time  `db:"updated_at" json:"updated_at"`
}
