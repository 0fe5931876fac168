// backend/scraper/csv_parser.go
package scraper

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"

	"github.com/jszwec/csvutil"

	"github.com/tsagara/whentoleave/backend/models"
)

// ParseAirportsCsv takes an io.Reader containing the airport dataset CSV and
// returns a slice of AirportRecord structs. csvutil maps the header row to
// struct fields via the `csv:"..."` tags in models.AirportRecord.
//
// The dataset contains occasional rows with blank or junk coordinate fields,
// so records are decoded one at a time and bad rows are skipped instead of
// failing the whole file.
func ParseAirportsCsv(reader io.Reader) ([]models.AirportRecord, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1 // the dataset has ragged rows now and then

	decoder, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for airports: %w", err)
	}

	var records []models.AirportRecord
	skipped := 0
	for {
		var rec models.AirportRecord
		if err := decoder.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		log.Printf("Skipped %d malformed rows in airport dataset CSV.\n", skipped)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("airport dataset CSV contained no parseable records")
	}

	log.Printf("Successfully parsed %d airport records from CSV.\n", len(records))
	return records, nil
}
