// backend/models/airport.go
package models

// AirportRecord represents one row of the airport reference dataset.
// CSV tags match the OurAirports headers; db tags match the airports table.
type AirportRecord struct {
	ID int64 `db:"id"` // database primary key, not from CSV

	ICAO      string  `csv:"ident" db:"icao"`
	Name      string  `csv:"name" db:"name"`
	Latitude  float64 `csv:"latitude_deg" db:"latitude"`
	Longitude float64 `csv:"longitude_deg" db:"longitude"`
}

// Coordinate returns the record's position.
func (a AirportRecord) Coordinate() Coordinate {
	return Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}
