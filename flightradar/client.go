// backend/flightradar/client.go
package flightradar

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/tsagara/whentoleave/backend/config"
	"github.com/tsagara/whentoleave/backend/models"
)

// ErrFlightNotFound is returned when neither the live nor the historic
// endpoint yields a usable record for a flight number.
var ErrFlightNotFound = fmt.Errorf("flight not found in live or historic data")

// historicLookback is how far back the historic endpoint is queried when a
// flight is not found live.
const historicLookback = 12 * time.Hour

// Client queries the FlightRadar24 flight-positions API. It tries the live
// endpoint first and falls back to the historic one; a single failure at each
// tier is terminal for that tier, there are no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	now        func() time.Time
}

func NewClient(cfg config.FlightRadarConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		now:        time.Now,
	}
}

// flightPositionsResponse is the shared shape of the live and historic
// flight-positions endpoints. Only the first record is ever used.
type flightPositionsResponse struct {
	Data []struct {
		DestICAO string `json:"dest_icao"`
		ETA      string `json:"eta"`
	} `json:"data"`
}

// Resolve maps a flight number to its destination and arrival time.
// The live endpoint must yield both a destination and a parseable ETA; the
// historic endpoint only needs a destination, in which case ArrivalTime is
// nil — unknown timing is reported as unknown, not as "landing now".
func (c *Client) Resolve(ctx context.Context, flightNumber string) (*models.FlightSnapshot, error) {
	snapshot, err := c.lookupLive(ctx, flightNumber)
	if err == nil {
		return snapshot, nil
	}
	log.Printf("FlightRadar: Live lookup for %s failed (%v). Trying historic data...\n", flightNumber, err)

	snapshot, err = c.lookupHistoric(ctx, flightNumber)
	if err != nil {
		log.Printf("FlightRadar: Historic lookup for %s failed: %v\n", flightNumber, err)
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightNumber)
	}
	return snapshot, nil
}

func (c *Client) lookupLive(ctx context.Context, flightNumber string) (*models.FlightSnapshot, error) {
	endpoint := fmt.Sprintf("%s/api/live/flight-positions/full?flights=%s",
		c.baseURL, url.QueryEscape(flightNumber))

	payload, err := c.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("no live record for flight %s", flightNumber)
	}

	record := payload.Data[0]
	if record.DestICAO == "" {
		return nil, fmt.Errorf("live record for flight %s has no destination", flightNumber)
	}
	eta, err := time.Parse(time.RFC3339, record.ETA)
	if err != nil {
		return nil, fmt.Errorf("live record for flight %s has unusable eta %q: %w", flightNumber, record.ETA, err)
	}

	return &models.FlightSnapshot{DestinationICAO: record.DestICAO, ArrivalTime: &eta}, nil
}

func (c *Client) lookupHistoric(ctx context.Context, flightNumber string) (*models.FlightSnapshot, error) {
	lookback := c.now().Add(-historicLookback).Unix()
	endpoint := fmt.Sprintf("%s/api/historic/flight-positions/full?flights=%s&timestamp=%d",
		c.baseURL, url.QueryEscape(flightNumber), lookback)

	payload, err := c.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("no historic record for flight %s", flightNumber)
	}

	record := payload.Data[0]
	if record.DestICAO == "" {
		return nil, fmt.Errorf("historic record for flight %s has no destination", flightNumber)
	}

	// Historic data carries no usable timing; ArrivalTime stays nil.
	return &models.FlightSnapshot{DestinationICAO: record.DestICAO}, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*flightPositionsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var payload flightPositionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &payload, nil
}
