// backend/distancematrix/client.go
package distancematrix

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tsagara/whentoleave/backend/config"
	"github.com/tsagara/whentoleave/backend/models"
)

// ErrRouteUnavailable is returned when the provider cannot produce a travel
// estimate for the requested origin/destination pair.
var ErrRouteUnavailable = fmt.Errorf("travel time unavailable for this route")

// Client queries the Google Distance Matrix API for exactly one origin and
// one destination per call; batch requests are out of scope.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.GoogleMapsConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Text  string `json:"text"`
				Value int    `json:"value"` // seconds
			} `json:"duration"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// Estimate resolves door-to-airport travel time from a free-form origin
// address to a destination coordinate. Anything other than an explicit OK
// status for the single requested pair yields ErrRouteUnavailable.
func (c *Client) Estimate(ctx context.Context, origin string, destination models.Coordinate) (*models.TravelEstimate, error) {
	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination.String())
	params.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/maps/api/distancematrix/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrRouteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status: %d", ErrRouteUnavailable, resp.StatusCode)
	}

	var payload distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrRouteUnavailable, err)
	}

	if payload.Status != "OK" {
		return nil, fmt.Errorf("%w: provider status %q", ErrRouteUnavailable, payload.Status)
	}
	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("%w: empty result", ErrRouteUnavailable)
	}

	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, fmt.Errorf("%w: element status %q", ErrRouteUnavailable, element.Status)
	}

	return &models.TravelEstimate{
		DurationSeconds: element.Duration.Value,
		DurationText:    element.Duration.Text,
		DistanceText:    element.Distance.Text,
	}, nil
}
