// backend/distancematrix/client_test.go
package distancematrix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsagara/whentoleave/backend/config"
	"github.com/tsagara/whentoleave/backend/models"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.GoogleMapsConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		APIKey:         "test-key",
	})
}

var testDestination = models.Coordinate{Latitude: 40.639447, Longitude: -73.779317}

func TestEstimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/distancematrix/json", r.URL.Path)
		assert.Equal(t, "350 5th Ave, New York", r.URL.Query().Get("origins"))
		assert.Equal(t, testDestination.String(), r.URL.Query().Get("destinations"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"rows": []map[string]interface{}{
				{
					"elements": []map[string]interface{}{
						{
							"status":   "OK",
							"duration": map[string]interface{}{"text": "40 mins", "value": 2400},
							"distance": map[string]interface{}{"text": "42.0 km"},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	estimate, err := newTestClient(srv.URL).Estimate(context.Background(), "350 5th Ave, New York", testDestination)
	require.NoError(t, err)
	assert.Equal(t, 2400, estimate.DurationSeconds)
	assert.Equal(t, "40 mins", estimate.DurationText)
	assert.Equal(t, "42.0 km", estimate.DistanceText)
}

func TestEstimateElementNotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"rows": []map[string]interface{}{
				{"elements": []map[string]interface{}{{"status": "ZERO_RESULTS"}}},
			},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Estimate(context.Background(), "nowhere", testDestination)
	assert.ErrorIs(t, err, ErrRouteUnavailable)
}

func TestEstimateProviderStatusNotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "REQUEST_DENIED"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Estimate(context.Background(), "anywhere", testDestination)
	assert.ErrorIs(t, err, ErrRouteUnavailable)
}

func TestEstimateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Estimate(context.Background(), "anywhere", testDestination)
	assert.ErrorIs(t, err, ErrRouteUnavailable)
}
