// backend/flightradar/client_test.go
package flightradar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsagara/whentoleave/backend/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.FlightRadarConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		Token:          "test-token",
	})
}

func TestResolveLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/live/flight-positions/full", r.URL.Path)
		assert.Equal(t, "UA123", r.URL.Query().Get("flights"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "v1", r.Header.Get("Accept-Version"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{
				{"dest_icao": "KJFK", "eta": "2024-05-01T14:30:00Z"},
			},
		})
	}))
	defer srv.Close()

	snapshot, err := newTestClient(srv.URL).Resolve(context.Background(), "UA123")
	require.NoError(t, err)
	assert.Equal(t, "KJFK", snapshot.DestinationICAO)
	require.NotNil(t, snapshot.ArrivalTime)
	assert.Equal(t, time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC), snapshot.ArrivalTime.UTC())
}

func TestResolveFallsBackToHistoric(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var historicTimestamp string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/live/flight-positions/full":
			// Not airborne: live query returns nothing.
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
		case "/api/historic/flight-positions/full":
			historicTimestamp = r.URL.Query().Get("timestamp")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []map[string]string{{"dest_icao": "KJFK"}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	client.now = func() time.Time { return now }

	snapshot, err := client.Resolve(context.Background(), "UA123")
	require.NoError(t, err)
	assert.Equal(t, "KJFK", snapshot.DestinationICAO)
	// Historic data carries no timing; it must not be faked as "now".
	assert.Nil(t, snapshot.ArrivalTime)

	// The look-back window is anchored 12 hours before the current instant.
	want := strconv.FormatInt(now.Add(-12*time.Hour).Unix(), 10)
	assert.Equal(t, want, historicTimestamp)
}

func TestResolveLiveWithoutEtaFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/live/flight-positions/full":
			// Destination present but no usable arrival time.
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []map[string]string{{"dest_icao": "KSFO", "eta": ""}},
			})
		case "/api/historic/flight-positions/full":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []map[string]string{{"dest_icao": "KSFO"}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	snapshot, err := newTestClient(srv.URL).Resolve(context.Background(), "UA123")
	require.NoError(t, err)
	assert.Equal(t, "KSFO", snapshot.DestinationICAO)
	assert.Nil(t, snapshot.ArrivalTime)
}

func TestResolveNotFoundAnywhere(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Resolve(context.Background(), "UA123")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestResolveTransportFailuresAreAbsorbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Resolve(context.Background(), "UA123")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}
