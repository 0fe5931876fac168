// backend/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYaml = `
server:
  port: "8080"
database:
  host: "127.0.0.1"
  port: "3306"
  user: "app"
  password: "secret"
  dbname: "whentoleave"
flightradar:
  base_url: "https://fr24api.flightradar24.com"
  request_timeout: "20s"
google_maps:
  base_url: "https://maps.googleapis.com"
airport_dataset:
  csv_url: "https://example.com/airports.csv"
planner:
  default_buffer_minutes: 15
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYaml), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FR24_TOKEN", "token-from-env")
	t.Setenv("GOOGLE_MAPS_API_KEY", "key-from-env")

	cfg, err := LoadConfig(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "whentoleave", cfg.Database.DBName)
	assert.Equal(t, 20*time.Second, cfg.FlightRadar.RequestTimeout)
	// Unset timeout falls back to the default.
	assert.Equal(t, 10*time.Second, cfg.GoogleMaps.RequestTimeout)
	assert.Equal(t, "token-from-env", cfg.FlightRadar.Token)
	assert.Equal(t, "key-from-env", cfg.GoogleMaps.APIKey)
	assert.Equal(t, 15, cfg.Planner.DefaultBufferMinutes)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("FR24_TOKEN", "")
	t.Setenv("GOOGLE_MAPS_API_KEY", "key")

	_, err := LoadConfig(writeTestConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FR24_TOKEN")

	t.Setenv("FR24_TOKEN", "token")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	_, err = LoadConfig(writeTestConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_MAPS_API_KEY")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
