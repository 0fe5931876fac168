// backend/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type FlightRadarConfig struct {
	BaseURL           string `yaml:"base_url"`
	RequestTimeoutStr string `yaml:"request_timeout"`
	RequestTimeout    time.Duration
	Token             string // from FR24_TOKEN env var, never from yaml
}

type GoogleMapsConfig struct {
	BaseURL           string `yaml:"base_url"`
	RequestTimeoutStr string `yaml:"request_timeout"`
	RequestTimeout    time.Duration
	APIKey            string // from GOOGLE_MAPS_API_KEY env var, never from yaml
}

type AirportDatasetConfig struct {
	CsvURL               string `yaml:"csv_url"`
	DatasetPageURL       string `yaml:"dataset_page_url"`
	LocalCsvPath         string `yaml:"local_csv_path"`
	UpdatedStampSelector string `yaml:"updated_stamp_selector"`
}

type PlannerConfig struct {
	DefaultBufferMinutes int `yaml:"default_buffer_minutes"`
}

type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Database       DatabaseConfig       `yaml:"database"`
	FlightRadar    FlightRadarConfig    `yaml:"flightradar"`
	GoogleMaps     GoogleMapsConfig     `yaml:"google_maps"`
	AirportDataset AirportDatasetConfig `yaml:"airport_dataset"`
	Planner        PlannerConfig        `yaml:"planner"`
}

// LoadConfig reads the yaml config file and fills in secrets from the
// environment. The result is returned by value so callers pass it into
// constructors explicitly; there is no package-level config.
func LoadConfig(configPath string) (Config, error) {
	var cfg Config

	file, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Parse durations
	cfg.FlightRadar.RequestTimeout, err = parseDurationOrDefault(cfg.FlightRadar.RequestTimeoutStr, 15*time.Second)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse flightradar request_timeout: %w", err)
	}
	cfg.GoogleMaps.RequestTimeout, err = parseDurationOrDefault(cfg.GoogleMaps.RequestTimeoutStr, 10*time.Second)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse google_maps request_timeout: %w", err)
	}

	// API credentials come from the environment only. The old frontend client
	// had them hard-coded; they must never live in a checked-in file again.
	cfg.FlightRadar.Token = os.Getenv("FR24_TOKEN")
	if cfg.FlightRadar.Token == "" {
		return cfg, fmt.Errorf("FR24_TOKEN is not set in the environment")
	}
	cfg.GoogleMaps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	if cfg.GoogleMaps.APIKey == "" {
		return cfg, fmt.Errorf("GOOGLE_MAPS_API_KEY is not set in the environment")
	}

	if cfg.Planner.DefaultBufferMinutes < 0 {
		return cfg, fmt.Errorf("planner default_buffer_minutes must not be negative")
	}

	// Create the temp directory for the downloaded airport CSV if needed.
	if cfg.AirportDataset.LocalCsvPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.AirportDataset.LocalCsvPath), 0755); err != nil {
			return cfg, fmt.Errorf("failed to create directory for airport CSV: %w", err)
		}
	}

	return cfg, nil
}

func parseDurationOrDefault(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
