// backend/scraper/csv_downloader.go
package scraper

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DownloadFile is a utility function to download a file from a URL and save
// it to a local path. It returns an error if any step fails.
func DownloadFile(url string, localSavePath string) error {
	log.Printf("Attempting to download file from URL: %s to local path: %s\n", url, localSavePath)

	client := http.Client{
		Timeout: 30 * time.Second, // Sensible timeout for a file download
	}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: received status code %d", url, resp.StatusCode)
	}

	// Ensure the directory for the local save path exists
	dir := filepath.Dir(localSavePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	outFile, err := os.Create(localSavePath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", localSavePath, err)
	}
	defer outFile.Close()

	_, err = io.Copy(outFile, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to copy downloaded content to %s: %w", localSavePath, err)
	}

	log.Printf("Successfully downloaded %s to %s\n", url, localSavePath)
	return nil
}

// DownloadAirportsCsv downloads the airport dataset CSV from the given URL
// and saves it to the given local path. It returns the local path of the
// downloaded file or an error.
func DownloadAirportsCsv(csvURL, localPath string) (string, error) {
	if csvURL == "" {
		return "", fmt.Errorf("airport dataset CSV URL is not configured")
	}
	if localPath == "" {
		return "", fmt.Errorf("local save path for airport dataset CSV is not configured")
	}

	err := DownloadFile(csvURL, localPath)
	if err != nil {
		return "", fmt.Errorf("failed to download airport dataset CSV: %w", err)
	}
	return localPath, nil
}
