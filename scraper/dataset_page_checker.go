// backend/scraper/dataset_page_checker.go
package scraper

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Regex to find stamps in format "Last updated YYYY-MM-DD"
var lastUpdatedRegex = regexp.MustCompile(`Last updated:?\s+(\d{4}-\d{2}-\d{2})`)

const stampLayout = "2006-01-02"

// parseLastUpdatedString extracts the update date using the regex.
func parseLastUpdatedString(textToSearch string) (stamp time.Time, rawMatch string, err error) {
	matches := lastUpdatedRegex.FindStringSubmatch(textToSearch)
	if len(matches) < 2 {
		err = fmt.Errorf("could not find 'Last updated ...' pattern in provided text block. Text searched: %s", textToSearch)
		return
	}

	rawMatch = matches[0]
	stamp, err = time.Parse(stampLayout, matches[1])
	if err != nil {
		err = fmt.Errorf("failed to parse 'last updated' date '%s': %w", matches[1], err)
		return
	}
	return
}

// GetDatasetLastUpdated scrapes the dataset download page and extracts the
// "Last updated" stamp from the element matched by containerSelector. The
// stamp decides whether a fresh CSV download is worthwhile.
func GetDatasetLastUpdated(pageURL, containerSelector string) (time.Time, string, error) {
	log.Printf("Scraper: Checking last-updated stamp from %s (container: '%s')\n", pageURL, containerSelector)

	client := http.Client{Timeout: 20 * time.Second}
	res, err := client.Get(pageURL)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("failed to get URL %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return time.Time{}, "", fmt.Errorf("failed to get URL %s: status code %d", pageURL, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}

	var foundStampText string
	doc.Find(containerSelector).EachWithBreak(func(i int, selection *goquery.Selection) bool {
		text := strings.TrimSpace(selection.Text())
		if lastUpdatedRegex.MatchString(text) {
			foundStampText = text
			return false // stop iterating
		}
		return true
	})

	if foundStampText == "" {
		return time.Time{}, "", fmt.Errorf("no 'Last updated' stamp found on %s under selector '%s'", pageURL, containerSelector)
	}

	stamp, rawMatch, err := parseLastUpdatedString(foundStampText)
	if err != nil {
		return time.Time{}, "", err
	}

	log.Printf("Scraper: Dataset page reports: %s\n", rawMatch)
	return stamp, rawMatch, nil
}
