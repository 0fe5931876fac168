// backend/scraper/dataset_page_checker_test.go
package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDatasetLastUpdated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<div class="content">
				<p>Download the airports dataset below.</p>
				<p>Last updated: 2024-04-28</p>
			</div>
		</body></html>`)
	}))
	defer srv.Close()

	stamp, raw, err := GetDatasetLastUpdated(srv.URL, "div.content")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC), stamp)
	assert.Contains(t, raw, "2024-04-28")
}

func TestGetDatasetLastUpdatedNoStamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div class="content"><p>Nothing here.</p></div></body></html>`)
	}))
	defer srv.Close()

	_, _, err := GetDatasetLastUpdated(srv.URL, "div.content")
	assert.Error(t, err)
}

func TestParseLastUpdatedString(t *testing.T) {
	stamp, raw, err := parseLastUpdatedString("Airport dataset. Last updated 2023-12-01, 78000 rows.")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), stamp)
	assert.Equal(t, "Last updated 2023-12-01", raw)
}
