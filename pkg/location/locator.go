// Package location resolves the coordinates used for weather fetches.
// A failed resolution is soft: the coordinator skips the weather fetch
// rather than treating it as a hard error.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

const (
	nominatimURL = "https://nominatim.openstreetmap.org/search"
	userAgent    = "Moodfeed/1.0" // required by Nominatim ToS
)

// Point is a resolved coordinate pair
type Point struct {
	Latitude  float64
	Longitude float64
	Name      string
}

// Fixed is a locator returning preconfigured coordinates, the equivalent of
// the default-location fallback.
type Fixed struct {
	point Point
}

// NewFixed creates a locator for the given coordinates
func NewFixed(lat, lon float64, name string) *Fixed {
	return &Fixed{point: Point{Latitude: lat, Longitude: lon, Name: name}}
}

// Locate returns the configured coordinates
func (f *Fixed) Locate(_ context.Context) (Point, error) {
	return f.point, nil
}

// Geocoder resolves a configured city name through Nominatim
type Geocoder struct {
	query    string
	endpoint string
	client   *http.Client
	lastCall time.Time
	mu       sync.Mutex
}

// NewGeocoder creates a geocoding locator for the given city query
func NewGeocoder(query string) *Geocoder {
	return &Geocoder{
		query:    query,
		endpoint: nominatimURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// nominatimResult is one entry of the Nominatim search response
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Locate geocodes the configured query to coordinates
func (g *Geocoder) Locate(ctx context.Context) (Point, error) {
	query := strings.TrimSpace(g.query)
	if query == "" {
		return Point{}, domain.Failuref(domain.ErrPermissionDenied, "no location query configured")
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", query)

	// Nominatim requires 1 req/sec max
	g.mu.Lock()
	if !g.lastCall.IsZero() {
		if elapsed := time.Since(g.lastCall); elapsed < time.Second {
			time.Sleep(time.Second - elapsed)
		}
	}
	g.lastCall = time.Now()
	g.mu.Unlock()

	reqURL := fmt.Sprintf("%s?%s", g.endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return Point{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return Point{}, domain.WrapFailure(domain.ErrNetwork, err, "geocode "+query)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, domain.Failuref(domain.ErrNetwork, "geocoder status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Point{}, domain.WrapFailure(domain.ErrMalformed, err, "decode geocoder response")
	}
	if len(results) == 0 {
		return Point{}, domain.Failuref(domain.ErrMalformed, "no results for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Point{}, domain.WrapFailure(domain.ErrMalformed, err, "parse latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Point{}, domain.WrapFailure(domain.ErrMalformed, err, "parse longitude")
	}

	return Point{Latitude: lat, Longitude: lon, Name: results[0].DisplayName}, nil
}
