package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"workdesk/internal/shared/config"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

const (
	// Maximum response body size for the geocoding API (256KB)
	maxGeocodingResponseSize = 256 << 10
)

// Result is a resolved place.
type Result struct {
	DisplayName string
	Latitude    float64
	Longitude   float64
}

// nominatimPlace represents one entry of the Nominatim search response.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// NominatimClient resolves free-form place names against a Nominatim server.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     logger.Interface
}

func NewNominatimClient(cfg config.GeocodingConfig, log logger.Interface) *NominatimClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NominatimClient{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// Lookup resolves a place name to coordinates. An empty result set is a not
// found error, not a lookup failure.
func (c *NominatimClient) Lookup(ctx context.Context, query string) (*Result, error) {
	if query == "" {
		return nil, errors.NewValidationError("geocoding query is required")
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query geocoding service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from geocoding service: %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxGeocodingResponseSize)).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(places) == 0 {
		return nil, errors.NewNotFoundError("no location found for query")
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocoding response: %w", err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocoding response: %w", err)
	}

	c.logger.Debugw("geocoded location",
		"query", query,
		"display_name", places[0].DisplayName,
	)

	return &Result{
		DisplayName: places[0].DisplayName,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}
