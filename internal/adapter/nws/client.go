// Package nws fetches active hazard alerts from the National Weather
// Service alerts-by-area feed.
package nws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.weather.gov"

// Client fetches active alert headlines for one area code. The NWS API
// requires a descriptive User-Agent with contact information; requests
// without one are rejected.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	area       string
	logger     *slog.Logger
}

// NewClient creates an alerts client for the given area (e.g. "UT").
func NewClient(userAgent, area string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		userAgent:  userAgent,
		area:       area,
		logger:     logger,
	}
}

// FetchActiveAlerts returns the raw (not yet deduplicated) headlines of all
// active alerts for the area. Per feature it prefers the headline property
// and falls back to the event type; features lacking both are dropped.
//
// Alert availability must never block the bulletin, so every failure mode —
// transport error, non-success status, undecodable body — degrades to an
// empty list with a logged warning.
func (c *Client) FetchActiveAlerts(ctx context.Context) []string {
	u := c.baseURL + "/alerts/active?area=" + url.QueryEscape(c.area)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.logger.Warn("alerts request build failed", "error", err)
		return nil
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("alerts fetch failed", "area", c.area, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("alerts fetch returned non-success status", "area", c.area, "status", resp.StatusCode)
		return nil
	}

	var ar alertsResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		c.logger.Warn("alerts decode failed", "area", c.area, "error", err)
		return nil
	}

	headlines := make([]string, 0, len(ar.Features))
	for _, feat := range ar.Features {
		h := feat.Properties.Headline
		if h == "" {
			h = feat.Properties.Event
		}
		if h != "" {
			headlines = append(headlines, h)
		}
	}
	return headlines
}

// NWS API response types.

type alertsResponse struct {
	Features []alertFeature `json:"features"`
}

type alertFeature struct {
	Properties alertProperties `json:"properties"`
}

type alertProperties struct {
	Headline string `json:"headline"`
	Event    string `json:"event"`
}
