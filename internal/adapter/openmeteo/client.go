// Package openmeteo fetches point forecasts from the Open-Meteo API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-net-bot/internal/domain"
)

const (
	defaultBaseURL = "https://api.open-meteo.com"

	hourlyFields = "temperature_2m,apparent_temperature,precipitation_probability," +
		"precipitation,weathercode,wind_speed_10m,wind_gusts_10m"
	dailyFields = "temperature_2m_max,temperature_2m_min,precipitation_sum"
)

// Client fetches point forecasts. One request per region per cycle, no
// retries; a failed fetch degrades to an inline error line upstream.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an Open-Meteo client with a bounded request timeout.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		logger:     logger,
	}
}

// FetchForecast requests the hourly and daily series for one coordinate in
// imperial units and returns the first sample of each as a ForecastRecord.
// Missing series, empty arrays, and null samples map to nil fields.
func (c *Client) FetchForecast(ctx context.Context, lat, lon float64) (domain.ForecastRecord, error) {
	params := url.Values{
		"latitude":           {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":          {strconv.FormatFloat(lon, 'f', -1, 64)},
		"hourly":             {hourlyFields},
		"daily":              {dailyFields},
		"temperature_unit":   {"fahrenheit"},
		"wind_speed_unit":    {"mph"},
		"precipitation_unit": {"inch"},
		"timezone":           {"auto"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return domain.ForecastRecord{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ForecastRecord{}, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ForecastRecord{}, fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
	}

	var fr response
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return domain.ForecastRecord{}, fmt.Errorf("decode forecast: %w", err)
	}

	return fr.record(), nil
}

// Open-Meteo API response types. Series arrays are nullable per sample.

type response struct {
	Hourly hourlySeries `json:"hourly"`
	Daily  dailySeries  `json:"daily"`
}

type hourlySeries struct {
	Temperature []*float64 `json:"temperature_2m"`
	FeelsLike   []*float64 `json:"apparent_temperature"`
	PrecipProb  []*float64 `json:"precipitation_probability"`
	Precip      []*float64 `json:"precipitation"`
	WindSpeed   []*float64 `json:"wind_speed_10m"`
	WindGusts   []*float64 `json:"wind_gusts_10m"`
}

type dailySeries struct {
	TempMax   []*float64 `json:"temperature_2m_max"`
	TempMin   []*float64 `json:"temperature_2m_min"`
	PrecipSum []*float64 `json:"precipitation_sum"`
}

func (r response) record() domain.ForecastRecord {
	return domain.ForecastRecord{
		CurrentTemp:       first(r.Hourly.Temperature),
		FeelsLike:         first(r.Hourly.FeelsLike),
		WindSpeed:         first(r.Hourly.WindSpeed),
		WindGust:          first(r.Hourly.WindGusts),
		PrecipProbability: first(r.Hourly.PrecipProb),
		PrecipLastHour:    first(r.Hourly.Precip),
		HighToday:         first(r.Daily.TempMax),
		LowToday:          first(r.Daily.TempMin),
		PrecipTotalToday:  first(r.Daily.PrecipSum),
	}
}

func first(samples []*float64) *float64 {
	if len(samples) == 0 {
		return nil
	}
	return samples[0]
}
