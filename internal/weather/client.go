// Package weather fetches daily forecasts used by the trip packing planner.
package weather

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

	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/service"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Day is one day of forecast data.
type Day struct {
	Date              time.Time
	MaxTempC          float64
	MinTempC          float64
	PrecipitationMM   float64
	PrecipProbability int
}

// Forecast holds the daily outlook for a destination.
type Forecast struct {
	Latitude  float64
	Longitude float64
	Days      []Day
}

// Client fetches forecasts from the Open-Meteo API.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	retryOpts  service.RetryOptions
}

// NewClient creates a forecast client. baseURL overrides the API endpoint
// when non-empty, which tests use to point at a local server.
func NewClient(logger *slog.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		retryOpts: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Second,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Forecast returns up to days of daily forecast for the coordinates.
func (c *Client) Forecast(ctx context.Context, latitude, longitude float64, days int) (*Forecast, error) {
	if days <= 0 || days > 16 {
		return nil, fmt.Errorf("forecast days must be between 1 and 16, got %d", days)
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	query.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max")
	query.Set("forecast_days", strconv.Itoa(days))
	query.Set("timezone", "auto")

	var forecast *Forecast
	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		forecast, fetchErr = c.fetch(ctx, query)
		return fetchErr
	}, c.retryOpts)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched forecast",
		"latitude", latitude,
		"longitude", longitude,
		"days", len(forecast.Days))
	return forecast, nil
}

func (c *Client) fetch(ctx context.Context, query url.Values) (*Forecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrWeatherUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", common.ErrWeatherUnavailable, resp.StatusCode, string(body))
	}

	var payload forecastResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse forecast: %w", err)
	}

	return payload.toForecast()
}

// forecastResponse mirrors the Open-Meteo daily forecast payload.
type forecastResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Daily     struct {
		Time                     []string  `json:"time"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		PrecipitationSum         []float64 `json:"precipitation_sum"`
		PrecipitationProbability []int     `json:"precipitation_probability_max"`
	} `json:"daily"`
}

func (r forecastResponse) toForecast() (*Forecast, error) {
	daily := r.Daily
	n := len(daily.Time)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty forecast", common.ErrWeatherUnavailable)
	}
	if len(daily.TemperatureMax) != n || len(daily.TemperatureMin) != n {
		return nil, fmt.Errorf("%w: mismatched forecast series", common.ErrWeatherUnavailable)
	}

	forecast := &Forecast{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Days:      make([]Day, 0, n),
	}
	for i := 0; i < n; i++ {
		date, err := time.Parse("2006-01-02", daily.Time[i])
		if err != nil {
			return nil, fmt.Errorf("failed to parse forecast date %q: %w", daily.Time[i], err)
		}

		day := Day{
			Date:     date,
			MaxTempC: daily.TemperatureMax[i],
			MinTempC: daily.TemperatureMin[i],
		}
		if i < len(daily.PrecipitationSum) {
			day.PrecipitationMM = daily.PrecipitationSum[i]
		}
		if i < len(daily.PrecipitationProbability) {
			day.PrecipProbability = daily.PrecipitationProbability[i]
		}
		forecast.Days = append(forecast.Days, day)
	}
	return forecast, nil
}
