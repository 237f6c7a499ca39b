package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/weather-widget-service/internal/domain"
	"github.com/couchcryptid/weather-widget-service/internal/observability"
)

// DefaultBaseURL is the production weatherapi.com endpoint root.
const DefaultBaseURL = "https://api.weatherapi.com/v1"

// maxErrorBody caps how much of a non-200 body is kept for diagnostics.
const maxErrorBody = 512

// errIncomplete marks a 200 response that lacks a field the widget needs.
var errIncomplete = errors.New("incomplete response")

// Client implements domain.Provider using the weatherapi.com current
// conditions endpoint.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a weatherapi.com client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Configured reports whether the client has an API key.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// CurrentWeather fetches current conditions for a free-text location.
func (c *Client) CurrentWeather(ctx context.Context, location string) (domain.WeatherRecord, error) {
	params := url.Values{
		"key": {c.apiKey},
		"q":   {location},
	}
	fullURL := c.baseURL + "/current.json?" + params.Encode()

	start := time.Now()
	rec, outcome, err := c.doRequest(ctx, fullURL)
	c.metrics.ProviderAPIDuration.Observe(time.Since(start).Seconds())
	c.metrics.ProviderRequests.WithLabelValues(outcome).Inc()

	if err != nil {
		c.logger.Debug("weather provider request failed", "location", location, "outcome", outcome, "error", err)
		return domain.WeatherRecord{}, err
	}
	return rec, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (domain.WeatherRecord, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.WeatherRecord{}, "network_error", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WeatherRecord{}, "network_error", fmt.Errorf("current weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.WeatherRecord{}, "http_error", fmt.Errorf("weatherapi error: status %d: %s", resp.StatusCode, body)
	}

	var apiResp response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return domain.WeatherRecord{}, "decode_error", fmt.Errorf("decode response: %w", err)
	}

	rec, err := apiResp.toRecord()
	if err != nil {
		return domain.WeatherRecord{}, "decode_error", err
	}
	return rec, "success", nil
}

// weatherapi.com response types. Pointers distinguish a missing field from
// its zero value: 0°C is a valid reading.

type response struct {
	Current  *current      `json:"current"`
	Location *locationInfo `json:"location"`
}

type current struct {
	TempC     *float64   `json:"temp_c"`
	Condition *condition `json:"condition"`
}

type condition struct {
	Text string `json:"text"`
}

type locationInfo struct {
	Name string `json:"name"`
}

func (r response) toRecord() (domain.WeatherRecord, error) {
	switch {
	case r.Current == nil:
		return domain.WeatherRecord{}, fmt.Errorf("%w: missing current", errIncomplete)
	case r.Current.TempC == nil:
		return domain.WeatherRecord{}, fmt.Errorf("%w: missing current.temp_c", errIncomplete)
	case r.Current.Condition == nil || r.Current.Condition.Text == "":
		return domain.WeatherRecord{}, fmt.Errorf("%w: missing current.condition.text", errIncomplete)
	case r.Location == nil || r.Location.Name == "":
		return domain.WeatherRecord{}, fmt.Errorf("%w: missing location.name", errIncomplete)
	}
	return domain.WeatherRecord{
		Temperature: *r.Current.TempC,
		Condition:   r.Current.Condition.Text,
		Location:    r.Location.Name,
		Unit:        domain.UnitCelsius,
	}, nil
}
