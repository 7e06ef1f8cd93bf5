// Package weatherapi looks up current conditions on WeatherAPI.com.
package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"orders/internal/pkg/metrics"
)

const DefaultBaseURL = "https://api.weatherapi.com/v1"

var (
	ErrNotConfigured = errors.New("weather api key is not configured")
	ErrIncomplete    = errors.New("weather response is missing data")
)

// Client implements ports.WeatherProvider. Timeouts are left to the caller's context.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, m *metrics.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if m == nil {
		m = metrics.NewUnregistered()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		metrics:    m,
	}
}

type currentResponse struct {
	Location *struct {
		Name string `json:"name"`
	} `json:"location"`
	Current *struct {
		TempC     *float64 `json:"temp_c"`
		Condition *struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// Describe returns e.g. "Weather in Oslo: 4.5°C, Light rain".
func (c *Client) Describe(ctx context.Context, city string) (string, error) {
	summary, err := c.describe(ctx, city)
	if err != nil {
		c.metrics.WeatherLookups.WithLabelValues("error").Inc()
		return "", err
	}

	c.metrics.WeatherLookups.WithLabelValues("ok").Inc()
	return summary, nil
}

func (c *Client) describe(ctx context.Context, city string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/current.json?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("weather api responded with status %d", resp.StatusCode)
	}

	var body currentResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode weather response: %w", err)
	}

	if body.Location == nil || body.Current == nil || body.Current.TempC == nil || body.Current.Condition == nil {
		return "", ErrIncomplete
	}

	return fmt.Sprintf("Weather in %s: %.1f°C, %s",
		body.Location.Name, *body.Current.TempC, body.Current.Condition.Text), nil
}
