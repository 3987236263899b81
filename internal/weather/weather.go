// Package weather fetches the ambient conditions at the time of a run
// from the OpenWeatherMap current weather API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/larpix/pedstats/internal/httpclientx"
	"github.com/larpix/pedstats/internal/model"
	"github.com/larpix/pedstats/internal/version"
)

// DefaultBaseURL is the default current weather endpoint.
const DefaultBaseURL = "http://api.openweathermap.org/data/2.5/weather"

// DefaultCity is the default city whose weather we fetch.
const DefaultCity = "Philadelphia"

// DefaultTimeout is the default timeout for fetching the weather.
const DefaultTimeout = 10 * time.Second

// Client is a client for the current weather API. The zero value is
// invalid; please, construct using [NewClient].
type Client struct {
	// APIKey is the MANDATORY API key.
	APIKey string

	// BaseURL is the MANDATORY API endpoint.
	BaseURL string

	// HTTPClient is the MANDATORY HTTP client.
	HTTPClient model.HTTPClient

	// Logger is the MANDATORY logger.
	Logger model.Logger

	// Timeout is the MANDATORY maximum time we're allowed to spend
	// fetching the weather, including reading the body.
	Timeout time.Duration

	// UserAgent is the MANDATORY User-Agent header.
	UserAgent string
}

// NewClient creates a new [*Client] using the default endpoint and timeout.
func NewClient(apiKey string, logger model.Logger) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Logger:     model.ValidLoggerOrDefault(logger),
		Timeout:    DefaultTimeout,
		UserAgent:  "pedstats/" + version.Version,
	}
}

// apiResponse is the subset of the API response we care about.
type apiResponse struct {
	// Cod is a number on success (e.g., 200) and a string on
	// failure (e.g., "404"), so we keep it raw.
	Cod json.RawMessage `json:"cod"`

	Message string `json:"message"`

	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
}

// statusCode returns the value of the cod field as a string.
func (r *apiResponse) statusCode() string {
	return strings.Trim(strings.TrimSpace(string(r.Cod)), `"`)
}

// FetchCurrentWeather fetches the current temperature and humidity of the
// given city. Every failure, including the expiry of the timeout, is
// reported as an error wrapping [model.ErrWeatherService].
func (c *Client) FetchCurrentWeather(ctx context.Context, city string) (*model.WeatherReading, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", model.ErrWeatherService)
	}

	URL, err := c.endpoint(city)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrWeatherService, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	c.Logger.Debugf("weather: fetching current weather for %s", city)
	resp, err := httpclientx.GetJSON[*apiResponse](ctx, &httpclientx.Config{
		Client:    c.HTTPClient,
		Logger:    c.Logger,
		UserAgent: c.UserAgent,
	}, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrWeatherService, err)
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", model.ErrWeatherService)
	}

	if code := resp.statusCode(); code == "404" {
		return nil, fmt.Errorf("%w: 404 encountered for %q: %s", model.ErrWeatherService, city, resp.Message)
	} else if code != "" && code != "200" {
		return nil, fmt.Errorf("%w: unexpected status %s: %s", model.ErrWeatherService, code, resp.Message)
	}

	if resp.Main == nil || resp.Main.Temp == nil || resp.Main.Humidity == nil {
		return nil, fmt.Errorf("%w: response lacks temperature or humidity", model.ErrWeatherService)
	}

	reading := &model.WeatherReading{
		Temperature: *resp.Main.Temp,
		Humidity:    *resp.Main.Humidity,
	}
	return reading, nil
}

// endpoint returns the URL to fetch the weather of the given city.
func (c *Client) endpoint(city string) (string, error) {
	URL, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", err
	}
	query := URL.Query()
	query.Set("appid", c.APIKey)
	query.Set("q", city)
	URL.RawQuery = query.Encode()
	return URL.String(), nil
}
