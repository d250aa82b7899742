package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/swelljoe/duskgold/internal/config"
	"github.com/swelljoe/duskgold/internal/sun"
)

// ErrLocationNotFound is returned when geocoding yields no match
var ErrLocationNotFound = errors.New("location not found")

// currentFields are the Open-Meteo "current" variables requested
const currentFields = "temperature_2m,apparent_temperature,precipitation,wind_speed_10m,cloud_cover"

// NetworkError reports a transport failure or a non-success status from a
// remote service.
type NetworkError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error: %d: %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s API error: %v", e.Service, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client handles Open-Meteo geocoding and forecast API interactions
type Client struct {
	GeocodingURL string
	ForecastURL  string

	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a new Open-Meteo client
func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{}, logger)
}

// NewClientWithHTTP creates a client on top of an existing *http.Client,
// which lets callers swap the transport.
func NewClientWithHTTP(cfg config.Config, hc *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := resty.NewWithClient(hc).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("api response",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("elapsed", resp.Time()),
			zap.Int("bytes", len(resp.Body())),
		)
		return nil
	})

	return &Client{
		GeocodingURL: cfg.GeocodingURL,
		ForecastURL:  cfg.ForecastURL,
		http:         rc,
		logger:       logger,
	}
}

func (c *Client) get(ctx context.Context, service, endpoint string, params map[string]string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		return nil, &NetworkError{Service: service, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &NetworkError{
			Service:    service,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}

	return resp.Body(), nil
}

// geocodeResponse represents the /v1/search response
type geocodeResponse struct {
	Results []Location `json:"results"`
}

// Geocode resolves a free-text place name to its first match. Display names
// are always requested in English.
func (c *Client) Geocode(ctx context.Context, name string) (*Location, error) {
	data, err := c.get(ctx, "geocoding", c.GeocodingURL, map[string]string{
		"name":     name,
		"count":    "1",
		"language": "en",
		"format":   "json",
	})
	if err != nil {
		return nil, err
	}

	var resp geocodeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &NetworkError{Service: "geocoding", Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	loc := resp.Results[0]
	if _, err := sun.LoadLocation(loc.Timezone); err != nil {
		return nil, fmt.Errorf("geocoding result for %q: %w", name, err)
	}

	c.logger.Debug("geocoded",
		zap.String("query", name),
		zap.String("name", loc.Name),
		zap.String("country", loc.Country),
		zap.Float64("lat", loc.Latitude),
		zap.Float64("lon", loc.Longitude),
		zap.String("timezone", loc.Timezone),
	)
	return &loc, nil
}

// forecastResponse represents the /v1/forecast response
type forecastResponse struct {
	Current *Snapshot `json:"current"`
}

// Current fetches current conditions for a point. A response without a
// "current" object yields an empty snapshot, not an error.
func (c *Client) Current(ctx context.Context, lat, lon float64, tz string) (*Snapshot, error) {
	data, err := c.get(ctx, "forecast", c.ForecastURL, map[string]string{
		"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
		"longitude": strconv.FormatFloat(lon, 'f', -1, 64),
		"current":   currentFields,
		"timezone":  tz,
	})
	if err != nil {
		return nil, err
	}

	var resp forecastResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &NetworkError{Service: "forecast", Err: fmt.Errorf("decode response: %w", err)}
	}

	if resp.Current == nil {
		c.logger.Debug("forecast response has no current block")
		return &Snapshot{}, nil
	}
	return resp.Current, nil
}
