// Package vpic is a client for the NHTSA vPIC vehicles API.
package vpic

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/parts-pile/vehicle-filter/vehicle"
)

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("network response was not ok (status %d)", e.StatusCode)
}

// Config controls Client behavior.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables throttling
	RateBurst int

	// TracerProvider records a client span per request. Nil uses the global
	// provider.
	TracerProvider trace.TracerProvider
}

// Client fetches makes and models. It is safe for concurrent use.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a Client with a traced transport.
func NewClient(cfg Config) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	var opts []otelhttp.Option
	if cfg.TracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(cfg.TracerProvider))
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport, opts...),
		},
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

type response[T any] struct {
	Results []T `json:"Results"`
}

// MakesPath is the path listing every car make.
func MakesPath() string {
	return "/GetMakesForVehicleType/car?format=json"
}

// ModelsPath is the path listing the models of a make in a model year.
func ModelsPath(makeID, year string) string {
	return fmt.Sprintf("/GetModelsForMakeIdYear/makeId/%s/modelyear/%s?format=json",
		url.PathEscape(makeID), url.PathEscape(year))
}

// GetMakes fetches every make for vehicle type "car".
func (c *Client) GetMakes(ctx context.Context) ([]vehicle.Make, error) {
	makes, err := get[vehicle.Make](ctx, c, MakesPath())
	if err != nil {
		return nil, fmt.Errorf("fetching makes: %w", err)
	}
	return makes, nil
}

// GetModels fetches the models for makeID in year. An absent or empty
// Results array is an empty list, not an error.
func (c *Client) GetModels(ctx context.Context, makeID, year string) ([]vehicle.Model, error) {
	models, err := get[vehicle.Model](ctx, c, ModelsPath(makeID, year))
	if err != nil {
		return nil, fmt.Errorf("fetching models for make %s year %s: %w", makeID, year, err)
	}
	return models, nil
}

func get[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[vpic] GET %s -> %d in %v", path, resp.StatusCode, time.Since(start))
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: u}
	}

	var r response[T]
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if r.Results == nil {
		r.Results = []T{}
	}
	return r.Results, nil
}
