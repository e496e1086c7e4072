// Package render holds the HTTP client for the external render backend, the
// service that turns a resolved dataset, geometry, and styling request into a
// PNG raster. The gateway never decodes or paints raster data itself.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/weatherviz/wms-gateway/internal/wms"
)

// ErrUnavailable is returned when the circuit breaker has opened after
// repeated transport failures reaching the backend.
var ErrUnavailable = errors.New("render backend unavailable")

// Result is a completed backend response. Non-200 statuses are surfaced here
// rather than as errors so callers can relay the backend's own error body.
type Result struct {
	StatusCode int
	Body       []byte
}

// Client issues render calls to the backend. Transport failures feed the
// circuit breaker; application-level errors (non-200 responses) do not, since
// they are relayed to the caller verbatim.
type Client struct {
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a render backend client. baseURL is the full render
// endpoint, e.g. "http://weather-processor:8081/api/render".
func NewClient(baseURL string, httpClient *http.Client) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "render-backend",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		circuit:    cb,
	}
}

// Render performs the backend GET for a translated request. The backend
// connection is released on every path. No retries happen here; retry policy,
// if any, belongs to the WMS client.
func (c *Client) Render(ctx context.Context, rr wms.RenderRequest) (*Result, error) {
	u := c.baseURL + "?" + rr.Values().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}
		return &Result{StatusCode: resp.StatusCode, Body: body}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}

	res, ok := result.(*Result)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}

	if res.StatusCode != http.StatusOK {
		log.Printf("render backend returned status %d (request %s, layer=%q file=%q)",
			res.StatusCode, reqID, rr.Layer, rr.File)
	}
	return res, nil
}
