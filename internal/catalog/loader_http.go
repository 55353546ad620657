// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/restotrack/internal/logging"
	"github.com/tomtom215/restotrack/internal/metrics"
	"github.com/tomtom215/restotrack/internal/models"
)

// maxCatalogBytes caps the size of a remote catalog body.
const maxCatalogBytes = 10 << 20

// HTTPLoader fetches the catalog from a URL through a circuit breaker.
//
// The breaker uses real time for its interval and timeout. Tests exercise it
// through repeated failing requests rather than by controlling the clock.
type HTTPLoader struct {
	url    string
	client *http.Client
	cb     *gobreaker.CircuitBreaker[[]byte]
	name   string
}

// HTTPLoaderOption configures an HTTPLoader.
type HTTPLoaderOption func(*HTTPLoader)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) HTTPLoaderOption {
	return func(l *HTTPLoader) {
		l.client = c
	}
}

// NewHTTPLoader creates a loader for url.
// The circuit opens after 3 consecutive failures and retries a single request after 30s.
func NewHTTPLoader(url string, opts ...HTTPLoaderOption) *HTTPLoader {
	l := &HTTPLoader{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		name:   "catalog-http",
	}
	for _, opt := range opts {
		opt(l)
	}

	metrics.CircuitBreakerState.WithLabelValues(l.name).Set(0)

	l.cb = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        l.name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return l
}

// Source implements Loader.
func (l *HTTPLoader) Source() string {
	return "http"
}

// State returns the current circuit breaker state.
func (l *HTTPLoader) State() gobreaker.State {
	return l.cb.State()
}

// Load implements Loader.
func (l *HTTPLoader) Load(ctx context.Context) (*models.CatalogDocument, error) {
	body, err := l.cb.Execute(func() ([]byte, error) {
		return l.fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(l.name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(l.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(l.name, "success").Inc()
	return decodeDocument(body)
}

func (l *HTTPLoader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", l.url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
