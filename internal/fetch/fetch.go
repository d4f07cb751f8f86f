// Package fetch performs plain HTTP GET requests for remote corpus sources.
// Every source gets its own circuit breaker so that a failing endpoint stops
// being hammered after a few consecutive errors.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/quintus/internal/logging"
)

const (
	defaultTimeout = 60 * time.Second
	// Responses above this size are rejected
	defaultMaxBytes = 64 * 1024 * 1024
	// Consecutive failures before the breaker opens
	tripAfter = 3
)

// StatusError is returned when a server answers with a non-2xx status.
type StatusError struct {
	Source  string
	URL     string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s returned status %d", e.Source, e.URL, e.Code)
	}
	return fmt.Sprintf("%s: %s returned status %d: %s", e.Source, e.URL, e.Code, e.Message)
}

// ErrTooLarge is returned when a body exceeds the configured limit
var ErrTooLarge = errors.New("response body too large")

// Options configures a Getter
type Options struct {
	Source     string        // Name used in logs, errors and breaker state
	Timeout    time.Duration // Per-request timeout (0 = default)
	MaxBytes   int64         // Body size limit (0 = default)
	HTTPClient *http.Client  // Optional client; Timeout is ignored when set
}

// Getter issues GET requests through a circuit breaker
type Getter struct {
	source   string
	client   *http.Client
	maxBytes int64
	breaker  *gobreaker.CircuitBreaker
}

// NewGetter creates a Getter for one remote source
func NewGetter(opts Options) *Getter {
	if opts.Source == "" {
		opts.Source = "http"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = defaultMaxBytes
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	source := opts.Source
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        source,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn("circuit breaker state change", "source", name, "from", from.String(), "to", to.String())
		},
	})

	return &Getter{
		source:   source,
		client:   client,
		maxBytes: opts.MaxBytes,
		breaker:  breaker,
	}
}

// Get fetches url and returns the full body. A non-2xx answer yields a
// *StatusError; an open breaker yields gobreaker.ErrOpenState.
func (g *Getter) Get(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.get(ctx, url)
	})
	if err != nil {
		return nil, err
	}

	body := result.([]byte)
	logging.Fetch(ctx, g.source, url, http.StatusOK, int64(len(body)), time.Since(start))
	return body, nil
}

func (g *Getter) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml, application/json;q=0.9, */*;q=0.8")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", g.source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{
			Source:  g.source,
			URL:     url,
			Code:    resp.StatusCode,
			Message: string(msg),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", g.source, err)
	}
	if int64(len(body)) > g.maxBytes {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", g.source, ErrTooLarge, g.maxBytes)
	}
	return body, nil
}
