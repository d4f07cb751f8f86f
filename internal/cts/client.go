package cts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/snonux/quintus/internal"
	"codeberg.org/snonux/quintus/internal/fetch"
	"codeberg.org/snonux/quintus/internal/logging"
)

// DefaultEndpoint is the Scaife CTS API; {urn} is replaced by the text URN
const DefaultEndpoint = "https://scaife.perseus.org/library/{urn}/cts-api-xml/"

// DefaultURN identifies the Posthomerica in the Perseus Greek corpus
const DefaultURN = "urn:cts:greekLit:tlg2046.tlg001.perseus-grc2"

// StatusError is returned when the CTS server answers with a non-2xx status
type StatusError = fetch.StatusError

// Config holds the CTS client configuration
type Config struct {
	Endpoint string        // URL template containing {urn}
	CacheDir string        // Directory for downloaded XML (empty disables caching)
	Timeout  time.Duration // Request timeout
}

// Client retrieves passages from a CTS endpoint
type Client struct {
	endpoint string
	cacheDir string
	getter   *fetch.Getter
}

// NewClient creates a new CTS client
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		cacheDir: config.CacheDir,
		getter:   fetch.NewGetter(fetch.Options{Source: "cts", Timeout: config.Timeout}),
	}
}

// URL returns the request URL for urn
func (c *Client) URL(urn string) string {
	return strings.ReplaceAll(c.endpoint, "{urn}", urn)
}

// CachePath returns where the XML for urn is cached, or "" without a cache
func (c *Client) CachePath(urn string) string {
	if c.cacheDir == "" {
		return ""
	}
	return filepath.Join(c.cacheDir, internal.SanitizeFilename(urn)+".xml")
}

// Fetch retrieves and parses the text identified by urn. A cached copy is
// used when present; a fresh download is written to the cache.
func (c *Client) Fetch(ctx context.Context, urn string) ([]Line, error) {
	if urn == "" {
		return nil, errors.New("URN cannot be empty")
	}

	data, err := c.raw(ctx, urn)
	if err != nil {
		return nil, err
	}

	lines, err := ParseTEI(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", urn, err)
	}
	logging.DebugContext(ctx, "parsed CTS passage", "urn", urn, "lines", len(lines))
	return lines, nil
}

func (c *Client) raw(ctx context.Context, urn string) ([]byte, error) {
	cachePath := c.CachePath(urn)
	if cachePath != "" {
		data, err := os.ReadFile(cachePath)
		if err == nil {
			logging.InfoContext(ctx, "using cached text", "urn", urn, "path", cachePath)
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read cache: %w", err)
		}
	}

	data, err := c.getter.Get(ctx, c.URL(urn))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s: %w", urn, err)
	}

	if cachePath != "" {
		if err := os.MkdirAll(c.cacheDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		if err := os.WriteFile(cachePath, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write cache: %w", err)
		}
	}
	return data, nil
}
