package speeches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"codeberg.org/snonux/quintus/internal/fetch"
	"codeberg.org/snonux/quintus/internal/logging"
)

// DefaultBaseURL is the DICES REST API
const DefaultBaseURL = "https://dices.ancient-greek.net/api"

// DefaultAuthor selects the speeches of the Posthomerica
const DefaultAuthor = "Quintus"

// Upper bound on followed pages, guards against pagination loops
const maxPages = 1000

// StatusError is returned when DICES answers with a non-2xx status
type StatusError = fetch.StatusError

// page is one page of a paginated DICES listing
type page struct {
	Count   int      `json:"count"`
	Next    *string  `json:"next"`
	Results []Speech `json:"results"`
}

// Client queries the DICES speech database
type Client struct {
	baseURL string
	getter  *fetch.Getter
}

// NewClient creates a DICES client; an empty baseURL selects DefaultBaseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		getter:  fetch.NewGetter(fetch.Options{Source: "dices", Timeout: timeout}),
	}
}

// ByAuthor returns every speech attributed to author, following the
// pagination links of the API until the last page.
func (c *Client) ByAuthor(ctx context.Context, author string) ([]Speech, error) {
	if author == "" {
		return nil, errors.New("author cannot be empty")
	}

	params := url.Values{}
	params.Set("author_name", author)
	next := c.baseURL + "/speeches/?" + params.Encode()

	var all []Speech
	for pages := 0; next != ""; pages++ {
		if pages == maxPages {
			return nil, fmt.Errorf("dices: more than %d pages for author %q", maxPages, author)
		}

		body, err := c.getter.Get(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve speeches: %w", err)
		}

		var p page
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("failed to decode speeches: %w", err)
		}
		all = append(all, p.Results...)

		next = ""
		if p.Next != nil {
			next = *p.Next
		}
	}

	logging.InfoContext(ctx, "retrieved speeches", "author", author, "count", len(all))
	return all, nil
}
