package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultUserAgent = "shapemap"

// HTTPDoer executes HTTP requests. *http.Client satisfies it; tests inject
// their own.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches GeoJSON documents over HTTP.
type Client struct {
	HTTP      HTTPDoer
	UserAgent string
}

// NewClient returns a client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: defaultUserAgent,
	}
}

// Fetch retrieves a GeoJSON document and returns it as a source named
// after the URL path.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed creating GET request: %w", err)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/geo+json, application/json")

	doer := c.HTTP
	if doer == nil {
		doer = http.DefaultClient
	}
	res, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GET request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", res.StatusCode, rawURL)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response body: %w", err)
	}
	shapes, err := ParseGeoJSON(body)
	if err != nil {
		return nil, err
	}
	return fromShapes(sourceNameFor(rawURL), shapes)
}

func sourceNameFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host + u.Path
}
