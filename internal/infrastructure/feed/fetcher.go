package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"BrightFeed/internal/domain"
	"BrightFeed/internal/ports"
)

// Fetcher retrieves a feed over HTTP and runs it through the parser.
// It performs exactly one request per call: no retries, no caching. A caller
// wanting a deadline sets it through the client timeout or the context.
type Fetcher struct {
	client *http.Client
	parser *Parser
}

var _ ports.FeedSource = (*Fetcher)(nil)

// NewFetcher wires an HTTP client; timeout defaults to 20s when nil.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Fetcher{client: client, parser: NewParser()}
}

// FetchItems issues a GET against the feed URL and streams the body through
// a fresh parse. Failure modes map onto the error taxonomy: a malformed URL
// is ErrInvalidURL, transport failures and non-2xx statuses are ErrNetwork,
// and unrecoverable XML yields a ParseError.
func (f *Fetcher) FetchItems(ctx context.Context, feedURL string) ([]domain.RawItem, error) {
	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, feedURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, feedURL)
	}
	req.Header.Set("User-Agent", "BrightFeed/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %s", ErrNetwork, resp.Status)
	}

	return f.parser.Parse(resp.Body)
}
