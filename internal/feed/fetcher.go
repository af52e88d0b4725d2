package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultUserAgent = "PodcastsTUI/1.0 (podcast client; github.com/SaxyPandaBear/PodcastsTUI)"
	defaultTimeout   = 30 * time.Second
)

// Fetcher retrieves a feed document over HTTP and decodes it into a
// Channel. Every call hits the network; nothing is cached.
type Fetcher struct {
	client    *http.Client
	parser    *Parser
	userAgent string
}

func NewFetcher() *Fetcher {
	return NewFetcherWithClient(&http.Client{
		Timeout: defaultTimeout,
	})
}

// NewFetcherWithClient builds a Fetcher around a caller-supplied HTTP
// client. The client's own timeout is the only deadline applied to a
// fetch.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{
		client:    client,
		parser:    NewParser(),
		userAgent: defaultUserAgent,
	}
}

// SetUserAgent overrides the User-Agent header sent with every fetch.
// An empty value keeps the default.
func (f *Fetcher) SetUserAgent(ua string) {
	if ua != "" {
		f.userAgent = ua
	}
}

// Fetch performs one GET of rawURL and decodes the body. Failures are
// reported as *FetchError: KindTransport for request, connection and
// HTTP-status failures, KindDecode for a body that is not a feed.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Channel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: rawURL, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &FetchError{Kind: KindTransport, URL: rawURL, Err: fmt.Errorf("HTTP error: %d", resp.StatusCode)}
	}

	channel, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, URL: rawURL, Err: err}
	}

	return channel, nil
}
