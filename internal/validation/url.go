package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// FeedURLValidator checks that a raw string is usable as a feed URL. It
// never rewrites its input: a string that does not already parse as an
// absolute URL is rejected, so no request is ever built from it.
type FeedURLValidator struct{}

func NewFeedURLValidator() *FeedURLValidator {
	return &FeedURLValidator{}
}

// Validate parses raw and requires an absolute URL, meaning a non-empty
// scheme and host. On success it returns the parsed URL for the caller
// to embed in a request.
func (v *FeedURLValidator) Validate(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("URL cannot be empty")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}

	if parsed.Scheme == "" {
		return nil, fmt.Errorf("URL must be absolute (missing scheme): %q", trimmed)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("URL must have a hostname: %q", trimmed)
	}

	return parsed, nil
}
