package feed

import "fmt"

// ErrorKind classifies a failed fetch.
type ErrorKind int

const (
	// KindTransport covers connection, timeout and HTTP-status failures.
	KindTransport ErrorKind = iota
	// KindDecode covers a body that could not be parsed as a feed.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is the typed failure of Fetcher.Fetch. Callers branch on
// Kind via errors.As; the underlying cause stays reachable through
// Unwrap.
type FetchError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %s error: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
