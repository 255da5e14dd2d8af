package sitesearch

import "context"

// Fetcher retrieves the raw HTML of a URL.
type Fetcher interface {
	// Fetch performs at most one request for url and returns the body.
	// Network errors, timeouts, and non-2xx statuses are returned as errors.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
