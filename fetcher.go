package clipnote

import "context"

// Fetcher retrieves a page or document body from a URL.
type Fetcher interface {
	// Fetch performs a GET with a fixed user agent and bounded timeout
	// and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
