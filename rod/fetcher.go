package rod

import (
	"context"

	"github.com/Donghyun-349/clipnote"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements clipnote.Fetcher at compile time.
var _ clipnote.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Unlike the plain HTTP fetcher it executes JavaScript, so
// it handles script-rendered pages at the cost of a browser process.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	session *session
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	s, err := newSession()
	if err != nil {
		return nil, err
	}
	return &Fetcher{session: s}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.session.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.session.close()
}
