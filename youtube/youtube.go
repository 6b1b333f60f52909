// Package youtube retrieves video captions and metadata directly from
// the video platform's public endpoints. It is the first and cheapest
// caption acquisition tier: no external tools, no browser.
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Donghyun-349/clipnote"
	clipnotehttp "github.com/Donghyun-349/clipnote/http"
)

// DefaultBaseURL is the watch page origin.
const DefaultBaseURL = "https://www.youtube.com"

// DefaultThumbnailBaseURL is the thumbnail host origin.
const DefaultThumbnailBaseURL = "https://i.ytimg.com"

// Ensure Client implements the acquisition interfaces at compile time.
var (
	_ clipnote.CaptionSource    = (*Client)(nil)
	_ clipnote.MetadataProvider = (*Client)(nil)
)

// Client probes watch pages for caption tracks and video metadata.
type Client struct {
	client       *http.Client
	baseURL      string
	thumbBaseURL string
	languages    []string
	cookieHeader string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the watch page origin. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithThumbnailBaseURL overrides the thumbnail origin. Used by tests.
func WithThumbnailBaseURL(u string) Option {
	return func(c *Client) {
		c.thumbBaseURL = u
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a Client from a caption configuration. A cookie
// file configured there is loaded once; a missing or malformed file is
// not an error, the client simply runs without cookies.
func NewClient(cfg clipnote.CaptionConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	languages := cfg.Languages
	if len(languages) == 0 {
		languages = clipnote.DefaultLanguages
	}

	c := &Client{
		client:       &http.Client{Timeout: timeout},
		baseURL:      DefaultBaseURL,
		thumbBaseURL: DefaultThumbnailBaseURL,
		languages:    languages,
	}
	if cfg.CookiePath != "" {
		if cookies, err := ParseCookieFile(cfg.CookiePath); err == nil {
			c.cookieHeader = cookieHeader(cookies)
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches a URL with the fixed browser user agent and the loaded
// cookies.
func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", clipnotehttp.UserAgent)
	if c.cookieHeader != "" {
		req.Header.Set("Cookie", c.cookieHeader)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// head reports whether a URL answers 200 to a HEAD request.
func (c *Client) head(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", clipnotehttp.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
