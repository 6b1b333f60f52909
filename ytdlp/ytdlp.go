// Package ytdlp shells out to the yt-dlp downloader as the second
// caption acquisition tier. One probe call returns the video's
// metadata and its caption track URLs; caption files themselves are
// fetched over plain HTTP.
package ytdlp

import (
	"context"
	"encoding/json"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/Donghyun-349/clipnote"
)

// DefaultBinary is the downloader executable looked up on PATH.
const DefaultBinary = "yt-dlp"

// maxDescriptionLen bounds the description carried into metadata, in
// runes.
const maxDescriptionLen = 500

// Ensure Client implements the acquisition interfaces at compile time.
var (
	_ clipnote.CaptionSource    = (*Client)(nil)
	_ clipnote.MetadataProvider = (*Client)(nil)
)

// runner executes the downloader and returns its stdout. Injectable
// for tests.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client probes videos with yt-dlp.
type Client struct {
	binary     string
	languages  []string
	cookiePath string
	timeout    time.Duration
	fetcher    clipnote.Fetcher
	run        runner
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the downloader executable path.
func WithBinary(path string) Option {
	return func(c *Client) {
		c.binary = path
	}
}

// WithRunner overrides process execution. Used by tests.
func WithRunner(run runner) Option {
	return func(c *Client) {
		c.run = run
	}
}

// NewClient creates a Client from a caption configuration. The fetcher
// downloads caption files referenced by the probe output.
func NewClient(cfg clipnote.CaptionConfig, fetcher clipnote.Fetcher, opts ...Option) *Client {
	languages := cfg.Languages
	if len(languages) == 0 {
		languages = clipnote.DefaultLanguages
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	c := &Client{
		binary:     DefaultBinary,
		languages:  languages,
		cookiePath: cfg.CookiePath,
		timeout:    timeout,
		fetcher:    fetcher,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// captionEntry is one downloadable caption rendition.
type captionEntry struct {
	URL string `json:"url"`
	Ext string `json:"ext"`
}

// probeResult is the subset of the downloader's JSON dump we use.
type probeResult struct {
	Title             string                    `json:"title"`
	Channel           string                    `json:"channel"`
	Uploader          string                    `json:"uploader"`
	UploadDate        string                    `json:"upload_date"`
	Description       string                    `json:"description"`
	Thumbnail         string                    `json:"thumbnail"`
	Subtitles         map[string][]captionEntry `json:"subtitles"`
	AutomaticCaptions map[string][]captionEntry `json:"automatic_captions"`
}

// probe runs a metadata-only dump for the video.
func (c *Client) probe(ctx context.Context, videoID string) (*probeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := []string{"-J", "--skip-download"}
	if c.cookiePath != "" {
		args = append(args, "--cookies", c.cookiePath)
	}
	args = append(args, "https://www.youtube.com/watch?v="+videoID)

	out, err := c.run(ctx, c.binary, args...)
	if err != nil {
		return nil, clipnote.Errorf(clipnote.EUNAVAILABLE, "downloader probe failed: %v", err)
	}

	var result probeResult
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, clipnote.Errorf(clipnote.EUNAVAILABLE, "malformed downloader output: %v", err)
	}
	return &result, nil
}

// Captions probes the video and fetches the best caption track:
// authored subtitles in language preference order, then automatic
// captions. Returns ENOCAPTIONS when the video has neither.
func (c *Client) Captions(ctx context.Context, videoID string) ([]clipnote.Cue, error) {
	result, err := c.probe(ctx, videoID)
	if err != nil {
		return nil, err
	}

	entry := pickEntry(result.Subtitles, c.languages)
	if entry == nil {
		entry = pickEntry(result.AutomaticCaptions, c.languages)
	}
	if entry == nil {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "no caption track in preferred languages for %s", videoID)
	}

	body, err := c.fetcher.Fetch(ctx, entry.URL)
	if err != nil {
		return nil, err
	}
	return clipnote.ParseWebVTT(body), nil
}

// pickEntry returns the best VTT rendition for the language preference
// order. Language keys may carry variant suffixes like "en-orig"; an
// exact key wins over a variant.
func pickEntry(tracks map[string][]captionEntry, languages []string) *captionEntry {
	for _, lang := range languages {
		if entry := bestEntry(tracks[lang]); entry != nil {
			return entry
		}
		keys := make([]string, 0, len(tracks))
		for key := range tracks {
			if strings.HasPrefix(key, lang+"-") {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			if entry := bestEntry(tracks[key]); entry != nil {
				return entry
			}
		}
	}
	return nil
}

// bestEntry prefers the VTT rendition of a track.
func bestEntry(entries []captionEntry) *captionEntry {
	for i := range entries {
		if entries[i].Ext == "vtt" && entries[i].URL != "" {
			return &entries[i]
		}
	}
	for i := range entries {
		if entries[i].URL != "" {
			return &entries[i]
		}
	}
	return nil
}

// Metadata probes the video and maps the dump to metadata. The
// description is truncated; full descriptions run to many kilobytes.
func (c *Client) Metadata(ctx context.Context, videoID string) (*clipnote.VideoMetadata, error) {
	result, err := c.probe(ctx, videoID)
	if err != nil {
		return nil, err
	}

	channel := result.Channel
	if channel == "" {
		channel = result.Uploader
	}

	return &clipnote.VideoMetadata{
		Title:        strings.TrimSpace(result.Title),
		Channel:      strings.TrimSpace(channel),
		UploadDate:   formatUploadDate(result.UploadDate),
		Description:  truncate(strings.TrimSpace(result.Description), maxDescriptionLen),
		ThumbnailURL: result.Thumbnail,
	}, nil
}

// formatUploadDate converts the downloader's YYYYMMDD form to
// YYYY-MM-DD, passing anything else through unchanged.
func formatUploadDate(date string) string {
	if len(date) != 8 {
		return date
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:]
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
