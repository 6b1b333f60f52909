package clipnote

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Cue is one timed caption entry as produced by a captioning system.
type Cue struct {
	// Start is the cue's elapsed time in whole seconds.
	Start int

	// Text is the cue's caption text with markup stripped.
	Text string
}

// Chunk is one or more cues merged into a readable paragraph.
type Chunk struct {
	// Start is the chunk's start label in HH:MM:SS form.
	Start string

	// Text is the joined cue text.
	Text string
}

// Markdown renders the chunk as a timestamped paragraph.
func (c Chunk) Markdown() string {
	return fmt.Sprintf("[%s] %s", c.Start, c.Text)
}

// CaptionSource retrieves raw timed captions for a video. Acquisition
// tiers (captions API, downloader tool, browser automation) each
// implement this interface; a tier returning an empty cue list or an
// error is treated as a failed tier, never as a fatal error.
type CaptionSource interface {
	Captions(ctx context.Context, videoID string) ([]Cue, error)
}

// MetadataProvider retrieves video metadata independently of captions.
type MetadataProvider interface {
	Metadata(ctx context.Context, videoID string) (*VideoMetadata, error)
}

// CaptionConfig carries the small, fixed set of options every caption
// tier is constructed with. Cookie and language lookups happen once at
// construction, never mid-algorithm.
type CaptionConfig struct {
	// Languages is the caption language preference order; the first
	// available track wins.
	Languages []string

	// CookiePath is an optional Netscape-format cookie file used to
	// access cookie-gated captions.
	CookiePath string

	// Timeout bounds each network or navigation operation.
	Timeout time.Duration
}

// DefaultLanguages is the caption language preference order used when
// none is configured.
var DefaultLanguages = []string{"ko", "en"}

// cookieEnvVar names the environment variable holding the cookie file
// path. A conventional local file name is the fallback.
const (
	cookieEnvVar   = "YOUTUBE_COOKIES_PATH"
	cookieFileName = "cookies.txt"
)

// DefaultCookiePath resolves the cookie file path from the environment,
// falling back to a conventional local file. Returns an empty string
// when neither exists.
func DefaultCookiePath() string {
	if path := os.Getenv(cookieEnvVar); path != "" {
		return path
	}
	if _, err := os.Stat(cookieFileName); err == nil {
		return cookieFileName
	}
	return ""
}

// FormatTimestamp renders elapsed seconds as HH:MM:SS.
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
