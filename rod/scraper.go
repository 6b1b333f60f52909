package rod

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Donghyun-349/clipnote"
	"github.com/Donghyun-349/clipnote/youtube"
	"github.com/go-rod/rod/lib/proto"
)

// transcriptButtonRe matches the transcript panel button label in the
// two interface languages the pipeline targets.
const transcriptButtonRe = "스크립트 표시|Show transcript"

// DefaultScrapeTimeout bounds one full scrape: navigation, panel
// opening, and segment collection.
const DefaultScrapeTimeout = 90 * time.Second

// Ensure TranscriptScraper implements clipnote.CaptionSource at compile time.
var _ clipnote.CaptionSource = (*TranscriptScraper)(nil)

// TranscriptScraper reads captions from the watch page's transcript
// panel by driving a real browser. It is the last and most expensive
// acquisition tier; every call launches a fresh browser and releases
// it before returning, success or not.
type TranscriptScraper struct {
	timeout    time.Duration
	cookiePath string
}

// NewTranscriptScraper creates a TranscriptScraper from a caption
// configuration.
func NewTranscriptScraper(cfg clipnote.CaptionConfig) *TranscriptScraper {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultScrapeTimeout
	}
	return &TranscriptScraper{timeout: timeout, cookiePath: cfg.CookiePath}
}

// Captions opens the watch page, expands the transcript panel, and
// collects its timed segments. Returns ENOCAPTIONS when the page
// offers no transcript.
func (s *TranscriptScraper) Captions(ctx context.Context, videoID string) ([]clipnote.Cue, error) {
	sess, err := newSession()
	if err != nil {
		return nil, clipnote.Errorf(clipnote.EUNAVAILABLE, "browser unavailable: %v", err)
	}
	defer sess.close()

	if s.cookiePath != "" {
		if cookies, err := youtube.ParseCookieFile(s.cookiePath); err == nil {
			_ = sess.browser.SetCookies(cookieParams(cookies))
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	page, err := sess.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)

	if err := page.Navigate("https://www.youtube.com/watch?v=" + videoID); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	// The transcript button hides inside the collapsed description.
	if expand, err := page.Timeout(5 * time.Second).Element("tp-yt-paper-button#expand"); err == nil {
		_ = expand.Click(proto.InputMouseButtonLeft, 1)
	}

	button, err := page.ElementR("button", transcriptButtonRe)
	if err != nil {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "no transcript panel for %s", videoID)
	}
	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "transcript panel did not open: %v", err)
	}

	// Wait for the panel to render its first segment.
	if _, err := page.Element("ytd-transcript-segment-renderer"); err != nil {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "transcript panel did not render: %v", err)
	}

	segments, err := page.Elements("ytd-transcript-segment-renderer")
	if err != nil {
		return nil, err
	}

	var cues []clipnote.Cue
	for _, segment := range segments {
		tsEl, err := segment.Element(".segment-timestamp")
		if err != nil {
			continue
		}
		textEl, err := segment.Element(".segment-text")
		if err != nil {
			continue
		}
		ts, err := tsEl.Text()
		if err != nil {
			continue
		}
		text, err := textEl.Text()
		if err != nil {
			continue
		}
		start, ok := ParseSegmentTimestamp(ts)
		text = strings.Join(strings.Fields(text), " ")
		if !ok || text == "" {
			continue
		}
		cues = append(cues, clipnote.Cue{Start: start, Text: text})
	}
	return cues, nil
}

// ParseSegmentTimestamp converts a panel timestamp like "0:03",
// "12:34", or "1:02:03" to elapsed seconds.
func ParseSegmentTimestamp(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// cookieParams converts parsed cookies to the browser protocol form.
func cookieParams(cookies []*http.Cookie) []*proto.NetworkCookieParam {
	params := make([]*proto.NetworkCookieParam, 0, len(cookies))
	for _, c := range cookies {
		params = append(params, &proto.NetworkCookieParam{
			Name:   c.Name,
			Value:  c.Value,
			Domain: c.Domain,
			Path:   c.Path,
		})
	}
	return params
}
