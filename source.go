package clipnote

import (
	"net/url"
	"regexp"
	"strings"
)

// SourceKind identifies which extraction path a URL is dispatched to.
type SourceKind string

// SourceKind values. Unknown hosts fall through to SourceGeneric.
const (
	SourceVideo   SourceKind = "video"
	SourceBlog    SourceKind = "blog"
	SourceGeneric SourceKind = "generic"
)

// Source is a classified extraction request URL.
type Source struct {
	// URL is the input URL after host normalization (the mobile blog
	// host is rewritten to its canonical desktop host).
	URL string

	// Kind selects the extraction path.
	Kind SourceKind
}

// Hosts recognized by the classifier.
const (
	blogHost       = "blog.naver.com"
	mobileBlogHost = "m.blog.naver.com"
)

var videoHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

// ClassifySource parses and classifies a raw URL. It has no side
// effects and fails only when the input cannot be parsed as a URL at
// all; any unrecognized host classifies as SourceGeneric.
func ClassifySource(rawURL string) (*Source, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, Errorf(EINVALID, "cannot parse URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, Errorf(EINVALID, "URL %q has no scheme or host", rawURL)
	}

	host := strings.ToLower(u.Hostname())

	if videoHosts[host] {
		return &Source{URL: u.String(), Kind: SourceVideo}, nil
	}

	if host == blogHost || host == mobileBlogHost {
		if host == mobileBlogHost {
			u.Host = blogHost
		}
		return &Source{URL: u.String(), Kind: SourceBlog}, nil
	}

	return &Source{URL: u.String(), Kind: SourceGeneric}, nil
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID returns the 11-character video ID from a video URL.
// An unrecognized ID format is an unrecoverable input error.
func ExtractVideoID(rawURL string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", Errorf(EINVALID, "no video ID found in URL %q", rawURL)
}
