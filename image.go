package clipnote

import (
	"context"
	"net/url"
	"strings"
)

// ImageResolver fetches an image and returns a local reference for it.
// Implementations perform network I/O and persistence; the pipeline
// only depends on the resolution outcome.
type ImageResolver interface {
	// Resolve downloads the image at the absolute URL and returns a
	// local reference named after baseName. An empty string means
	// resolution failed; callers keep the original remote URL instead
	// of failing the extraction.
	Resolve(ctx context.Context, imageURL, baseName string) string
}

// firstPartyMediaHosts is the allowlist of the blog platform's own
// media hosts. Only images served from these hosts are passed to the
// ImageResolver; anything else is third-party tracking or ad imagery
// and is kept as a remote reference.
var firstPartyMediaHosts = []string{
	"blogfiles.naver.net",
	"postfiles.naver.net",
	"blogpfthumb.pstatic.net",
	"ssl.pstatic.net",
	"postfiles.pstatic.net",
}

// IsFirstPartyMedia reports whether an image URL is served from one of
// the platform's own media hosts.
func IsFirstPartyMedia(imageURL string) bool {
	for _, host := range firstPartyMediaHosts {
		if strings.Contains(imageURL, host) {
			return true
		}
	}
	return false
}

// UpgradeImageURL rewrites the platform's size-limiting image query
// parameter to request the full-size rendition, e.g. ?type=w80_blur
// becomes ?type=w966. URLs without the parameter are returned
// unchanged.
func UpgradeImageURL(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return imageURL
	}
	if !strings.Contains(u.Host, "pstatic.net") && !strings.Contains(u.Host, "naver.net") {
		return imageURL
	}
	if !strings.HasPrefix(u.RawQuery, "type=w") && !strings.Contains(u.RawQuery, "&type=w") {
		return imageURL
	}
	u.RawQuery = "type=w966"
	u.Fragment = ""
	return u.String()
}
