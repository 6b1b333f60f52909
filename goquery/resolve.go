// Package goquery provides CSS-selector based extraction of blog and
// article content: a component-walking parser for the structured blog
// editor's block model, a DOM-walk fallback extractor for arbitrary
// pages, and preparation of an absolute-URL HTML mirror for renderers.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imageSrcAttrs is the candidate source attribute priority: the
// explicit lazy-load attribute first, then the main attribute, then
// alternates.
var imageSrcAttrs = []string{"data-lazy-src", "src", "data-src", "data-original"}

// titleSuffixRe strips the platform's trailing site-name suffix from
// page titles.
var titleSuffixRe = regexp.MustCompile(`\s*:\s*네이버.*$`)

// absoluteURL expands a resource reference against the page's own
// origin. Protocol-relative references become https, root-relative
// references are joined to the base origin, and anything else is
// resolved as a relative reference. Returns empty when the reference
// cannot be made absolute.
func absoluteURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	case strings.HasPrefix(ref, "/"):
		return base.Scheme + "://" + base.Host + ref
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	default:
		parsed, err := url.Parse(ref)
		if err != nil {
			return ""
		}
		return base.ResolveReference(parsed).String()
	}
}

// isHTTP reports whether a resolved reference is an absolute web URL.
func isHTTP(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// firstImageSrc returns the first non-empty candidate source attribute
// of an img element, expanded against the base origin.
func firstImageSrc(base *url.URL, img *goquery.Selection) string {
	for _, attr := range imageSrcAttrs {
		if val, ok := img.Attr(attr); ok && strings.TrimSpace(val) != "" {
			return absoluteURL(base, val)
		}
	}
	return ""
}

// normalizeSpace collapses all whitespace runs in an element's text to
// single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanTitle trims a raw page title and removes the platform suffix.
func cleanTitle(title string) string {
	return strings.TrimSpace(titleSuffixRe.ReplaceAllString(strings.TrimSpace(title), ""))
}
