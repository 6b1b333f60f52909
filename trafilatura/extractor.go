// Package trafilatura implements the primary article extraction tier
// using the go-trafilatura content extractor.
package trafilatura

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Donghyun-349/clipnote"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements clipnote.ArticleExtractor at compile time.
var _ clipnote.ArticleExtractor = (*Extractor)(nil)

// minArticleLen is the minimum markdown length, in runes, below which
// an extraction is considered failed so a later tier can take over.
const minArticleLen = 100

// Extractor wraps go-trafilatura to extract the main content of an
// arbitrary article page and convert it to markdown.
type Extractor struct {
	fetcher clipnote.Fetcher
	conv    clipnote.Converter
	images  clipnote.ImageResolver
}

// NewExtractor creates a new Extractor.
func NewExtractor(fetcher clipnote.Fetcher, conv clipnote.Converter, images clipnote.ImageResolver) *Extractor {
	return &Extractor{fetcher: fetcher, conv: conv, images: images}
}

// Extract fetches the page and returns its main content as markdown.
// Returns ENOTFOUND when no main content can be located and ETOOSHORT
// when the extracted content is below the minimum length.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*clipnote.Article, error) {
	body, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	if strings.TrimSpace(body) == "" {
		return nil, clipnote.Errorf(clipnote.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		Focus:          trafilatura.FavorRecall,
		IncludeImages:  true,
	}
	if parsed, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = parsed
	}

	result, err := trafilatura.Extract(strings.NewReader(body), opts)
	if err != nil {
		return nil, clipnote.Errorf(clipnote.ENOTFOUND, "main content extraction failed: %v", err)
	}
	if result.ContentNode == nil {
		return nil, clipnote.Errorf(clipnote.ENOTFOUND, "no main content found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	markdown, err := e.conv.Convert(contentHTML)
	if err != nil {
		return nil, err
	}
	markdown = strings.TrimSpace(markdown)

	if utf8.RuneCountInString(markdown) < minArticleLen {
		return nil, clipnote.Errorf(clipnote.ETOOSHORT, "extracted content too short (%d chars)", utf8.RuneCountInString(markdown))
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = "Untitled"
	}

	return &clipnote.Article{
		Title:    title,
		Markdown: e.resolveImageRefs(ctx, markdown, title),
		HTML:     contentHTML,
	}, nil
}

// imageRefRe matches markdown image references embedded in converted
// content.
var imageRefRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// resolveImageRefs passes first-party image references through the
// resolver, keeping the remote URL when resolution fails or the host
// is third-party.
func (e *Extractor) resolveImageRefs(ctx context.Context, markdown, title string) string {
	if e.images == nil {
		return markdown
	}
	count := 0
	return imageRefRe.ReplaceAllStringFunc(markdown, func(match string) string {
		groups := imageRefRe.FindStringSubmatch(match)
		alt, src := groups[1], groups[2]
		if !clipnote.IsFirstPartyMedia(src) {
			return match
		}
		count++
		ref := e.images.Resolve(ctx, clipnote.UpgradeImageURL(src), fmt.Sprintf("%s_img_%d", title, count))
		if ref == "" {
			return match
		}
		return fmt.Sprintf("![%s](%s)", alt, ref)
	})
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
