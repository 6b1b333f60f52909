package goquery

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Donghyun-349/clipnote"
	"github.com/PuerkitoBio/goquery"
)

// Ensure FallbackExtractor implements clipnote.ArticleExtractor at compile time.
var _ clipnote.ArticleExtractor = (*FallbackExtractor)(nil)

// FallbackExtractor is the last-resort DOM walk: it locates the best
// guess content container, strips non-content tags, and converts
// block-level and heading elements to parts in document order. It is
// deliberately permissive; the noise filter cleans up the duplication
// a naive walk produces.
type FallbackExtractor struct {
	fetcher clipnote.Fetcher
	images  clipnote.ImageResolver
}

// NewFallbackExtractor creates a new FallbackExtractor.
func NewFallbackExtractor(fetcher clipnote.Fetcher, images clipnote.ImageResolver) *FallbackExtractor {
	return &FallbackExtractor{fetcher: fetcher, images: images}
}

// contentClassRe matches class names that conventionally mark an
// article's main container.
var contentClassRe = regexp.MustCompile(`(?i)content|article|post|entry|view|body`)

// nonContentSelector lists tags removed before walking.
const nonContentSelector = "script, style, nav, header, footer, aside"

// minBlockTextLen drops walk fragments shorter than this.
const minBlockTextLen = 3

// Extract refetches the page independently and walks its best-guess
// content container.
func (e *FallbackExtractor) Extract(ctx context.Context, pageURL string) (*clipnote.Article, error) {
	body, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, clipnote.Errorf(clipnote.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, clipnote.Errorf(clipnote.EINVALID, "invalid page URL: %v", err)
	}

	title := cleanTitle(doc.Find("title").First().Text())
	if title == "" {
		title = "Untitled"
	}

	container := findContainer(doc)
	if container.Length() == 0 {
		return nil, clipnote.Errorf(clipnote.ENOTFOUND, "no content container found")
	}

	container.Find(nonContentSelector).Remove()

	parts := walkBlocks(container)
	aux := PrepareContainer(container, base)

	// Images are collected separately and appended to the end of the
	// body as one batch.
	parts = append(parts, resolveContainerImages(ctx, e.images, base, container, title)...)

	return &clipnote.Article{
		Title:    title,
		Markdown: clipnote.RenderParts(parts),
		HTML:     aux,
	}, nil
}

// findContainer picks the content container by priority: the blog
// editor's own containers, then article, main, a class-keyword match,
// then the document body.
func findContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{".se-main-container", "#postViewArea", "article", "main"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}

	var keyword *goquery.Selection
	doc.Find("div[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if class, ok := sel.Attr("class"); ok && contentClassRe.MatchString(class) {
			keyword = sel
			return false
		}
		return true
	})
	if keyword != nil {
		return keyword
	}

	return doc.Find("body").First()
}

// walkBlocks converts block-level and heading elements to text parts
// in document order.
func walkBlocks(container *goquery.Selection) []clipnote.Part {
	var parts []clipnote.Part
	container.Find("p, div, h1, h2, h3, h4, h5, h6, li, blockquote, pre").Each(func(_ int, sel *goquery.Selection) {
		text := normalizeSpace(sel.Text())
		if len(text) <= minBlockTextLen {
			return
		}
		if level := headingLevel(goquery.NodeName(sel)); level > 0 {
			parts = append(parts, clipnote.TextPart{Text: text, Level: level})
			return
		}
		parts = append(parts, clipnote.TextPart{Text: text})
	})
	return parts
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// containerImageURLs collects unique absolute image URLs from a
// container in document order.
func containerImageURLs(base *url.URL, container *goquery.Selection) []string {
	var urls []string
	seen := make(map[string]bool)
	container.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := firstImageSrc(base, img)
		if !isHTTP(src) || seen[src] {
			return
		}
		seen[src] = true
		urls = append(urls, src)
	})
	return urls
}

// resolveContainerImages resolves a container's images and returns
// them as parts, degrading to the remote URL when resolution fails.
func resolveContainerImages(ctx context.Context, images clipnote.ImageResolver, base *url.URL, container *goquery.Selection, title string) []clipnote.Part {
	var parts []clipnote.Part
	for i, src := range containerImageURLs(base, container) {
		ref := ""
		if images != nil {
			ref = images.Resolve(ctx, clipnote.UpgradeImageURL(src), fmt.Sprintf("%s_img_%d", title, i+1))
		}
		if ref == "" {
			ref = src
		}
		parts = append(parts, clipnote.ImagePart{Ref: ref, Alt: "Image"})
	}
	return parts
}
