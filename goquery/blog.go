package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Donghyun-349/clipnote"
	"github.com/PuerkitoBio/goquery"
)

// Ensure BlogExtractor implements clipnote.ArticleExtractor at compile time.
var _ clipnote.ArticleExtractor = (*BlogExtractor)(nil)

// BlogExtractor parses posts authored in the blog platform's
// structured editor by walking its block model directly. It locates
// the real content container and dispatches each component by kind,
// producing an ordered part sequence instead of scraping free-form
// HTML.
type BlogExtractor struct {
	fetcher clipnote.Fetcher
	images  clipnote.ImageResolver
}

// NewBlogExtractor creates a new BlogExtractor.
func NewBlogExtractor(fetcher clipnote.Fetcher, images clipnote.ImageResolver) *BlogExtractor {
	return &BlogExtractor{fetcher: fetcher, images: images}
}

// Extract fetches the post, hops into the content frame when present,
// and parses the editor's component blocks in reading order.
func (e *BlogExtractor) Extract(ctx context.Context, pageURL string) (*clipnote.Article, error) {
	frameURL, body, err := e.resolveFrame(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, clipnote.Errorf(clipnote.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(frameURL)
	if err != nil {
		return nil, clipnote.Errorf(clipnote.EINVALID, "invalid page URL: %v", err)
	}

	title := e.extractTitle(doc)

	container := doc.Find(".se-main-container").First()
	if container.Length() == 0 {
		// Legacy editor format.
		container = doc.Find("#postViewArea").First()
	}
	if container.Length() == 0 {
		return nil, clipnote.Errorf(clipnote.ENOTFOUND, "no content container found (post may be private or access-restricted)")
	}

	var parts []clipnote.Part
	components := container.Find(".se-component")
	if components.Length() == 0 {
		// Legacy posts have no component blocks; walk the container
		// like the generic fallback does.
		container.Find(nonContentSelector).Remove()
		parts = walkBlocks(container)
		parts = append(parts, resolveContainerImages(ctx, e.images, base, container, title)...)
	} else {
		parts = e.parseComponents(ctx, base, components, title)
	}

	aux := PrepareContainer(container, base)

	return &clipnote.Article{
		Title:    title,
		Markdown: clipnote.RenderParts(parts),
		HTML:     aux,
	}, nil
}

// resolveFrame returns the document that actually holds the post. The
// platform serves posts inside a #mainFrame iframe; PostView URLs are
// already the framed document. When no frame exists the outer page is
// parsed as is.
func (e *BlogExtractor) resolveFrame(ctx context.Context, pageURL string) (string, string, error) {
	body, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	if strings.Contains(pageURL, "PostView") {
		return pageURL, body, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", "", clipnote.Errorf(clipnote.EINVALID, "failed to parse HTML: %v", err)
	}

	src, ok := doc.Find("iframe#mainFrame").Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return pageURL, body, nil
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", "", clipnote.Errorf(clipnote.EINVALID, "invalid page URL: %v", err)
	}
	frameURL := absoluteURL(base, src)
	if frameURL == "" {
		return pageURL, body, nil
	}

	frameBody, err := e.fetcher.Fetch(ctx, frameURL)
	if err != nil {
		return "", "", fmt.Errorf("fetching frame %s: %w", frameURL, err)
	}
	return frameURL, frameBody, nil
}

// titleSelectors is the cascade of title locations across editor
// versions.
var titleSelectors = []string{
	".se-title-text",
	"#title_1 span",
	".title_text",
	".article_header .title_text",
	"h2.tit",
}

func (e *BlogExtractor) extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		if text := normalizeSpace(doc.Find(selector).First().Text()); text != "" {
			return cleanTitle(text)
		}
	}
	if text := cleanTitle(doc.Find("title").First().Text()); text != "" {
		return text
	}
	return "Untitled"
}

// rawBlockMinLen drops leftover markup shorter than this after
// script/style stripping.
const rawBlockMinLen = 10

// parseComponents dispatches each editor component block by kind,
// preserving reading order.
func (e *BlogExtractor) parseComponents(ctx context.Context, base *url.URL, components *goquery.Selection, title string) []clipnote.Part {
	var parts []clipnote.Part
	imageCount := 0

	components.Each(func(_ int, comp *goquery.Selection) {
		switch {
		case comp.HasClass("se-text"):
			parts = append(parts, textParts(comp)...)

		case comp.HasClass("se-image"):
			comp.Find("img.se-image-resource").Each(func(_ int, img *goquery.Selection) {
				src := firstImageSrc(base, img)
				if !isHTTP(src) {
					return
				}
				imageCount++
				alt := fmt.Sprintf("Image %d", imageCount)
				if !clipnote.IsFirstPartyMedia(src) {
					// Third-party imagery stays remote.
					parts = append(parts, clipnote.ImagePart{Ref: src, Alt: alt})
					return
				}
				ref := e.resolveImage(ctx, src, fmt.Sprintf("%s_img_%d", title, imageCount))
				if ref == "" {
					ref = src
				}
				parts = append(parts, clipnote.ImagePart{Ref: ref, Alt: alt})
			})

		case comp.HasClass("se-table"):
			if table := comp.Find("table").First(); table.Length() > 0 {
				if markup, err := goquery.OuterHtml(table); err == nil {
					parts = append(parts, clipnote.TablePart{HTML: markup})
				}
			}

		case comp.HasClass("se-quote"):
			quote := comp.Find(".se-quote-container, .se-quote-module").First()
			if quote.Length() > 0 {
				quote.Find("script, style").Remove()
				if markup, err := goquery.OuterHtml(quote); err == nil {
					parts = append(parts, clipnote.QuotePart{HTML: markup})
					return
				}
			}
			if text := normalizeSpace(comp.Text()); text != "" {
				parts = append(parts, clipnote.QuotePart{Text: text})
			}

		case comp.HasClass("se-horizontalLine"):
			parts = append(parts, clipnote.DividerPart{})

		case comp.HasClass("se-oglink"):
			if card, ok := e.linkCard(ctx, base, comp, title); ok {
				parts = append(parts, card)
			}

		default:
			comp.Find("script, style").Remove()
			markup, err := goquery.OuterHtml(comp)
			if err != nil {
				return
			}
			if len(strings.TrimSpace(markup)) > rawBlockMinLen {
				parts = append(parts, clipnote.RawPart{HTML: markup})
			}
		}
	})

	return parts
}

// textParts converts a text component's paragraphs. A paragraph inside
// a section-title wrapper becomes a heading; a paragraph whose entire
// text is wrapped in emphasis markup becomes bold; empty paragraphs
// are dropped.
func textParts(comp *goquery.Selection) []clipnote.Part {
	var parts []clipnote.Part
	comp.Find(".se-text-paragraph").Each(func(_ int, p *goquery.Selection) {
		text := normalizeSpace(p.Text())
		if text == "" {
			return
		}

		if p.ParentsFiltered(".se-section-sectionTitle").Length() > 0 {
			parts = append(parts, clipnote.TextPart{Text: text, Level: 3})
			return
		}

		bold := p.Find("b, strong").First()
		if bold.Length() > 0 && normalizeSpace(bold.Text()) == text {
			parts = append(parts, clipnote.TextPart{Text: text, Bold: true})
			return
		}
		parts = append(parts, clipnote.TextPart{Text: text})
	})
	return parts
}

// linkCard extracts an external link preview component.
func (e *BlogExtractor) linkCard(ctx context.Context, base *url.URL, comp *goquery.Selection, title string) (clipnote.LinkCardPart, bool) {
	anchor := comp.Find("a.se-oglink-info").First()
	if anchor.Length() == 0 {
		anchor = comp.Find("a").First()
	}
	href, ok := anchor.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return clipnote.LinkCardPart{}, false
	}

	card := clipnote.LinkCardPart{
		URL:         href,
		Title:       normalizeSpace(comp.Find(".se-oglink-title").First().Text()),
		Description: normalizeSpace(comp.Find(".se-oglink-summary, .se-oglink-desc").First().Text()),
		Domain:      normalizeSpace(comp.Find(".se-oglink-url").First().Text()),
	}
	if card.Domain == "" {
		if u, err := url.Parse(href); err == nil {
			card.Domain = u.Host
		}
	}

	thumb := comp.Find("img.se-oglink-thumbnail-resource, img.se-oglink-thumbnail").First()
	if thumb.Length() > 0 {
		if src := firstImageSrc(base, thumb); isHTTP(src) {
			card.ThumbnailRef = src
			if clipnote.IsFirstPartyMedia(src) {
				if ref := e.resolveImage(ctx, src, title+"_oglink"); ref != "" {
					card.ThumbnailRef = ref
				}
			}
		}
	}

	return card, true
}

// resolveImage passes a first-party image through the resolver,
// upgrading size-limited renditions first. Returns empty on failure.
func (e *BlogExtractor) resolveImage(ctx context.Context, src, baseName string) string {
	if e.images == nil {
		return ""
	}
	return e.images.Resolve(ctx, clipnote.UpgradeImageURL(src), baseName)
}
