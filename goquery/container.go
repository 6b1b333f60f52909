package goquery

import (
	"net/url"
	"strings"

	"github.com/Donghyun-349/clipnote"
	"github.com/PuerkitoBio/goquery"
)

// trackingSelector lists elements stripped from the auxiliary mirror:
// scripts, interactive chrome, and the platform's tracking and
// comment containers.
const trackingSelector = "script, style, button, .se-documentTitle, .article_writer, .CommentBox, .ccl"

// PrepareContainer produces the auxiliary HTML mirror of a content
// container for out-of-scope renderers: tracking containers removed,
// link cards replaced with their rendered form, and every image,
// iframe, and video source rewritten to absolute form. Images are not
// passed through the resolver here; the text body owns resolution and
// the mirror keeps remote references. The input selection is left
// untouched; the mirror is built from a reparsed copy.
func PrepareContainer(container *goquery.Selection, base *url.URL) string {
	markup, err := goquery.OuterHtml(container)
	if err != nil {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	doc.Find(trackingSelector).Remove()

	doc.Find(".se-component.se-oglink").Each(func(_ int, comp *goquery.Selection) {
		card := staticLinkCard(base, comp)
		if card.URL == "" {
			comp.Remove()
			return
		}
		comp.ReplaceWithHtml(card.Markdown())
	})

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := firstImageSrc(base, img)
		if !isHTTP(src) {
			img.SetAttr("style", "display: none;")
			return
		}
		img.SetAttr("src", src)
		img.RemoveAttr("data-lazy-src")
		img.RemoveAttr("data-src")
		img.RemoveAttr("data-original")
	})

	for _, tag := range []string{"iframe", "video"} {
		doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
			src, ok := sel.Attr("src")
			if !ok {
				return
			}
			if resolved := absoluteURL(base, src); isHTTP(resolved) {
				sel.SetAttr("src", resolved)
			}
		})
	}

	html, err := doc.Find("body").First().Html()
	if err != nil {
		return markup
	}
	return html
}

// staticLinkCard extracts a link card without resolving its thumbnail;
// the mirror keeps thumbnails remote.
func staticLinkCard(base *url.URL, comp *goquery.Selection) clipnote.LinkCardPart {
	anchor := comp.Find("a.se-oglink-info").First()
	if anchor.Length() == 0 {
		anchor = comp.Find("a").First()
	}
	href, _ := anchor.Attr("href")

	card := clipnote.LinkCardPart{
		URL:         strings.TrimSpace(href),
		Title:       normalizeSpace(comp.Find(".se-oglink-title").First().Text()),
		Description: normalizeSpace(comp.Find(".se-oglink-summary, .se-oglink-desc").First().Text()),
		Domain:      normalizeSpace(comp.Find(".se-oglink-url").First().Text()),
	}
	if thumb := comp.Find("img.se-oglink-thumbnail-resource, img.se-oglink-thumbnail").First(); thumb.Length() > 0 {
		if src := firstImageSrc(base, thumb); isHTTP(src) {
			card.ThumbnailRef = src
		}
	}
	return card
}
