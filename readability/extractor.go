// Package readability implements a generic article-extraction tier on
// the go-shiori readability port. It runs after the trafilatura tier;
// the two disagree often enough on sparse pages that a second opinion
// is worth the fetch.
package readability

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/Donghyun-349/clipnote"
	"github.com/go-shiori/go-readability"
)

// minArticleLen is the minimum markdown length, in runes, below which
// the extraction is not trusted.
const minArticleLen = 100

// Ensure Extractor implements clipnote.ArticleExtractor at compile time.
var _ clipnote.ArticleExtractor = (*Extractor)(nil)

// Extractor extracts the main content of a page with readability and
// converts it to markdown.
type Extractor struct {
	fetcher clipnote.Fetcher
	conv    clipnote.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor(fetcher clipnote.Fetcher, conv clipnote.Converter) *Extractor {
	return &Extractor{fetcher: fetcher, conv: conv}
}

// Extract fetches the page and returns its readability content as
// markdown.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*clipnote.Article, error) {
	body, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, clipnote.Errorf(clipnote.EINVALID, "empty response body from %q", rawURL)
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, clipnote.Errorf(clipnote.EINVALID, "cannot parse URL %q: %v", rawURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(body), pageURL)
	if err != nil {
		return nil, clipnote.Errorf(clipnote.ENOTFOUND, "no readable content in %q: %v", rawURL, err)
	}

	markdown, err := e.conv.Convert(article.Content)
	if err != nil {
		return nil, err
	}
	markdown = strings.TrimSpace(markdown)
	if utf8.RuneCountInString(markdown) < minArticleLen {
		return nil, clipnote.Errorf(clipnote.ETOOSHORT, "extracted only %d characters from %q", utf8.RuneCountInString(markdown), rawURL)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = "Untitled"
	}

	return &clipnote.Article{
		Title:    title,
		Markdown: markdown,
		HTML:     article.Content,
	}, nil
}
