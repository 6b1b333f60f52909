// Package clip orchestrates the extraction pipeline: URL
// classification, tiered article extraction with noise filtering, and
// tiered caption acquisition with transcript chunking.
package clip

import (
	"context"
	"strings"

	"github.com/Donghyun-349/clipnote"
)

// Clipper turns a URL into a normalized clip. Each extraction concern
// is a tier list tried in order; a tier that errors or produces an
// unusable result simply hands over to the next one.
type Clipper struct {
	blog     []clipnote.ArticleExtractor
	generic  []clipnote.ArticleExtractor
	captions []clipnote.CaptionSource
	metadata []clipnote.MetadataProvider
}

// Option configures a Clipper.
type Option func(*Clipper)

// WithBlogTiers sets the extraction tiers for blog posts.
func WithBlogTiers(tiers ...clipnote.ArticleExtractor) Option {
	return func(c *Clipper) {
		c.blog = tiers
	}
}

// WithArticleTiers sets the extraction tiers for generic article pages.
func WithArticleTiers(tiers ...clipnote.ArticleExtractor) Option {
	return func(c *Clipper) {
		c.generic = tiers
	}
}

// WithCaptionTiers sets the caption acquisition tiers for videos.
func WithCaptionTiers(tiers ...clipnote.CaptionSource) Option {
	return func(c *Clipper) {
		c.captions = tiers
	}
}

// WithMetadataTiers sets the video metadata providers.
func WithMetadataTiers(tiers ...clipnote.MetadataProvider) Option {
	return func(c *Clipper) {
		c.metadata = tiers
	}
}

// New creates a Clipper.
func New(opts ...Option) *Clipper {
	c := &Clipper{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extract classifies the URL and runs the matching extraction path.
// It returns an error only for unusable input; extraction failures
// degrade to a clip that says so.
func (c *Clipper) Extract(ctx context.Context, rawURL string) (*clipnote.Clip, error) {
	source, err := clipnote.ClassifySource(rawURL)
	if err != nil {
		return nil, err
	}

	if source.Kind == clipnote.SourceVideo {
		return c.extractVideo(ctx, source)
	}
	return c.articleClip(ctx, source)
}

// ExtractArticle clips a URL through the article path: blog tiers for
// the blog platform, generic tiers for everything else.
func (c *Clipper) ExtractArticle(ctx context.Context, rawURL string) (*clipnote.Clip, error) {
	source, err := clipnote.ClassifySource(rawURL)
	if err != nil {
		return nil, err
	}
	return c.articleClip(ctx, source)
}

// ExtractVideo clips a video URL through the caption and metadata
// tiers.
func (c *Clipper) ExtractVideo(ctx context.Context, rawURL string) (*clipnote.Clip, error) {
	source, err := clipnote.ClassifySource(rawURL)
	if err != nil {
		return nil, err
	}
	return c.extractVideo(ctx, source)
}

// articleClip picks the tier chain for a classified article source.
func (c *Clipper) articleClip(ctx context.Context, source *clipnote.Source) (*clipnote.Clip, error) {
	tiers := c.generic
	if source.Kind == clipnote.SourceBlog {
		tiers = c.blog
	}
	return c.extractArticle(ctx, source, tiers)
}

// firstSuccess runs each tier in order and returns the first result
// that passes the usable check. Tier errors are not fatal; they mean
// the next tier runs.
func firstSuccess[T any](ctx context.Context, tiers []func(context.Context) (T, error), usable func(T) bool) (T, bool) {
	var zero T
	for _, tier := range tiers {
		if ctx.Err() != nil {
			return zero, false
		}
		result, err := tier(ctx)
		if err != nil || !usable(result) {
			continue
		}
		return result, true
	}
	return zero, false
}

// extractArticle runs the tier chain and noise-filters the winning
// body. When every tier fails the clip still comes back, with a body
// that explains the failure.
func (c *Clipper) extractArticle(ctx context.Context, source *clipnote.Source, tiers []clipnote.ArticleExtractor) (*clipnote.Clip, error) {
	calls := make([]func(context.Context) (*clipnote.Article, error), 0, len(tiers))
	for _, tier := range tiers {
		tier := tier
		calls = append(calls, func(ctx context.Context) (*clipnote.Article, error) {
			return tier.Extract(ctx, source.URL)
		})
	}

	article, ok := firstSuccess(ctx, calls, func(a *clipnote.Article) bool {
		return a != nil && strings.TrimSpace(a.Markdown) != ""
	})
	if !ok {
		return &clipnote.Clip{
			Title:     "Untitled",
			Body:      failureBody(source.URL),
			SourceURL: source.URL,
			Kind:      clipnote.KindArticle,
		}, nil
	}

	title := article.Title
	if title == "" {
		title = "Untitled"
	}

	return &clipnote.Clip{
		Title:     title,
		Body:      clipnote.CleanText(article.Markdown),
		SourceURL: source.URL,
		Kind:      clipnote.KindArticle,
		HTML:      article.HTML,
	}, nil
}

// failureBody is the body of a clip whose every extraction tier
// failed.
func failureBody(url string) string {
	return "Content could not be extracted from this page. " +
		"The post may be private, deleted, or in a format none of the extractors understand.\n\n" +
		"Source: " + url
}
