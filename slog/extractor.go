package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Donghyun-349/clipnote"
)

// Ensure LoggingExtractor implements clipnote.ArticleExtractor.
var _ clipnote.ArticleExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ArticleExtractor with per-tier logging.
type LoggingExtractor struct {
	next   clipnote.ArticleExtractor
	tier   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The tier name
// identifies the wrapped extractor in log output.
func NewLoggingExtractor(next clipnote.ArticleExtractor, tier string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, tier: tier, logger: logger}
}

// Extract logs the tier outcome and delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (article *clipnote.Article, err error) {
	defer func(begin time.Time) {
		size := 0
		if article != nil {
			size = len(article.Markdown)
		}
		e.logger.Info("extract",
			"tier", e.tier,
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, url)
}
