package mock

import (
	"context"

	"github.com/Donghyun-349/clipnote"
)

var _ clipnote.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of clipnote.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(ctx context.Context, url string) (*clipnote.Article, error)
}

func (e *ArticleExtractor) Extract(ctx context.Context, url string) (*clipnote.Article, error) {
	return e.ExtractFn(ctx, url)
}
