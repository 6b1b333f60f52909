package mock

import (
	"context"

	"github.com/Donghyun-349/clipnote"
)

var _ clipnote.CaptionSource = (*CaptionSource)(nil)

// CaptionSource is a mock implementation of clipnote.CaptionSource.
type CaptionSource struct {
	CaptionsFn func(ctx context.Context, videoID string) ([]clipnote.Cue, error)
}

func (s *CaptionSource) Captions(ctx context.Context, videoID string) ([]clipnote.Cue, error) {
	return s.CaptionsFn(ctx, videoID)
}

var _ clipnote.MetadataProvider = (*MetadataProvider)(nil)

// MetadataProvider is a mock implementation of clipnote.MetadataProvider.
type MetadataProvider struct {
	MetadataFn func(ctx context.Context, videoID string) (*clipnote.VideoMetadata, error)
}

func (p *MetadataProvider) Metadata(ctx context.Context, videoID string) (*clipnote.VideoMetadata, error) {
	return p.MetadataFn(ctx, videoID)
}
