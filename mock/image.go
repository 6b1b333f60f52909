package mock

import (
	"context"

	"github.com/Donghyun-349/clipnote"
)

var _ clipnote.ImageResolver = (*ImageResolver)(nil)

// ImageResolver is a mock implementation of clipnote.ImageResolver.
type ImageResolver struct {
	ResolveFn func(ctx context.Context, imageURL, baseName string) string
}

func (r *ImageResolver) Resolve(ctx context.Context, imageURL, baseName string) string {
	return r.ResolveFn(ctx, imageURL, baseName)
}
