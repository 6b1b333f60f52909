package mock

import (
	"context"

	"github.com/Donghyun-349/clipnote"
)

var _ clipnote.ClipWriter = (*ClipWriter)(nil)

// ClipWriter is a mock implementation of clipnote.ClipWriter.
type ClipWriter struct {
	WriteClipFn func(ctx context.Context, clip *clipnote.Clip) (string, error)
}

func (w *ClipWriter) WriteClip(ctx context.Context, clip *clipnote.Clip) (string, error) {
	return w.WriteClipFn(ctx, clip)
}
