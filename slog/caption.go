// Package slog provides logging decorators for the pipeline's
// acquisition interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Donghyun-349/clipnote"
)

// Ensure LoggingCaptionSource implements clipnote.CaptionSource.
var _ clipnote.CaptionSource = (*LoggingCaptionSource)(nil)

// LoggingCaptionSource wraps a CaptionSource with per-tier logging, so
// a caption run shows which tier produced the cues and which tiers
// fell through.
type LoggingCaptionSource struct {
	next   clipnote.CaptionSource
	tier   string
	logger *slog.Logger
}

// NewLoggingCaptionSource creates a new LoggingCaptionSource. The tier
// name identifies the wrapped source in log output.
func NewLoggingCaptionSource(next clipnote.CaptionSource, tier string, logger *slog.Logger) *LoggingCaptionSource {
	return &LoggingCaptionSource{next: next, tier: tier, logger: logger}
}

// Captions logs the tier outcome and delegates to the wrapped source.
func (s *LoggingCaptionSource) Captions(ctx context.Context, videoID string) (cues []clipnote.Cue, err error) {
	defer func(begin time.Time) {
		s.logger.Info("captions",
			"tier", s.tier,
			"video_id", videoID,
			"cues", len(cues),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Captions(ctx, videoID)
}
