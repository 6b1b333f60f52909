package clip

import (
	"context"
	"fmt"
	"strings"

	"github.com/Donghyun-349/clipnote"
)

// extractVideo builds a video clip: metadata from the provider chain,
// captions from the tier chain, both degrading gracefully. Only a URL
// without a recognizable video ID is an error.
func (c *Clipper) extractVideo(ctx context.Context, source *clipnote.Source) (*clipnote.Clip, error) {
	videoID, err := clipnote.ExtractVideoID(source.URL)
	if err != nil {
		return nil, err
	}

	metaCalls := make([]func(context.Context) (*clipnote.VideoMetadata, error), 0, len(c.metadata))
	for _, provider := range c.metadata {
		provider := provider
		metaCalls = append(metaCalls, func(ctx context.Context) (*clipnote.VideoMetadata, error) {
			return provider.Metadata(ctx, videoID)
		})
	}
	meta, ok := firstSuccess(ctx, metaCalls, func(m *clipnote.VideoMetadata) bool {
		return m != nil
	})
	if !ok {
		meta = &clipnote.VideoMetadata{}
	}
	if meta.Title == "" {
		meta.Title = "Untitled"
	}

	captionCalls := make([]func(context.Context) ([]clipnote.Cue, error), 0, len(c.captions))
	for _, src := range c.captions {
		src := src
		captionCalls = append(captionCalls, func(ctx context.Context) ([]clipnote.Cue, error) {
			return src.Captions(ctx, videoID)
		})
	}
	// An empty cue list is a tier failure, not an empty transcript.
	cues, _ := firstSuccess(ctx, captionCalls, func(cues []clipnote.Cue) bool {
		return len(cues) > 0
	})

	return &clipnote.Clip{
		Title:     meta.Title,
		Body:      videoBody(meta, clipnote.ChunkCues(cues)),
		SourceURL: source.URL,
		Kind:      clipnote.KindVideo,
		Channel:   meta.Channel,
	}, nil
}

// videoBody assembles the markdown body of a video clip: thumbnail,
// metadata lines, then the timestamped transcript, or the description
// with a notice when no tier produced captions.
func videoBody(meta *clipnote.VideoMetadata, chunks []clipnote.Chunk) string {
	var blocks []string

	if meta.ThumbnailURL != "" {
		blocks = append(blocks, fmt.Sprintf("![%s](%s)", meta.Title, meta.ThumbnailURL))
	}

	var lines []string
	if meta.Channel != "" {
		lines = append(lines, "**Channel:** "+meta.Channel)
	}
	if meta.UploadDate != "" {
		lines = append(lines, "**Uploaded:** "+meta.UploadDate)
	}
	if len(lines) > 0 {
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if len(chunks) > 0 {
		blocks = append(blocks, "## Transcript")
		for _, chunk := range chunks {
			blocks = append(blocks, chunk.Markdown())
		}
	} else {
		blocks = append(blocks, "_No transcript was available for this video._")
		if meta.Description != "" {
			blocks = append(blocks, "## Description", meta.Description)
		}
	}

	return strings.Join(blocks, "\n\n")
}
