package clip_test

import (
	"context"
	"testing"

	"github.com/Donghyun-349/clipnote"
	"github.com/Donghyun-349/clipnote/clip"
	"github.com/Donghyun-349/clipnote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const videoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func captionsReturning(cues []clipnote.Cue, err error) *mock.CaptionSource {
	return &mock.CaptionSource{
		CaptionsFn: func(ctx context.Context, videoID string) ([]clipnote.Cue, error) {
			return cues, err
		},
	}
}

func metadataReturning(meta *clipnote.VideoMetadata, err error) *mock.MetadataProvider {
	return &mock.MetadataProvider{
		MetadataFn: func(ctx context.Context, videoID string) (*clipnote.VideoMetadata, error) {
			return meta, err
		},
	}
}

func TestClipper_Extract_Video(t *testing.T) {
	t.Parallel()

	t.Run("assembles metadata and transcript into the body", func(t *testing.T) {
		t.Parallel()

		var captionedID string
		captions := &mock.CaptionSource{
			CaptionsFn: func(ctx context.Context, videoID string) ([]clipnote.Cue, error) {
				captionedID = videoID
				return []clipnote.Cue{
					{Start: 0, Text: "Hello there."},
					{Start: 25, Text: "And more."},
				}, nil
			},
		}
		metadata := metadataReturning(&clipnote.VideoMetadata{
			Title:        "Launch Recap",
			Channel:      "Rocket Lab",
			UploadDate:   "2024-05-01",
			ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		}, nil)

		c := clip.New(clip.WithCaptionTiers(captions), clip.WithMetadataTiers(metadata))
		got, err := c.Extract(context.Background(), videoURL)

		require.NoError(t, err)
		assert.Equal(t, "dQw4w9WgXcQ", captionedID)
		assert.Equal(t, "Launch Recap", got.Title)
		assert.Equal(t, clipnote.KindVideo, got.Kind)
		assert.Equal(t, "Rocket Lab", got.Channel)
		assert.Equal(t, "![Launch Recap](https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg)\n\n"+
			"**Channel:** Rocket Lab\n**Uploaded:** 2024-05-01\n\n"+
			"## Transcript\n\n"+
			"[00:00:00] Hello there. And more.", got.Body)
	})

	t.Run("empty cue list falls through to the next tier", func(t *testing.T) {
		t.Parallel()

		empty := captionsReturning(nil, nil)
		real := captionsReturning([]clipnote.Cue{{Start: 0, Text: "From tier two."}}, nil)
		metadata := metadataReturning(&clipnote.VideoMetadata{Title: "T"}, nil)

		c := clip.New(clip.WithCaptionTiers(empty, real), clip.WithMetadataTiers(metadata))
		got, err := c.Extract(context.Background(), videoURL)

		require.NoError(t, err)
		assert.Contains(t, got.Body, "From tier two.")
	})

	t.Run("caption errors fall through to the next tier", func(t *testing.T) {
		t.Parallel()

		failing := captionsReturning(nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "no tracks"))
		real := captionsReturning([]clipnote.Cue{{Start: 0, Text: "Recovered line."}}, nil)
		metadata := metadataReturning(&clipnote.VideoMetadata{Title: "T"}, nil)

		c := clip.New(clip.WithCaptionTiers(failing, real), clip.WithMetadataTiers(metadata))
		got, err := c.Extract(context.Background(), videoURL)

		require.NoError(t, err)
		assert.Contains(t, got.Body, "Recovered line.")
	})

	t.Run("no captions from any tier produces a notice and the description", func(t *testing.T) {
		t.Parallel()

		failing := captionsReturning(nil, clipnote.Errorf(clipnote.EUNAVAILABLE, "down"))
		metadata := metadataReturning(&clipnote.VideoMetadata{
			Title:       "Silent Video",
			Description: "A video about nothing.",
		}, nil)

		c := clip.New(clip.WithCaptionTiers(failing), clip.WithMetadataTiers(metadata))
		got, err := c.Extract(context.Background(), videoURL)

		require.NoError(t, err)
		assert.Contains(t, got.Body, "_No transcript was available for this video._")
		assert.Contains(t, got.Body, "## Description\n\nA video about nothing.")
		assert.NotContains(t, got.Body, "## Transcript")
	})

	t.Run("metadata failure degrades to an untitled clip", func(t *testing.T) {
		t.Parallel()

		captions := captionsReturning([]clipnote.Cue{{Start: 0, Text: "Still here."}}, nil)
		metadata := metadataReturning(nil, clipnote.Errorf(clipnote.EUNAVAILABLE, "down"))

		c := clip.New(clip.WithCaptionTiers(captions), clip.WithMetadataTiers(metadata))
		got, err := c.Extract(context.Background(), videoURL)

		require.NoError(t, err)
		assert.Equal(t, "Untitled", got.Title)
		assert.Contains(t, got.Body, "Still here.")
	})

	t.Run("ExtractVideo clips a video URL directly", func(t *testing.T) {
		t.Parallel()

		captions := captionsReturning([]clipnote.Cue{{Start: 0, Text: "Direct path."}}, nil)
		metadata := metadataReturning(&clipnote.VideoMetadata{Title: "Direct"}, nil)

		c := clip.New(clip.WithCaptionTiers(captions), clip.WithMetadataTiers(metadata))
		got, err := c.ExtractVideo(context.Background(), videoURL)

		require.NoError(t, err)
		assert.Equal(t, "Direct", got.Title)
		assert.Equal(t, clipnote.KindVideo, got.Kind)
		assert.Contains(t, got.Body, "Direct path.")
	})

	t.Run("rejects video URLs without a recognizable ID", func(t *testing.T) {
		t.Parallel()

		c := clip.New()
		_, err := c.Extract(context.Background(), "https://www.youtube.com/watch?v=short")

		require.Error(t, err)
		assert.Equal(t, clipnote.EINVALID, clipnote.ErrorCode(err))
	})
}
