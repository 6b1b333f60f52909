package clipnote_test

import (
	"testing"

	"github.com/Donghyun-349/clipnote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySource(t *testing.T) {
	t.Parallel()

	t.Run("classifies video hosts", func(t *testing.T) {
		t.Parallel()

		for _, rawURL := range []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://youtu.be/dQw4w9WgXcQ",
			"https://m.youtube.com/watch?v=dQw4w9WgXcQ",
		} {
			src, err := clipnote.ClassifySource(rawURL)

			require.NoError(t, err)
			assert.Equal(t, clipnote.SourceVideo, src.Kind, rawURL)
		}
	})

	t.Run("classifies blog host", func(t *testing.T) {
		t.Parallel()

		src, err := clipnote.ClassifySource("https://blog.naver.com/someone/223456789")

		require.NoError(t, err)
		assert.Equal(t, clipnote.SourceBlog, src.Kind)
		assert.Equal(t, "https://blog.naver.com/someone/223456789", src.URL)
	})

	t.Run("rewrites mobile blog host to desktop host", func(t *testing.T) {
		t.Parallel()

		src, err := clipnote.ClassifySource("http://m.blog.naver.com/someone/223456789")

		require.NoError(t, err)
		assert.Equal(t, clipnote.SourceBlog, src.Kind)
		assert.Equal(t, "http://blog.naver.com/someone/223456789", src.URL)
	})

	t.Run("unknown hosts fall through to generic", func(t *testing.T) {
		t.Parallel()

		src, err := clipnote.ClassifySource("https://example.org/articles/42")

		require.NoError(t, err)
		assert.Equal(t, clipnote.SourceGeneric, src.Kind)
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		t.Parallel()

		_, err := clipnote.ClassifySource("not a url")

		require.Error(t, err)
		assert.Equal(t, clipnote.EINVALID, clipnote.ErrorCode(err))
	})

	t.Run("rejects input without host", func(t *testing.T) {
		t.Parallel()

		_, err := clipnote.ClassifySource("/relative/path")

		require.Error(t, err)
		assert.Equal(t, clipnote.EINVALID, clipnote.ErrorCode(err))
	})
}

func TestExtractVideoID(t *testing.T) {
	t.Parallel()

	t.Run("extracts from watch, short, and embed URLs", func(t *testing.T) {
		t.Parallel()

		for _, rawURL := range []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
			"https://youtu.be/dQw4w9WgXcQ",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
		} {
			id, err := clipnote.ExtractVideoID(rawURL)

			require.NoError(t, err, rawURL)
			assert.Equal(t, "dQw4w9WgXcQ", id, rawURL)
		}
	})

	t.Run("rejects URLs without a recognizable ID", func(t *testing.T) {
		t.Parallel()

		_, err := clipnote.ExtractVideoID("https://www.youtube.com/feed/subscriptions")

		require.Error(t, err)
		assert.Equal(t, clipnote.EINVALID, clipnote.ErrorCode(err))
	})
}
