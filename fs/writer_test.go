package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Donghyun-349/clipnote"
	"github.com/Donghyun-349/clipnote/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "A Weekend in Gyeongju", "A_Weekend_in_Gyeongju"},
		{"forbidden characters removed", `a/b\c:d*e?f"g<h>i|j`, "abcdefghij"},
		{"korean preserved", "경주 여행 기록", "경주_여행_기록"},
		{"whitespace collapsed", "  spaced   out  ", "spaced_out"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.SanitizeFilename(tt.title))
		})
	}

	t.Run("truncates long titles", func(t *testing.T) {
		t.Parallel()
		long := ""
		for range 20 {
			long += "abcde"
		}
		got := fs.SanitizeFilename(long)
		assert.Len(t, []rune(got), 50)
	})
}

func TestWriter_WriteClip(t *testing.T) {
	t.Parallel()

	fixed := func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	t.Run("writes a dated markdown file with frontmatter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, fs.WithClock(fixed))

		path, err := w.WriteClip(context.Background(), &clipnote.Clip{
			Title:     "My Post",
			Body:      "body text",
			SourceURL: "https://blog.naver.com/alice/1",
			Kind:      clipnote.KindArticle,
		})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "2024-03-01_My_Post.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `---
source: https://blog.naver.com/alice/1
title: My Post
clipped: 2024-03-01
---

body text
`, string(content))
	})

	t.Run("includes the channel for video clips", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, fs.WithClock(fixed))

		path, err := w.WriteClip(context.Background(), &clipnote.Clip{
			Title:     "A Talk",
			Body:      "transcript",
			SourceURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Kind:      clipnote.KindVideo,
			Channel:   "Some Channel",
		})

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "channel: Some Channel")
	})

	t.Run("never overwrites an existing clip", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, fs.WithClock(fixed))
		clip := &clipnote.Clip{Title: "Same", Body: "first", SourceURL: "https://example.com"}

		first, err := w.WriteClip(context.Background(), clip)
		require.NoError(t, err)

		clip.Body = "second"
		second, err := w.WriteClip(context.Background(), clip)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Equal(t, filepath.Join(dir, "2024-03-01_Same_1.md"), second)

		content, err := os.ReadFile(first)
		require.NoError(t, err)
		assert.Contains(t, string(content), "first")
	})

	t.Run("rejects clips without a title or body", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		_, err := w.WriteClip(context.Background(), &clipnote.Clip{Title: "only title"})

		require.Error(t, err)
		assert.Equal(t, clipnote.EINVALID, clipnote.ErrorCode(err))
	})
}
