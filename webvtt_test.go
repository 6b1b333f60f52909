package clipnote_test

import (
	"testing"

	"github.com/Donghyun-349/clipnote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebVTT(t *testing.T) {
	t.Parallel()

	t.Run("extracts cues with timestamps", func(t *testing.T) {
		t.Parallel()

		doc := `WEBVTT
Kind: captions
Language: en

00:00:01.000 --> 00:00:04.000
hello there

00:00:05.000 --> 00:00:08.000
second cue
`

		cues := clipnote.ParseWebVTT(doc)

		require.Len(t, cues, 2)
		assert.Equal(t, clipnote.Cue{Start: 1, Text: "hello there"}, cues[0])
		assert.Equal(t, clipnote.Cue{Start: 5, Text: "second cue"}, cues[1])
	})

	t.Run("skips sequence numbers and timing markers", func(t *testing.T) {
		t.Parallel()

		doc := `1
00:00:01.000 --> 00:00:02.000
first

2
00:00:03.000 --> 00:00:04.000
second
`

		cues := clipnote.ParseWebVTT(doc)

		require.Len(t, cues, 2)
		assert.Equal(t, "first", cues[0].Text)
		assert.Equal(t, "second", cues[1].Text)
	})

	t.Run("strips formatting tags and decodes entities", func(t *testing.T) {
		t.Parallel()

		doc := `WEBVTT

00:00:10.000 --> 00:00:12.000
<c.colorCCCCCC>ben &amp; jerry</c>
`

		cues := clipnote.ParseWebVTT(doc)

		require.Len(t, cues, 1)
		assert.Equal(t, clipnote.Cue{Start: 10, Text: "ben & jerry"}, cues[0])
	})

	t.Run("strips leading quote and dash markers", func(t *testing.T) {
		t.Parallel()

		doc := `WEBVTT

00:01:00.000 --> 00:01:02.000
- so anyway
`

		cues := clipnote.ParseWebVTT(doc)

		require.Len(t, cues, 1)
		assert.Equal(t, clipnote.Cue{Start: 60, Text: "so anyway"}, cues[0])
	})

	t.Run("ignores text before the first timestamp", func(t *testing.T) {
		t.Parallel()

		doc := `some preamble noise

00:00:02.000 --> 00:00:03.000
actual caption
`

		cues := clipnote.ParseWebVTT(doc)

		require.Len(t, cues, 1)
		assert.Equal(t, "actual caption", cues[0].Text)
	})

	t.Run("returns nothing for empty document", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, clipnote.ParseWebVTT(""))
	})
}
