package rod_test

import (
	"testing"

	"github.com/Donghyun-349/clipnote"
	"github.com/Donghyun-349/clipnote/rod"
	"github.com/stretchr/testify/assert"
)

// Ensure TranscriptScraper implements clipnote.CaptionSource.
var _ clipnote.CaptionSource = (*rod.TranscriptScraper)(nil)

func TestParseSegmentTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
		ok   bool
	}{
		{"minutes and seconds", "0:03", 3, true},
		{"double digit minutes", "12:34", 754, true},
		{"with hours", "1:02:03", 3723, true},
		{"surrounding whitespace", " 2:00 ", 120, true},
		{"bare seconds", "42", 0, false},
		{"too many parts", "1:2:3:4", 0, false},
		{"not a number", "a:b", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := rod.ParseSegmentTimestamp(tt.in)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
