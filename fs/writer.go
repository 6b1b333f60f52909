// Package fs persists clips and their image assets to the local
// filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Donghyun-349/clipnote"
)

// maxFilenameLen bounds the sanitized title portion of a clip
// filename, in runes.
const maxFilenameLen = 50

// forbiddenFilenameRe matches characters that cannot appear in a
// filename on common filesystems.
var forbiddenFilenameRe = regexp.MustCompile(`[\\/:*?"<>|]`)

// SanitizeFilename converts a clip title into a safe filename stem:
// forbidden characters removed, whitespace runs collapsed to single
// underscores, and the result truncated.
func SanitizeFilename(title string) string {
	s := forbiddenFilenameRe.ReplaceAllString(title, "")
	s = strings.Join(strings.Fields(s), "_")
	s = strings.Trim(s, "._")
	runes := []rune(s)
	if len(runes) > maxFilenameLen {
		s = string(runes[:maxFilenameLen])
	}
	return s
}

// FormatClip formats a clip with YAML frontmatter.
func FormatClip(clip *clipnote.Clip, clippedAt time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(clip.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(clip.Title)
	if clip.Channel != "" {
		b.WriteString("\nchannel: ")
		b.WriteString(clip.Channel)
	}
	b.WriteString("\nclipped: ")
	b.WriteString(clippedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(clip.Body)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements clipnote.ClipWriter at compile time.
var _ clipnote.ClipWriter = (*Writer)(nil)

// Writer writes clips as markdown files to a directory, one file per
// clip, named by date and sanitized title.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithClock overrides the clock used for date prefixes and the
// frontmatter timestamp.
func WithClock(now func() time.Time) WriterOption {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteClip writes a clip to disk and returns the path of the created
// file. An existing file with the same name is never overwritten; a
// numeric suffix is appended instead.
func (w *Writer) WriteClip(ctx context.Context, clip *clipnote.Clip) (string, error) {
	if clip.Title == "" || clip.Body == "" {
		return "", clipnote.Errorf(clipnote.EINVALID, "clip requires a title and a body")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	now := w.now()
	stem := SanitizeFilename(clip.Title)
	if stem == "" {
		stem = "clip"
	}
	stem = now.Format("2006-01-02") + "_" + stem

	target := filepath.Join(w.baseDir, stem+".md")
	for i := 1; ; i++ {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			break
		}
		target = filepath.Join(w.baseDir, fmt.Sprintf("%s_%d.md", stem, i))
	}

	if err := os.WriteFile(target, []byte(FormatClip(clip, now)), 0644); err != nil {
		return "", err
	}
	return target, nil
}
