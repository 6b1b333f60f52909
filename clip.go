package clipnote

import "context"

// ClipKind identifies the class of content a clip was extracted from.
type ClipKind string

// ClipKind values.
const (
	KindArticle ClipKind = "article"
	KindVideo   ClipKind = "video"
)

// Clip is the normalized result of one extraction call. It is owned
// exclusively by the caller once returned; the pipeline holds no
// reference to it after return.
type Clip struct {
	// Title is the extracted document or video title.
	Title string

	// Body is the normalized markdown body in reading order.
	Body string

	// SourceURL is the canonical URL the clip was extracted from,
	// after host normalization.
	SourceURL string

	// Kind distinguishes article clips from video clips.
	Kind ClipKind

	// HTML is an optional auxiliary HTML mirror of the body with all
	// resource references rewritten to absolute or local form. It is
	// consumed by renderers only and may be empty.
	HTML string

	// Channel is the uploader name for video clips.
	Channel string
}

// ClipWriter persists a finished clip and returns where it was
// written.
type ClipWriter interface {
	WriteClip(ctx context.Context, clip *Clip) (path string, err error)
}

// Article is the result produced by a single article-extraction tier
// before noise filtering.
type Article struct {
	Title    string
	Markdown string

	// HTML is the prepared content container, if the tier produces one.
	HTML string
}

// VideoMetadata describes a video independently of its captions.
type VideoMetadata struct {
	Title        string
	Channel      string
	UploadDate   string
	Description  string
	ThumbnailURL string
}
