package fs

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Donghyun-349/clipnote"
	clipnotehttp "github.com/Donghyun-349/clipnote/http"
	"github.com/google/uuid"
)

// assetsDirName is the subdirectory images are saved under, relative
// to the clip output directory.
const assetsDirName = "assets"

// DefaultMaxImageSize caps a single image download.
const DefaultMaxImageSize = 20 << 20 // 20 MiB

// DefaultImageTimeout bounds a single image download.
const DefaultImageTimeout = 30 * time.Second

// Ensure ImageResolver implements clipnote.ImageResolver at compile time.
var _ clipnote.ImageResolver = (*ImageResolver)(nil)

// ImageResolver downloads images into an assets directory next to the
// clip output and returns relative references. Any failure returns an
// empty reference; callers keep the remote URL.
type ImageResolver struct {
	baseDir string
	client  *http.Client
	maxSize int64
}

// ImageOption configures an ImageResolver.
type ImageOption func(*ImageResolver)

// WithImageTimeout sets the per-download timeout.
func WithImageTimeout(d time.Duration) ImageOption {
	return func(r *ImageResolver) {
		r.client.Timeout = d
	}
}

// WithMaxImageSize caps the size of a single download in bytes.
func WithMaxImageSize(n int64) ImageOption {
	return func(r *ImageResolver) {
		r.maxSize = n
	}
}

// NewImageResolver creates an ImageResolver that saves images under
// baseDir/assets.
func NewImageResolver(baseDir string, opts ...ImageOption) *ImageResolver {
	r := &ImageResolver{
		baseDir: baseDir,
		client:  &http.Client{Timeout: DefaultImageTimeout},
		maxSize: DefaultMaxImageSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve downloads the image and returns its reference relative to
// the clip output directory, e.g. "assets/title_img_1.jpg". Returns an
// empty string on any failure.
func (r *ImageResolver) Resolve(ctx context.Context, imageURL, baseName string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", clipnotehttp.UserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	dir := filepath.Join(r.baseDir, assetsDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}

	name := SanitizeFilename(baseName)
	if name == "" {
		name = "image"
	}
	filename := name + imageExt(imageURL)
	target := filepath.Join(dir, filename)
	if _, err := os.Stat(target); err == nil {
		// Collision with an existing asset; keep both.
		filename = name + "_" + uuid.NewString()[:8] + imageExt(imageURL)
		target = filepath.Join(dir, filename)
	}

	f, err := os.Create(target)
	if err != nil {
		return ""
	}

	_, err = io.Copy(f, io.LimitReader(resp.Body, r.maxSize))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(target)
		return ""
	}

	return path.Join(assetsDirName, filename)
}

// imageExt derives the asset file extension from the URL path,
// defaulting to .jpg when none is recognizable.
func imageExt(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ".jpg"
	}
	ext := strings.ToLower(path.Ext(u.Path))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg":
		return ext
	default:
		return ".jpg"
	}
}
