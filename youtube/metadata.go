package youtube

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/Donghyun-349/clipnote"
)

// shortDescriptionRe locates the JSON-escaped description string in
// the watch page's player configuration.
var shortDescriptionRe = regexp.MustCompile(`"shortDescription":"((?:[^"\\]|\\.)*)"`)

// uploadDateRe locates the upload date in the page's structured data.
var uploadDateRe = regexp.MustCompile(`"uploadDate":"([^"]+)"`)

// thumbnailNames is the probe order for thumbnail renditions; the
// full-size one is not generated for every video.
var thumbnailNames = []string{"maxresdefault.jpg", "hqdefault.jpg"}

// oembedResponse is the subset of the oEmbed payload we use.
type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// Metadata combines the oEmbed endpoint with watch page probing.
// Partial results are fine; it fails only when neither endpoint
// answers.
func (c *Client) Metadata(ctx context.Context, videoID string) (*clipnote.VideoMetadata, error) {
	watchURL := c.baseURL + "/watch?v=" + videoID
	meta := &clipnote.VideoMetadata{}
	answered := false

	if body, err := c.get(ctx, c.baseURL+"/oembed?url="+url.QueryEscape(watchURL)+"&format=json"); err == nil {
		var oembed oembedResponse
		if err := json.Unmarshal([]byte(body), &oembed); err == nil {
			answered = true
			meta.Title = strings.TrimSpace(oembed.Title)
			meta.Channel = strings.TrimSpace(oembed.AuthorName)
		}
	}

	if page, err := c.get(ctx, watchURL); err == nil {
		answered = true
		if m := shortDescriptionRe.FindStringSubmatch(page); m != nil {
			var desc string
			if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &desc); err == nil {
				meta.Description = strings.TrimSpace(desc)
			}
		}
		if m := uploadDateRe.FindStringSubmatch(page); m != nil {
			meta.UploadDate = m[1]
		}
	}

	if !answered {
		return nil, clipnote.Errorf(clipnote.EUNAVAILABLE, "video metadata unavailable for %s", videoID)
	}

	for _, name := range thumbnailNames {
		thumbURL := c.thumbBaseURL + "/vi/" + videoID + "/" + name
		if c.head(ctx, thumbURL) {
			meta.ThumbnailURL = thumbURL
			break
		}
	}

	return meta, nil
}
