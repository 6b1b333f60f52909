package youtube

import (
	"context"
	"encoding/json"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/Donghyun-349/clipnote"
	"github.com/beevik/etree"
)

// captionTracksRe locates the caption track list embedded in the watch
// page's player configuration.
var captionTracksRe = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

// captionTrack is one entry of the player's caption track list.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	// Kind is "asr" for speech-recognition tracks and empty for
	// authored ones.
	Kind string `json:"kind"`
}

// Captions fetches the watch page, picks the best caption track by
// language preference, and parses its timed transcript. Returns
// ENOCAPTIONS when the video exposes no usable track.
func (c *Client) Captions(ctx context.Context, videoID string) ([]clipnote.Cue, error) {
	page, err := c.get(ctx, c.baseURL+"/watch?v="+videoID)
	if err != nil {
		return nil, err
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return nil, err
	}

	track := pickTrack(tracks, c.languages)
	if track == nil {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "no caption track in preferred languages for %s", videoID)
	}

	transcript, err := c.get(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	return parseTimedText(transcript)
}

// parseCaptionTracks extracts the caption track list from a watch page.
func parseCaptionTracks(page string) ([]captionTrack, error) {
	m := captionTracksRe.FindStringSubmatch(page)
	if m == nil {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "no caption tracks on watch page")
	}

	var tracks []captionTrack
	if err := json.Unmarshal([]byte(m[1]), &tracks); err != nil {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "malformed caption track list: %v", err)
	}
	if len(tracks) == 0 {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "empty caption track list")
	}
	return tracks, nil
}

// pickTrack returns the best track for the language preference order.
// Within a language an authored track beats a speech-recognition one.
func pickTrack(tracks []captionTrack, languages []string) *captionTrack {
	for _, lang := range languages {
		var asr *captionTrack
		for i := range tracks {
			track := &tracks[i]
			if track.LanguageCode != lang || track.BaseURL == "" {
				continue
			}
			if track.Kind != "asr" {
				return track
			}
			if asr == nil {
				asr = track
			}
		}
		if asr != nil {
			return asr
		}
	}
	return nil
}

// tagRe strips residual markup from cue text.
var tagRe = regexp.MustCompile(`<[^>]+>`)

// parseTimedText converts a timedtext XML transcript into cues. Cues
// with empty text are dropped.
func parseTimedText(transcript string) ([]clipnote.Cue, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(transcript); err != nil {
		return nil, clipnote.Errorf(clipnote.ENOCAPTIONS, "malformed transcript XML: %v", err)
	}

	var cues []clipnote.Cue
	for _, el := range doc.FindElements("//text") {
		start, err := strconv.ParseFloat(el.SelectAttrValue("start", ""), 64)
		if err != nil {
			continue
		}
		text := html.UnescapeString(el.Text())
		text = tagRe.ReplaceAllString(text, "")
		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			continue
		}
		cues = append(cues, clipnote.Cue{Start: int(start), Text: text})
	}
	return cues, nil
}
