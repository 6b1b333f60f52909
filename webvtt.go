package clipnote

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	vttTimeRe   = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2})`)
	vttTagRe    = regexp.MustCompile(`<[^>]+>`)
	vttPrefixRe = regexp.MustCompile(`^[>\s\-]+`)
)

// ParseWebVTT extracts timed cues from a raw caption document (WebVTT
// or SRT-like). Formatting tags are stripped, HTML entities decoded,
// and lines that are pure sequence numbers or timing-range markers are
// discarded. Text lines preceding the first timestamp are header noise
// and skipped. The result preserves document order; duplicate text is
// retained here and suppressed later by the chunker.
func ParseWebVTT(document string) []Cue {
	var cues []Cue
	current := 0
	bodyStarted := false

	for _, line := range strings.Split(document, "\n") {
		line = strings.TrimSpace(line)

		if m := vttTimeRe.FindStringSubmatch(line); m != nil {
			h, _ := strconv.Atoi(m[1])
			min, _ := strconv.Atoi(m[2])
			s, _ := strconv.Atoi(m[3])
			current = h*3600 + min*60 + s
			bodyStarted = true
		}

		if line == "" || strings.HasPrefix(line, "WEBVTT") ||
			strings.Contains(line, "-->") || isDigits(line) || !bodyStarted {
			continue
		}

		text := html.UnescapeString(line)
		text = strings.TrimSpace(vttTagRe.ReplaceAllString(text, ""))
		text = strings.TrimSpace(vttPrefixRe.ReplaceAllString(text, ""))
		if text == "" {
			continue
		}

		cues = append(cues, Cue{Start: current, Text: text})
	}

	return cues
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
