package clipnote

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Near-duplicate suppression parameters. The Jaccard threshold over
// character sets is a coarse heuristic inherited from field testing;
// treat it as tunable, not load-bearing.
const (
	// NearDupThreshold is the character-set Jaccard similarity above
	// which a line is considered a near-duplicate.
	NearDupThreshold = 0.9

	// nearDupWindow is how many previously kept lines each line is
	// compared against.
	nearDupWindow = 5

	// nearDupMinLen is the minimum line length for near-duplicate
	// comparison; short lines repeat legitimately.
	nearDupMinLen = 20
)

// boilerplatePatterns match platform policy notices and structural
// noise that leak into extracted text. Matched case-insensitively
// against the trimmed line.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`저작권 침해가 우려되는`),
	regexp.MustCompile(`글보내기 기능을 제한합니다`),
	regexp.MustCompile(`네이버는 블로그를 통해`),
	regexp.MustCompile(`저작물이 무단으로 공유되는 것을 막기 위해`),
	regexp.MustCompile(`저작권을 침해하는 컨텐츠가 포함되어 있는`),
	regexp.MustCompile(`상세한 안내를 받고 싶으신 경우`),
	regexp.MustCompile(`네이버 고객센터로 문의주시면`),
	regexp.MustCompile(`건강한 인터넷 환경을 만들어 나갈 수 있도록`),
	regexp.MustCompile(`고객님의 많은 관심과 협조를 부탁드립니다`),
	regexp.MustCompile(`메뉴 바로가기`),
	regexp.MustCompile(`본문 바로가기`),
	regexp.MustCompile(`작성하신.*이용자들의 신고가 많은 표현이 포함`),
	regexp.MustCompile(`다른 표현을 사용해주시기 바랍니다`),
	regexp.MustCompile(`건전한 인터넷 문화 조성을 위해`),
	regexp.MustCompile(`회원님의 적극적인 협조를 부탁드립니다`),
	regexp.MustCompile(`더 궁금하신 사항은 고객센터로 문의하시면`),
	regexp.MustCompile(`(?i)copyright notice`),
	regexp.MustCompile(`^## 블로그$`),
	regexp.MustCompile(`^댓글\d+$`),
	regexp.MustCompile(`^\s*\|+\s*$`),
	regexp.MustCompile(`blog\.naver\.com.*\.\.\.`),
}

// CleanText is the line-oriented noise filter applied to every
// extracted body. It collapses blank-line runs, drops exact duplicate
// lines by content hash, suppresses known boilerplate, and removes
// consecutive and near-duplicate echoes.
//
// CleanText is idempotent: the passes only ever remove lines, never
// reorder or add them, so re-running it on its own output yields the
// same result.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")

	lines = dropDuplicatesAndNoise(lines)
	lines = collapseBlanks(dropConsecutiveEchoes(lines))
	lines = dropNearDuplicates(lines)

	return strings.TrimSpace(strings.Join(collapseBlanks(lines), "\n"))
}

// collapseBlanks reduces any run of consecutive blank lines to one.
func collapseBlanks(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		prevBlank = blank
		out = append(out, line)
	}
	return out
}

// dropDuplicatesAndNoise removes exact duplicate non-blank lines by
// content hash and lines matching the boilerplate patterns, collapsing
// blank runs as it walks.
func dropDuplicatesAndNoise(lines []string) []string {
	out := make([]string, 0, len(lines))
	seen := make(map[uint64]bool)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
				continue
			}
			out = append(out, "")
			continue
		}

		hash := xxhash.Sum64String(trimmed)
		if seen[hash] {
			continue
		}
		seen[hash] = true

		if isBoilerplate(trimmed) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isBoilerplate(line string) bool {
	for _, pattern := range boilerplatePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	// Short pipe-heavy lines are broken table fragments.
	if strings.HasPrefix(line, "|") && len(line) < 50 && strings.Count(line, "|") >= 2 {
		return true
	}
	// Short lines that are just the platform's own domain string.
	if strings.Contains(line, blogHost) && len(line) < 100 &&
		(strings.Contains(line, "...") || strings.HasSuffix(line, blogHost)) {
		return true
	}
	return false
}

// dropConsecutiveEchoes removes a line identical to the immediately
// preceding non-blank line, including the [content, blank, content]
// double-echo pattern.
func dropConsecutiveEchoes(lines []string) []string {
	out := make([]string, 0, len(lines))
	prev, prevPrev := "", ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && trimmed == prev {
			continue
		}
		if trimmed != "" && trimmed == prevPrev && prev == "" {
			continue
		}
		prevPrev = prev
		prev = trimmed
		out = append(out, line)
	}
	return out
}

// dropNearDuplicates compares each non-blank line against the last few
// kept non-blank lines by character-set Jaccard similarity. Tracking
// only non-blank lines keeps the pass stable under blank-line
// collapsing, which preserves the filter's idempotence.
func dropNearDuplicates(lines []string) []string {
	out := make([]string, 0, len(lines))
	var window []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, line)
			continue
		}

		dup := false
		if len(trimmed) > nearDupMinLen {
			for _, kept := range window {
				if charSetJaccard(trimmed, kept) > NearDupThreshold {
					dup = true
					break
				}
			}
		}
		if dup {
			continue
		}
		out = append(out, line)
		window = append(window, trimmed)
		if len(window) > nearDupWindow {
			window = window[1:]
		}
	}
	return out
}

// charSetJaccard computes Jaccard similarity over the distinct
// character sets of two strings.
func charSetJaccard(a, b string) float64 {
	setA := make(map[rune]bool)
	for _, r := range a {
		setA[r] = true
	}
	setB := make(map[rune]bool)
	for _, r := range b {
		setB[r] = true
	}

	intersection := 0
	for r := range setA {
		if setB[r] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
