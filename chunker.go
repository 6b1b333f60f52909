package clipnote

import "strings"

// Chunking policy. Raw cues are sub-sentence fragments on sub-second
// intervals; grouping by elapsed time plus sentence boundaries yields
// paragraphs bounded against both under- and over-segmentation.
const (
	// chunkMinSeconds is the minimum span before a sentence boundary
	// may close a chunk.
	chunkMinSeconds = 20

	// chunkMaxSeconds closes a chunk regardless of punctuation.
	chunkMaxSeconds = 40
)

// ChunkCues groups an ordered cue sequence into time-windowed
// paragraphs. Exact duplicate cue text is dropped before accumulation,
// scoped to the whole sequence. A chunk closes once its span reaches
// chunkMinSeconds and the latest line ends in terminal punctuation, or
// unconditionally at chunkMaxSeconds; any remainder is flushed at
// stream end. Identical input always yields identical output.
func ChunkCues(cues []Cue) []Chunk {
	var chunks []Chunk
	var buffer []string
	seen := make(map[string]bool)
	start := 0

	for _, cue := range cues {
		text := strings.TrimSpace(cue.Text)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true

		if len(buffer) == 0 {
			start = cue.Start
		}
		buffer = append(buffer, text)

		span := cue.Start - start
		if span >= chunkMinSeconds && (endsSentence(text) || span >= chunkMaxSeconds) {
			chunks = append(chunks, Chunk{
				Start: FormatTimestamp(start),
				Text:  strings.Join(buffer, " "),
			})
			buffer = buffer[:0]
		}
	}

	if len(buffer) > 0 {
		chunks = append(chunks, Chunk{
			Start: FormatTimestamp(start),
			Text:  strings.Join(buffer, " "),
		})
	}

	return chunks
}

// endsSentence reports whether a caption line ends in terminal
// punctuation.
func endsSentence(text string) bool {
	switch text[len(text)-1] {
	case '.', '?', '!':
		return true
	}
	return false
}
