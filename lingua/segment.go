package lingua

import (
	"regexp"
	"strings"
)

var terminalRunRe = regexp.MustCompile(`[.!?]+`)

// NaiveSplit splits plain text on maximal runs of sentence-terminal
// punctuation, trimming each piece and dropping empty ones.
func NaiveSplit(plainText string) []string {
	var segments []string
	for _, piece := range terminalRunRe.Split(plainText, -1) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			segments = append(segments, piece)
		}
	}
	return segments
}

// Segment splits plain text into sentences. It starts from the naive split
// and merges a segment into its successor when the segment's trailing word
// is a recognized title abbreviation, so "Il dott. Rossi" stays one
// sentence. Lookahead is a single step; a merged segment is not examined
// again, so the result count is always <= the naive count.
func Segment(plainText string) []string {
	naive := NaiveSplit(plainText)
	if len(naive) < 2 {
		return naive
	}

	merged := make([]string, 0, len(naive))
	for i := 0; i < len(naive); i++ {
		segment := naive[i]
		if i+1 < len(naive) && endsWithAbbreviation(segment) {
			segment = segment + ". " + naive[i+1]
			i++
		}
		merged = append(merged, segment)
	}
	return merged
}

// endsWithAbbreviation reports whether the segment's trailing word is a
// title abbreviation, case-insensitively.
func endsWithAbbreviation(segment string) bool {
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(fields[len(fields)-1])
	_, ok := Abbreviations[last]
	return ok
}
