package lingua

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenStripRe removes everything outside letters, digits, apostrophes,
// the accented vowel set, and whitespace before tokenization.
var tokenStripRe = regexp.MustCompile(`[^a-zA-Z0-9'àèéìíòóùúÀÈÉÌÍÒÓÙÚ\s]`)

var numericRe = regexp.MustCompile(`^[0-9]+$`)

// Tokenize splits plain text into word tokens. Tokens of length <= 1 and
// purely numeric tokens are discarded.
func Tokenize(plainText string) []string {
	cleaned := tokenStripRe.ReplaceAllString(plainText, "")

	var tokens []string
	for _, field := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(field) <= 1 {
			continue
		}
		if numericRe.MatchString(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// ReadingTime estimates reading time in whole minutes at 180 words per
// minute, rounding up.
func ReadingTime(wordCount int) int {
	return (wordCount + 179) / 180
}
