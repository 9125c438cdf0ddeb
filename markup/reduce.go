package markup

import (
	"regexp"
	"strings"
)

// DefaultCulturalKeywords is the default keyword set for the image alt-text
// retention policy. Alt text containing one of these terms (or any accented
// vowel) is judged culturally relevant and kept; anything else is dropped
// with the image construct. The set is data, not policy: pass a different
// set to NewReducer to change the rule.
var DefaultCulturalKeywords = []string{
	"italia", "roma", "milano", "napoli", "venezia", "firenze", "torino",
	"arte", "storia", "cultura", "chiesa", "duomo", "piazza", "ponte",
	"monumento", "museo", "palazzo", "borgo",
}

var (
	codeFenceRe     = regexp.MustCompile("(?s)```.*?```")
	headingMarkRe   = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	strongRe        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	underlineRe     = regexp.MustCompile(`__(.+?)__`)
	emphasisRe      = regexp.MustCompile(`\*([^*\n]+)\*`)
	emphasisUnderRe = regexp.MustCompile(`_([^_\n]+)_`)
	strikeRe        = regexp.MustCompile(`~~(.+?)~~`)
	listMarkRe      = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	orderedMarkRe   = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	blockquoteRe    = regexp.MustCompile(`(?m)^[ \t]*>+[ \t]?`)
	horizontalRe    = regexp.MustCompile(`(?m)^[ \t]*(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)

	hspaceRe       = regexp.MustCompile(`[ \t]+`)
	newlinePadRe   = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
	sentenceGapRe  = regexp.MustCompile(`([.!?])([A-ZÀÈÉÌÍÒÓÙÚ])`)
	prePunctRe     = regexp.MustCompile(`[ \t]+([.!?:;,])`)
	caseGapRe      = regexp.MustCompile(`([a-zàèéìíòóùú])([A-ZÀÈÉÌÍÒÓÙÚ])`)
	apostropheRe   = regexp.MustCompile(`[ \t]*'[ \t]*`)

	// Italian elision prefixes: contracted forms of "of the", "in the",
	// "on the", "from the". The repair fires only across a space or before
	// an uppercase vowel; gluing a bare lowercase vowel to the prefix would
	// corrupt ordinary words such as "della".
	elisionSpaceRe = regexp.MustCompile(`\b((?i:dell|nell|sull|dall)) ([aeiouAEIOUàèéìíòóùúÀÈÉÌÍÒÓÙÚ])`)
	elisionCaseRe  = regexp.MustCompile(`\b((?i:dell|nell|sull|dall))([AEIOUÀÈÉÌÍÒÓÙÚ])`)

	accentedVowelRe = regexp.MustCompile(`[àèéìíòóùúÀÈÉÌÍÒÓÙÚ]`)
)

// Reducer strips markup syntax from normalized text while preserving
// linguistic content. The zero value is not usable; construct with
// NewReducer.
type Reducer struct {
	keywords []string
}

// NewReducer returns a Reducer using the given cultural keyword set for the
// image alt-text policy. With no arguments it uses DefaultCulturalKeywords.
func NewReducer(keywords ...string) *Reducer {
	if len(keywords) == 0 {
		keywords = DefaultCulturalKeywords
	}
	return &Reducer{keywords: keywords}
}

var defaultReducer = NewReducer()

// Reduce strips markup using the default cultural keyword set.
func Reduce(text string) string {
	return defaultReducer.Reduce(text)
}

// Reduce applies the fixed, order-sensitive rewrite sequence to normalized
// text and returns the plain-text rendering. It never fails; empty input
// yields empty output.
func (r *Reducer) Reduce(text string) string {
	// Code content goes first so nothing inside a fence is mistaken for
	// another construct downstream. Unterminated fences are left literal.
	text = codeFenceRe.ReplaceAllString(text, " ")

	text = headingMarkRe.ReplaceAllString(text, "")
	text = r.replaceLinks(text)
	text = r.replaceImages(text)

	text = strongRe.ReplaceAllString(text, "$1")
	text = underlineRe.ReplaceAllString(text, "$1")
	text = emphasisRe.ReplaceAllString(text, "$1")
	text = emphasisUnderRe.ReplaceAllString(text, "$1")
	text = strikeRe.ReplaceAllString(text, "$1")

	text = listMarkRe.ReplaceAllString(text, "")
	text = orderedMarkRe.ReplaceAllString(text, "")
	text = blockquoteRe.ReplaceAllString(text, "")
	text = horizontalRe.ReplaceAllString(text, "")

	return strings.TrimSpace(cleanup(text))
}

// replaceLinks substitutes each link construct with its link text. Image
// constructs share the bracket syntax, so matches preceded by a bang are
// left for the image pass.
func (r *Reducer) replaceLinks(text string) string {
	matches := linkRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		sb.WriteString(text[last:m[0]])
		sb.WriteString(text[m[2]:m[3]])
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// replaceImages substitutes each image construct with its alt text when the
// alt text passes the cultural-relevance test, and removes the construct
// entirely otherwise.
func (r *Reducer) replaceImages(text string) string {
	return imageRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := imageRe.FindStringSubmatch(m)
		alt := sub[1]
		if r.culturallyRelevant(alt) {
			return alt
		}
		return ""
	})
}

// culturallyRelevant reports whether alt text contains a cultural keyword
// or a diacritical vowel.
func (r *Reducer) culturallyRelevant(alt string) bool {
	if accentedVowelRe.MatchString(alt) {
		return true
	}
	lower := strings.ToLower(alt)
	for _, kw := range r.keywords {
		if containsWord(lower, kw) {
			return true
		}
	}
	return false
}

// containsWord reports whether term occurs in text on word boundaries.
func containsWord(text, term string) bool {
	for i := 0; i+len(term) <= len(text); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			return false
		}
		start := i + j
		if boundedAt(text, start, start+len(term)) {
			return true
		}
		i = start + 1
	}
	return false
}

// cleanup applies the final whitespace and punctuation repairs, in order.
func cleanup(text string) string {
	text = hspaceRe.ReplaceAllString(text, " ")
	text = newlinePadRe.ReplaceAllString(text, "\n")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	text = sentenceGapRe.ReplaceAllString(text, "$1 $2")
	text = prePunctRe.ReplaceAllString(text, "$1")
	text = caseGapRe.ReplaceAllString(text, "$1 $2")
	text = apostropheRe.ReplaceAllString(text, "'")
	text = elisionSpaceRe.ReplaceAllString(text, "$1'$2")
	text = elisionCaseRe.ReplaceAllString(text, "$1'$2")
	return text
}
