package lingua

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/aferrari/testo"
)

var accentedVowelRe = regexp.MustCompile(`[àèéìíòóùú]`)

// Profile computes the linguistic profile of plain text. The four signal
// groups are mutually independent and read-only over the same text, so they
// run concurrently; clamping and tie-break semantics do not depend on
// execution order. Empty input yields zero counts, confidence 0, and
// formality mixed.
func Profile(plainText string) testo.LinguisticProfile {
	tokens := Tokenize(plainText)
	lower := strings.ToLower(plainText)

	profile := testo.LinguisticProfile{
		WordCount:          len(tokens),
		ReadingTimeMinutes: ReadingTime(len(tokens)),
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		profile.LanguageConfidence = languageConfidence(tokens, lower)
		return nil
	})
	g.Go(func() error {
		profile.Formality = formality(lower)
		return nil
	})
	g.Go(func() error {
		profile.GeographicReferences = findTerms(lower, GeographicTerms)
		return nil
	})
	g.Go(func() error {
		profile.CulturalReferences = findTerms(lower, CulturalTerms)
		profile.DialectalIndicators = findTerms(lower, DialectalTerms)
		return nil
	})
	_ = g.Wait() // the signal functions cannot fail

	return profile
}

// languageConfidence is a weighted sum of three clamped terms:
// function-word ratio scaled by 50, accented-vowel density scaled by 20 and
// capped at 15, and domain-term hits scaled by 2 and capped at 10. The
// final value is clamped to [0,100].
func languageConfidence(tokens []string, lower string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	functionHits := 0
	for _, token := range tokens {
		if _, ok := FunctionWords[strings.ToLower(token)]; ok {
			functionHits++
		}
	}
	score := float64(functionHits) / float64(len(tokens)) * 50

	accents := len(accentedVowelRe.FindAllString(lower, -1))
	accentScore := float64(accents) / float64(len(tokens)) * 20
	if accentScore > 15 {
		accentScore = 15
	}
	score += accentScore

	domainHits := 0
	for _, term := range GeographicTerms {
		domainHits += countTerm(lower, term)
	}
	for _, term := range CulturalTerms {
		domainHits += countTerm(lower, term)
	}
	domainScore := float64(domainHits) * 2
	if domainScore > 10 {
		domainScore = 10
	}
	score += domainScore

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// formality classifies register from marker counts. Academic wins only by
// strictly exceeding both other counts; formal and informal win by strictly
// exceeding each other; everything else, including all-zero, is mixed.
func formality(lower string) testo.Formality {
	formal, informal, academic := 0, 0, 0
	for _, term := range FormalMarkers {
		formal += countTerm(lower, term)
	}
	for _, term := range InformalMarkers {
		informal += countTerm(lower, term)
	}
	for _, term := range AcademicMarkers {
		academic += countTerm(lower, term)
	}

	switch {
	case academic > formal && academic > informal:
		return testo.FormalityAcademic
	case formal > informal:
		return testo.FormalityFormal
	case informal > formal:
		return testo.FormalityInformal
	default:
		return testo.FormalityMixed
	}
}

// findTerms returns the lexicon terms present in the lower-cased text,
// sorted alphabetically. Terms are unique within a lexicon so the result
// is deduplicated by construction.
func findTerms(lower string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if countTerm(lower, term) > 0 {
			found = append(found, term)
		}
	}
	sort.Strings(found)
	return found
}

// countTerm counts non-overlapping word-bounded occurrences of term in
// text. Both are expected to be lower-cased.
func countTerm(text, term string) int {
	count := 0
	for i := 0; i+len(term) <= len(text); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(term)
		if bounded(text, start, end) {
			count++
			i = end
		} else {
			i = start + 1
		}
	}
	return count
}

// bounded reports whether [start, end) sits on word boundaries.
func bounded(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
