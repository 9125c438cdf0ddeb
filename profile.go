package testo

// Formality classifies the register of a text.
type Formality string

// Formality levels. Mixed is the default and covers ties and texts with no
// register markers at all.
const (
	FormalityFormal   Formality = "formal"
	FormalityInformal Formality = "informal"
	FormalityAcademic Formality = "academic"
	FormalityMixed    Formality = "mixed"
)

// LinguisticProfile holds heuristic signals computed from a document's plain
// text. It is purely derived and immutable once computed.
type LinguisticProfile struct {
	// Confidence in [0,100] that the text is Italian. A low value is a
	// signal, not an error.
	LanguageConfidence float64 `json:"languageConfidence"`

	// Register classification with a defined tie-break order.
	Formality Formality `json:"formality"`

	// Deduplicated lexicon hits, sorted alphabetically.
	GeographicReferences []string `json:"geographicReferences,omitempty"`
	CulturalReferences   []string `json:"culturalReferences,omitempty"`
	DialectalIndicators  []string `json:"dialectalIndicators,omitempty"`

	// Token count after tokenization (tokens of length <= 1 and purely
	// numeric tokens are discarded).
	WordCount int `json:"wordCount"`

	// Ceiling of WordCount / 180 words per minute.
	ReadingTimeMinutes int `json:"readingTimeMinutes"`
}
