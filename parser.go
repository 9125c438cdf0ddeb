package testo

// Parser analyzes raw markup documents.
type Parser interface {
	// Parse runs the full analysis pipeline:
	// normalize -> {structure, plain text} -> sentences -> profile.
	// It is total: malformed or adversarial input degrades gracefully and
	// never fails.
	Parse(raw string) *ParsedDocument

	// Highlight replaces each entity span of raw with a wrapped, typed span
	// suitable for rendering. Spans are processed in descending start-offset
	// order so insertions never invalidate offsets still to be processed.
	// Returns EINVALID for out-of-bounds or overlapping spans.
	Highlight(raw string, entities []Entity) (string, error)
}
