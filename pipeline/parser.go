// Package pipeline composes the markup and lingua stages into the document
// analysis pipeline and hosts the entity-highlighting transform.
package pipeline

import (
	"github.com/aferrari/testo"
	"github.com/aferrari/testo/lingua"
	"github.com/aferrari/testo/markup"
)

// Ensure Parser implements testo.Parser at compile time.
var _ testo.Parser = (*Parser)(nil)

// Parser runs the analysis pipeline. It holds no mutable state across calls
// and is safe for concurrent use on independent inputs.
type Parser struct {
	reducer *markup.Reducer
}

// New creates a Parser. Optional cultural keywords override the default
// image alt-text retention set.
func New(culturalKeywords ...string) *Parser {
	return &Parser{reducer: markup.NewReducer(culturalKeywords...)}
}

// Parse runs normalize -> {structure, reduce} -> segment -> profile and
// assembles the result. It is deterministic, performs no I/O, and never
// fails: malformed input degrades to a partial result.
func (p *Parser) Parse(raw string) *testo.ParsedDocument {
	normalized := markup.Normalize(raw)

	structure := markup.ExtractStructure(normalized)
	plain := p.reducer.Reduce(normalized)

	return &testo.ParsedDocument{
		RawText:   raw,
		PlainText: plain,
		Structure: structure,
		Sentences: lingua.Segment(plain),
		Profile:   lingua.Profile(plain),
	}
}
