// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import "github.com/aferrari/testo"

var _ testo.Parser = (*Parser)(nil)

// Parser is a mock implementation of testo.Parser.
type Parser struct {
	ParseFn     func(raw string) *testo.ParsedDocument
	HighlightFn func(raw string, entities []testo.Entity) (string, error)
}

func (p *Parser) Parse(raw string) *testo.ParsedDocument {
	return p.ParseFn(raw)
}

func (p *Parser) Highlight(raw string, entities []testo.Entity) (string, error) {
	return p.HighlightFn(raw, entities)
}
