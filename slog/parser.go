// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/aferrari/testo"
)

// Ensure LoggingParser implements testo.Parser.
var _ testo.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with timing and summary logging. The wrapped
// parser stays pure; all observability lives here.
type LoggingParser struct {
	next   testo.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next testo.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs a run summary.
func (p *LoggingParser) Parse(raw string) *testo.ParsedDocument {
	begin := time.Now()
	doc := p.next.Parse(raw)
	p.logger.Info("document parsed",
		"bytes", len(raw),
		"words", doc.Profile.WordCount,
		"sentences", len(doc.Sentences),
		"confidence", doc.Profile.LanguageConfidence,
		"formality", string(doc.Profile.Formality),
		"duration", time.Since(begin),
	)
	return doc
}

// Highlight delegates to the wrapped parser and logs rejected spans.
func (p *LoggingParser) Highlight(raw string, entities []testo.Entity) (string, error) {
	begin := time.Now()
	result, err := p.next.Highlight(raw, entities)
	if err != nil {
		p.logger.Warn("highlight rejected",
			"entities", len(entities),
			"error", testo.ErrorMessage(err),
		)
		return "", err
	}
	p.logger.Debug("entities highlighted",
		"entities", len(entities),
		"duration", time.Since(begin),
	)
	return result, nil
}
