// Package goquery provides a selector-based content extractor used as a
// fallback when statistical extraction yields nothing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aferrari/testo"
)

// Ensure Extractor implements testo.Extractor at compile time.
var _ testo.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first non-empty match wins.
var contentSelectors = []string{
	"main",
	"article",
	"[role='main']",
	"#content",
	".content",
}

// Extractor pulls the main content region out of an HTML page using CSS
// selectors, falling back to the whole body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the inner HTML of the first matching content region.
func (e *Extractor) Extract(rawHTML string) (*testo.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, testo.Errorf(testo.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, testo.Errorf(testo.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content, err := sel.Html()
		if err != nil {
			continue
		}
		if strings.TrimSpace(content) != "" {
			return &testo.ExtractResult{Title: title, ContentHTML: content}, nil
		}
	}

	body, err := doc.Find("body").First().Html()
	if err != nil || strings.TrimSpace(body) == "" {
		body = rawHTML
	}

	return &testo.ExtractResult{Title: title, ContentHTML: body}, nil
}
