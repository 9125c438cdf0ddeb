package pipeline

import (
	"html"
	"sort"
	"strings"

	"github.com/aferrari/testo"
)

// Highlight wraps each entity span of raw in a typed span element. Entities
// are processed in descending start-offset order as an explicit
// sort-then-fold over immutable slices: every insertion happens at or after
// positions still to be processed, so no earlier offset is ever
// invalidated.
//
// Offsets are byte offsets over raw. Out-of-bounds and overlapping spans
// are rejected with EINVALID; reverse-order insertion cannot make
// overlapping spans well defined, so they are refused rather than guessed
// at.
func (p *Parser) Highlight(raw string, entities []testo.Entity) (string, error) {
	if len(entities) == 0 {
		return raw, nil
	}

	spans := make([]testo.Entity, len(entities))
	copy(spans, entities)
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].StartOffset > spans[j].StartOffset
	})

	for _, e := range spans {
		if e.StartOffset < 0 || e.EndOffset > len(raw) || e.StartOffset >= e.EndOffset {
			return "", testo.Errorf(testo.EINVALID,
				"entity span [%d,%d) out of bounds for text of length %d",
				e.StartOffset, e.EndOffset, len(raw))
		}
	}
	for i := 0; i < len(spans)-1; i++ {
		// spans[i+1] starts at or before spans[i] after the descending sort.
		if spans[i+1].EndOffset > spans[i].StartOffset {
			return "", testo.Errorf(testo.EINVALID,
				"overlapping entity spans [%d,%d) and [%d,%d)",
				spans[i+1].StartOffset, spans[i+1].EndOffset,
				spans[i].StartOffset, spans[i].EndOffset)
		}
	}

	result := raw
	for _, e := range spans {
		var sb strings.Builder
		sb.WriteString(result[:e.StartOffset])
		sb.WriteString(`<span class="entity" data-entity-type="`)
		sb.WriteString(html.EscapeString(e.Type))
		sb.WriteString(`">`)
		sb.WriteString(result[e.StartOffset:e.EndOffset])
		sb.WriteString(`</span>`)
		sb.WriteString(result[e.EndOffset:])
		result = sb.String()
	}

	return result, nil
}
