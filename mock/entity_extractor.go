package mock

import (
	"context"

	"github.com/aferrari/testo"
)

var _ testo.EntityExtractor = (*EntityExtractor)(nil)

// EntityExtractor is a mock implementation of testo.EntityExtractor.
type EntityExtractor struct {
	ExtractEntitiesFn func(ctx context.Context, plainText string) ([]testo.Entity, []testo.Triple, error)
}

func (e *EntityExtractor) ExtractEntities(ctx context.Context, plainText string) ([]testo.Entity, []testo.Triple, error) {
	return e.ExtractEntitiesFn(ctx, plainText)
}
