package mock

import "github.com/aferrari/testo"

var _ testo.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of testo.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*testo.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string) (*testo.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}
