package mock

import "github.com/aferrari/testo"

var _ testo.Converter = (*Converter)(nil)

// Converter is a mock implementation of testo.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
