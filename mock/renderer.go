package mock

import "github.com/aferrari/testo"

var _ testo.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of testo.Renderer.
type Renderer struct {
	RenderSafeHTMLFn func(markup string) (string, error)
}

func (r *Renderer) RenderSafeHTML(markup string) (string, error) {
	return r.RenderSafeHTMLFn(markup)
}
