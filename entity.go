package testo

import "context"

// Entity is a typed span over a text, as returned by the external
// extraction service. Offsets are byte offsets into the UTF-8 text;
// the span covers [StartOffset, EndOffset).
type Entity struct {
	Text        string `json:"text"`
	Type        string `json:"type"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
}

// Triple is a subject-predicate-object semantic relation, as returned by the
// external extraction service.
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// EntityExtractor requests entity and triple extraction from a remote AI
// service. Implementations own the network call, credentials, and failure
// reporting; this module only prepares the text it receives.
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, plainText string) ([]Entity, []Triple, error)
}

// Renderer turns a markup-annotated string into a sanitized visual document.
// Rendering and sanitization are owned by the UI collaborator; this module
// only produces the annotated string (see Parser.Highlight).
type Renderer interface {
	RenderSafeHTML(markup string) (string, error)
}
