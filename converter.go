package testo

// Converter converts HTML content to Markdown so it can enter the analysis
// pipeline. Implementations hide the conversion library.
type Converter interface {
	Convert(html string) (string, error)
}

// ExtractResult is the main content extracted from a full HTML page.
type ExtractResult struct {
	Title       string
	ContentHTML string
}

// Extractor pulls the main content out of a raw HTML page, discarding
// navigation, sidebars, and other chrome. Implementations hide the
// extraction strategy.
type Extractor interface {
	Extract(rawHTML string) (*ExtractResult, error)
}
