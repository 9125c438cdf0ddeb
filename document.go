package testo

// ParsedDocument is the complete result of analyzing one markup document.
// It is assembled once by the parser and owned by the caller; nothing in
// this package retains or mutates it after the call returns.
type ParsedDocument struct {
	// The raw markup exactly as supplied.
	RawText string `json:"rawText"`

	// Markup-free rendering of the document, linguistically intact.
	PlainText string `json:"plainText"`

	// Positioned structural elements found in the normalized text.
	Structure Structure `json:"structure"`

	// Sentences of PlainText after abbreviation-aware merging.
	Sentences []string `json:"sentences"`

	// Heuristic linguistic signals derived from PlainText.
	Profile LinguisticProfile `json:"profile"`
}

// Structure holds the structural elements extracted from a document.
// Each kind is scanned independently and listed in ascending Position order;
// ordering across kinds is not meaningful.
type Structure struct {
	Headings   []Heading   `json:"headings,omitempty"`
	Links      []Link      `json:"links,omitempty"`
	Images     []Image     `json:"images,omitempty"`
	CodeBlocks []CodeBlock `json:"codeBlocks,omitempty"`
}

// Heading is a markdown heading (H1-H6).
//
// Position fields throughout this package are byte offsets into the
// normalized text at which the construct's opening token begins.
type Heading struct {
	Level    int    `json:"level"`
	Text     string `json:"text"`
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// Link is an inline link construct.
type Link struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
	Position int    `json:"position"`
}

// Image is an inline image construct.
type Image struct {
	Alt      string `json:"alt"`
	Src      string `json:"src"`
	Title    string `json:"title,omitempty"`
	Position int    `json:"position"`
}

// CodeBlock is a fenced code region.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Position int    `json:"position"`
}
