// Package testo analyzes Italian-language documents written in lightweight
// markup. It reduces markup to a plain-text rendering suitable for language
// analysis, extracts positioned structural elements (headings, links, images,
// fenced code blocks), segments the text into sentences, and computes
// heuristic linguistic signals such as language confidence and formality.
// The result is handed to external collaborators: an AI entity-extraction
// client, a result exporter, and a highlighting renderer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, trafilatura/), and the
// markup-analysis core lives in markup/, lingua/, and pipeline/.
package testo
