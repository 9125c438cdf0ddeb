// Package markup reduces lightweight-markup documents to plain text and
// extracts positioned structural elements. Every function is pure and total:
// malformed input degrades to a partial result, never an error.
package markup

import "strings"

// replacer canonicalizes Unicode punctuation variants to their ASCII
// equivalents. None of the replacements produce characters the replacer
// would rewrite again, which makes Normalize idempotent.
var replacer = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...", // horizontal ellipsis
	" ", " ", // non-breaking space
)

// Normalize canonicalizes Unicode punctuation variants in text. It is a pure
// character substitution with no structural awareness, defined for every
// input including the empty string.
func Normalize(text string) string {
	return replacer.Replace(text)
}
