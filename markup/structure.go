package markup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/aferrari/testo"
)

// headingRe matches a line beginning with 1-6 # characters followed by
// whitespace. The remainder of the line is the heading text.
var headingRe = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+)$`)

// linkRe and imageRe match inline constructs with an optional quoted title.
// The URL part stops at whitespace or a closing parenthesis.
var (
	linkRe  = regexp.MustCompile(`\[([^\]]*)\]\(([^()\s]+)(?:[ \t]+"([^"]*)")?\)`)
	imageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^()\s]+)(?:[ \t]+"([^"]*)")?\)`)
)

// ExtractStructure runs the four extraction passes over normalized text.
// Each kind is scanned independently and returned in ascending position
// order. Malformed constructs are silently skipped; the function never
// fails.
func ExtractStructure(text string) testo.Structure {
	blocks, fences := scanCodeBlocks(text)
	return testo.Structure{
		Headings:   headings(text, fences),
		Links:      links(text, fences),
		Images:     images(text, fences),
		CodeBlocks: blocks,
	}
}

// ExtractHeadings returns all headings with their byte positions.
// Fenced code regions are ignored so a # comment inside code is not
// mistaken for a heading.
func ExtractHeadings(text string) []testo.Heading {
	_, fences := scanCodeBlocks(text)
	return headings(text, fences)
}

// ExtractLinks returns all inline links with their byte positions.
func ExtractLinks(text string) []testo.Link {
	_, fences := scanCodeBlocks(text)
	return links(text, fences)
}

// ExtractImages returns all inline images with their byte positions.
func ExtractImages(text string) []testo.Image {
	_, fences := scanCodeBlocks(text)
	return images(text, fences)
}

// ExtractCodeBlocks returns all terminated fenced code blocks. An opening
// fence with no matching close is not emitted.
func ExtractCodeBlocks(text string) []testo.CodeBlock {
	blocks, _ := scanCodeBlocks(text)
	return blocks
}

func headings(text string, fences []span) []testo.Heading {
	matches := headingRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	result := make([]testo.Heading, 0, len(matches))
	for _, m := range matches {
		if inSpans(m[0], fences) {
			continue
		}
		title := strings.TrimSpace(text[m[4]:m[5]])
		result = append(result, testo.Heading{
			Level:    m[3] - m[2],
			Text:     title,
			ID:       Slug(title),
			Position: m[0],
		})
	}
	return result
}

func links(text string, fences []span) []testo.Link {
	matches := linkRe.FindAllStringSubmatchIndex(text, -1)
	var result []testo.Link
	for _, m := range matches {
		// An image construct shares the link syntax after its leading bang.
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		if inSpans(m[0], fences) {
			continue
		}
		link := testo.Link{
			Text:     text[m[2]:m[3]],
			URL:      text[m[4]:m[5]],
			Position: m[0],
		}
		if m[6] >= 0 {
			link.Title = text[m[6]:m[7]]
		}
		result = append(result, link)
	}
	return result
}

func images(text string, fences []span) []testo.Image {
	matches := imageRe.FindAllStringSubmatchIndex(text, -1)
	var result []testo.Image
	for _, m := range matches {
		if inSpans(m[0], fences) {
			continue
		}
		img := testo.Image{
			Alt:      text[m[2]:m[3]],
			Src:      text[m[4]:m[5]],
			Position: m[0],
		}
		if m[6] >= 0 {
			img.Title = text[m[6]:m[7]]
		}
		result = append(result, img)
	}
	return result
}

// span is a half-open byte range [start, end) covering a fenced region
// including its fences.
type span struct {
	start, end int
}

func inSpans(pos int, spans []span) bool {
	for _, s := range spans {
		if pos >= s.start && pos < s.end {
			return true
		}
	}
	return false
}

// scanCodeBlocks walks the text line by line tracking fence state. It
// returns the terminated code blocks and the byte ranges they cover.
func scanCodeBlocks(text string) ([]testo.CodeBlock, []span) {
	var (
		blocks       []testo.CodeBlock
		spans        []span
		inFence      bool
		openPos      int
		lang         string
		contentStart int
	)

	lineStart := 0
	for lineStart <= len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		var line string
		var next int
		if lineEnd < 0 {
			line = text[lineStart:]
			next = len(text) + 1
		} else {
			line = text[lineStart : lineStart+lineEnd]
			next = lineStart + lineEnd + 1
		}

		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "```") {
			indent := len(line) - len(trimmed)
			if !inFence {
				inFence = true
				openPos = lineStart + indent
				lang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				contentStart = next
			} else {
				var code string
				if contentStart < lineStart {
					code = text[contentStart:lineStart]
				}
				blocks = append(blocks, testo.CodeBlock{
					Language: lang,
					Code:     trimBlankLines(code),
					Position: openPos,
				})
				spans = append(spans, span{start: openPos, end: lineStart + len(line)})
				inFence = false
			}
		}

		lineStart = next
	}

	// An unterminated fence is not a code block.
	return blocks, spans
}

// trimBlankLines removes leading and trailing blank lines from code content.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// Slug derives a URL-safe identifier from a heading title: lower-cased,
// diacritics folded to ASCII, characters outside [a-z0-9 -] removed, and
// whitespace runs collapsed to single hyphens.
func Slug(title string) string {
	lower := foldDiacritics(strings.ToLower(title))

	var sb strings.Builder
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || r == '-' || r == '\t' {
			sb.WriteRune(r)
		}
	}

	return strings.Trim(strings.Join(strings.Fields(sb.String()), "-"), "-")
}

// foldDiacritics strips combining marks so accented vowels reduce to their
// ASCII base letter.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// isWordRune reports whether r can appear inside a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundedAt reports whether the term occupying [start, end) in text sits on
// word boundaries.
func boundedAt(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}
