package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aferrari/testo"
	"github.com/aferrari/testo/bloom"
	"github.com/aferrari/testo/sqlite"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	raw, err := readInput(deps, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.HTML {
		raw, err = ingestHTML(deps, raw)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", testo.ErrorMessage(err))
			return err
		}
	}

	doc := deps.Parser.Parse(raw)

	if c.JSON {
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
	} else {
		printSummary(deps.Stdout, doc)
	}

	if c.Save {
		return saveAnalysis(deps, doc, c.Title)
	}
	return nil
}

// ingestHTML reduces an HTML page to markdown: main-content extraction
// first, then conversion.
func ingestHTML(deps *Dependencies, rawHTML string) (string, error) {
	result, err := deps.Extractor.Extract(rawHTML)
	if err != nil || strings.TrimSpace(result.ContentHTML) == "" {
		// Statistical extraction found nothing; fall back to selectors.
		result, err = fallbackExtractor().Extract(rawHTML)
		if err != nil {
			return "", err
		}
	}
	return deps.Converter.Convert(result.ContentHTML)
}

// saveAnalysis stores the run in history unless the same content was
// already analyzed. A Bloom filter over stored content hashes answers the
// common "never seen" case without a second query.
func saveAnalysis(deps *Dependencies, doc *testo.ParsedDocument, title string) error {
	existing, err := deps.Analyses.FindAnalyses(deps.Ctx, testo.AnalysisFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testo.ErrorMessage(err))
		return err
	}

	seen := bloom.NewFilter(uint(len(existing))+1000, 0.01)
	for _, a := range existing {
		seen.Add(a.ContentHash)
	}

	hash := sqlite.HashContent(doc.RawText)
	if seen.Test(hash) {
		dupes, err := deps.Analyses.FindAnalyses(deps.Ctx, testo.AnalysisFilter{ContentHash: &hash, Limit: 1})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", testo.ErrorMessage(err))
			return err
		}
		if len(dupes) > 0 {
			fmt.Fprintf(deps.Stdout, "Already analyzed as %s, not saved again.\n", dupes[0].ID)
			return nil
		}
	}

	analysis := &testo.Analysis{
		Title:              title,
		RawText:            doc.RawText,
		PlainText:          doc.PlainText,
		WordCount:          doc.Profile.WordCount,
		LanguageConfidence: doc.Profile.LanguageConfidence,
		Formality:          doc.Profile.Formality,
	}
	if err := deps.Analyses.CreateAnalysis(deps.Ctx, analysis); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testo.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved analysis %s\n", analysis.ID)
	return nil
}

func printSummary(w io.Writer, doc *testo.ParsedDocument) {
	p := doc.Profile
	fmt.Fprintf(w, "Words:        %d (~%d min)\n", p.WordCount, p.ReadingTimeMinutes)
	fmt.Fprintf(w, "Sentences:    %d\n", len(doc.Sentences))
	fmt.Fprintf(w, "Confidence:   %.1f/100 Italian\n", p.LanguageConfidence)
	fmt.Fprintf(w, "Formality:    %s\n", p.Formality)
	fmt.Fprintf(w, "Structure:    %d headings, %d links, %d images, %d code blocks\n",
		len(doc.Structure.Headings), len(doc.Structure.Links),
		len(doc.Structure.Images), len(doc.Structure.CodeBlocks))
	if len(p.GeographicReferences) > 0 {
		fmt.Fprintf(w, "Geographic:   %s\n", strings.Join(p.GeographicReferences, ", "))
	}
	if len(p.CulturalReferences) > 0 {
		fmt.Fprintf(w, "Cultural:     %s\n", strings.Join(p.CulturalReferences, ", "))
	}
	if len(p.DialectalIndicators) > 0 {
		fmt.Fprintf(w, "Dialectal:    %s\n", strings.Join(p.DialectalIndicators, ", "))
	}
}

// readInput reads a file argument, with "-" meaning stdin.
func readInput(deps *Dependencies, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}
