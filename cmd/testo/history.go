package main

import (
	"fmt"

	"github.com/aferrari/testo"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, testo.AnalysisFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testo.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved analyses. Use 'testo analyze --save' to create one.")
		return nil
	}

	for _, a := range analyses {
		title := a.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %4d words  %5.1f  %-8s  %s\n",
			a.ID, a.CreatedAt.Format("2006-01-02 15:04"), a.WordCount,
			a.LanguageConfidence, a.Formality, title)
	}

	return nil
}
