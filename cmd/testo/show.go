package main

import (
	"fmt"

	"github.com/aferrari/testo"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		if testo.ErrorCode(err) == testo.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found. Use 'testo history' to list saved analyses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", testo.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:          %s\n", analysis.ID)
	if analysis.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title:       %s\n", analysis.Title)
	}
	fmt.Fprintf(deps.Stdout, "Created:     %s\n", analysis.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(deps.Stdout, "Words:       %d\n", analysis.WordCount)
	fmt.Fprintf(deps.Stdout, "Confidence:  %.1f/100 Italian\n", analysis.LanguageConfidence)
	fmt.Fprintf(deps.Stdout, "Formality:   %s\n", analysis.Formality)

	if c.Full {
		fmt.Fprintf(deps.Stdout, "\n%s\n", analysis.PlainText)
	}

	return nil
}
