package main

import (
	"fmt"

	"github.com/aferrari/testo"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Analyses.DeleteAnalysis(deps.Ctx, c.ID); err != nil {
		if testo.ErrorCode(err) == testo.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", testo.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted analysis %s\n", c.ID)
	return nil
}
