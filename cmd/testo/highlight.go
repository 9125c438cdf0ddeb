package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aferrari/testo"
)

// Run executes the highlight command. Entity spans come from a JSON file as
// delivered by the external extraction service.
func (c *HighlightCmd) Run(deps *Dependencies) error {
	raw, err := readInput(deps, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	data, err := os.ReadFile(c.Entities)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %q: %s\n", c.Entities, err)
		return err
	}

	var entities []testo.Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid entity JSON: %s\n", err)
		return testo.Errorf(testo.EINVALID, "invalid entity JSON: %v", err)
	}

	result, err := deps.Parser.Highlight(raw, entities)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testo.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result)
	return nil
}
