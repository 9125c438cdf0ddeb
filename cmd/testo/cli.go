package main

import (
	"context"
	"io"

	"github.com/aferrari/testo"
	"github.com/aferrari/testo/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Analyses  testo.AnalysisService
	Parser    testo.Parser
	Converter testo.Converter
	Extractor testo.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze   AnalyzeCmd   `cmd:"" help:"Analyze a markup document"`
	History   HistoryCmd   `cmd:"" help:"List saved analyses"`
	Show      ShowCmd      `cmd:"" help:"Show a saved analysis"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a saved analysis"`
	Highlight HighlightCmd `cmd:"" help:"Wrap entity spans in a text for rendering"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Path  string `arg:"" help:"Input file, or '-' for stdin"`
	HTML  bool   `help:"Treat input as HTML and extract/convert it first"`
	JSON  bool   `short:"j" help:"Print the full parsed document as JSON"`
	Save  bool   `short:"s" help:"Save the analysis to history"`
	Title string `short:"t" help:"Title for the saved analysis"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum entries to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Analysis ID"`
	Full bool   `help:"Show the full plain text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Analysis ID"`
}

// HighlightCmd is the "highlight" subcommand.
type HighlightCmd struct {
	Path     string `arg:"" help:"Text file, or '-' for stdin"`
	Entities string `arg:"" help:"JSON file with entity spans"`
}
