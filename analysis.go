package testo

import (
	"context"
	"time"
)

// Analysis is a stored summary of one analysis run, kept so past results can
// be browsed from the CLI.
type Analysis struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	RawText            string    `json:"rawText"`
	PlainText          string    `json:"plainText"`
	ContentHash        string    `json:"contentHash"`
	WordCount          int       `json:"wordCount"`
	LanguageConfidence float64   `json:"languageConfidence"`
	Formality          Formality `json:"formality"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.RawText == "" {
		return Errorf(EINVALID, "analysis raw text required")
	}
	return nil
}

// AnalysisService represents a service for managing stored analyses.
type AnalysisService interface {
	// CreateAnalysis stores a new analysis. The service assigns the ID,
	// content hash, and creation time.
	CreateAnalysis(ctx context.Context, analysis *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if the analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis.
	// Returns ENOTFOUND if the analysis does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID          *string `json:"id"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
