package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aferrari/testo"
)

// Compile-time interface verification.
var _ testo.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements testo.AnalysisService using SQLite.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// CreateAnalysis stores a new analysis.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *testo.Analysis) error {
	if err := analysis.Validate(); err != nil {
		return err
	}

	analysis.ID = uuid.New().String()
	analysis.CreatedAt = time.Now().UTC()
	analysis.ContentHash = HashContent(analysis.RawText)
	if analysis.Formality == "" {
		analysis.Formality = testo.FormalityMixed
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, title, raw_text, plain_text, content_hash, word_count, language_confidence, formality, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, analysis.ID, analysis.Title, analysis.RawText, analysis.PlainText, analysis.ContentHash,
		analysis.WordCount, analysis.LanguageConfidence, string(analysis.Formality),
		analysis.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*testo.Analysis, error) {
	var analysis testo.Analysis
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, raw_text, plain_text, content_hash, word_count, language_confidence, formality, created_at
		FROM analyses
		WHERE id = ?
	`, id).Scan(&analysis.ID, &analysis.Title, &analysis.RawText, &analysis.PlainText,
		&analysis.ContentHash, &analysis.WordCount, &analysis.LanguageConfidence,
		&analysis.Formality, &createdAt)

	if err == sql.ErrNoRows {
		return nil, testo.Errorf(testo.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}

	analysis.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &analysis, nil
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter testo.AnalysisFilter) ([]*testo.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, raw_text, plain_text, content_hash, word_count, language_confidence, formality, created_at FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*testo.Analysis
	for rows.Next() {
		var analysis testo.Analysis
		var createdAt string

		if err := rows.Scan(&analysis.ID, &analysis.Title, &analysis.RawText, &analysis.PlainText,
			&analysis.ContentHash, &analysis.WordCount, &analysis.LanguageConfidence,
			&analysis.Formality, &createdAt); err != nil {
			return nil, err
		}

		analysis.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		analyses = append(analyses, &analysis)
	}

	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an analysis.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return testo.Errorf(testo.ENOTFOUND, "analysis not found")
	}

	return nil
}
