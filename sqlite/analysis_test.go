package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrari/testo"
	"github.com/aferrari/testo/sqlite"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAnalysisService_CreateAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("creates analysis with generated ID, timestamp, and hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		analysis := &testo.Analysis{
			Title:              "Milano",
			RawText:            "# Milano\nMilano è la capitale economica d'Italia.",
			PlainText:          "Milano\nMilano è la capitale economica d'Italia.",
			WordCount:          8,
			LanguageConfidence: 42.5,
			Formality:          testo.FormalityMixed,
		}

		err := svc.CreateAnalysis(ctx, analysis)
		require.NoError(t, err)

		assert.NotEmpty(t, analysis.ID, "ID should be generated")
		assert.False(t, analysis.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.Equal(t, sqlite.HashContent(analysis.RawText), analysis.ContentHash)
	})

	t.Run("defaults formality to mixed", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		analysis := &testo.Analysis{RawText: "testo semplice"}

		require.NoError(t, svc.CreateAnalysis(ctx, analysis))
		assert.Equal(t, testo.FormalityMixed, analysis.Formality)
	})

	t.Run("returns error for invalid analysis", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		analysis := &testo.Analysis{} // missing raw text

		err := svc.CreateAnalysis(ctx, analysis)
		require.Error(t, err)
		assert.Equal(t, testo.EINVALID, testo.ErrorCode(err))
	})
}

func TestAnalysisService_FindAnalysisByID(t *testing.T) {
	t.Parallel()

	t.Run("returns analysis when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		analysis := &testo.Analysis{
			Title:              "Roma",
			RawText:            "Roma è la capitale d'Italia.",
			PlainText:          "Roma è la capitale d'Italia.",
			WordCount:          5,
			LanguageConfidence: 38.2,
			Formality:          testo.FormalityFormal,
		}
		require.NoError(t, svc.CreateAnalysis(ctx, analysis))

		found, err := svc.FindAnalysisByID(ctx, analysis.ID)
		require.NoError(t, err)
		assert.Equal(t, analysis.ID, found.ID)
		assert.Equal(t, analysis.Title, found.Title)
		assert.Equal(t, analysis.RawText, found.RawText)
		assert.Equal(t, analysis.PlainText, found.PlainText)
		assert.Equal(t, analysis.ContentHash, found.ContentHash)
		assert.Equal(t, analysis.WordCount, found.WordCount)
		assert.Equal(t, analysis.LanguageConfidence, found.LanguageConfidence)
		assert.Equal(t, analysis.Formality, found.Formality)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)

		_, err := svc.FindAnalysisByID(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, testo.ENOTFOUND, testo.ErrorCode(err))
	})
}

func TestAnalysisService_FindAnalyses(t *testing.T) {
	t.Parallel()

	t.Run("returns all analyses with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		texts := []string{"Primo testo.", "Secondo testo.", "Terzo testo."}
		for _, text := range texts {
			require.NoError(t, svc.CreateAnalysis(ctx, &testo.Analysis{RawText: text}))
		}

		analyses, err := svc.FindAnalyses(ctx, testo.AnalysisFilter{})
		require.NoError(t, err)
		assert.Len(t, analyses, 3)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		a1 := &testo.Analysis{RawText: "Roma è la capitale."}
		a2 := &testo.Analysis{RawText: "Milano è più grande."}
		require.NoError(t, svc.CreateAnalysis(ctx, a1))
		require.NoError(t, svc.CreateAnalysis(ctx, a2))

		analyses, err := svc.FindAnalyses(ctx, testo.AnalysisFilter{ContentHash: &a1.ContentHash})
		require.NoError(t, err)
		require.Len(t, analyses, 1)
		assert.Equal(t, a1.ID, analyses[0].ID)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		a1 := &testo.Analysis{RawText: "Primo."}
		a2 := &testo.Analysis{RawText: "Secondo."}
		require.NoError(t, svc.CreateAnalysis(ctx, a1))
		require.NoError(t, svc.CreateAnalysis(ctx, a2))

		analyses, err := svc.FindAnalyses(ctx, testo.AnalysisFilter{ID: &a2.ID})
		require.NoError(t, err)
		require.Len(t, analyses, 1)
		assert.Equal(t, a2.ID, analyses[0].ID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			analysis := &testo.Analysis{RawText: "testo " + string(rune('a'+i))}
			require.NoError(t, svc.CreateAnalysis(ctx, analysis))
		}

		analyses, err := svc.FindAnalyses(ctx, testo.AnalysisFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, analyses, 2)
	})
}

func TestAnalysisService_DeleteAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing analysis", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		analysis := &testo.Analysis{RawText: "testo da cancellare"}
		require.NoError(t, svc.CreateAnalysis(ctx, analysis))

		err := svc.DeleteAnalysis(ctx, analysis.ID)
		require.NoError(t, err)

		_, err = svc.FindAnalysisByID(ctx, analysis.ID)
		assert.Equal(t, testo.ENOTFOUND, testo.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)

		err := svc.DeleteAnalysis(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, testo.ENOTFOUND, testo.ErrorCode(err))
	})
}
