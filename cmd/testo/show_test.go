package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrari/testo"
	main "github.com/aferrari/testo/cmd/testo"
	"github.com/aferrari/testo/mock"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	sample := &testo.Analysis{
		ID:                 "an-123",
		Title:              "Storia di Milano",
		PlainText:          "Milano è la capitale economica d'Italia.",
		WordCount:          7,
		LanguageConfidence: 55.5,
		Formality:          testo.FormalityFormal,
		CreatedAt:          time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	t.Run("prints the analysis summary", func(t *testing.T) {
		t.Parallel()

		analyses := &mock.AnalysisService{
			FindAnalysisByIDFn: func(_ context.Context, id string) (*testo.Analysis, error) {
				assert.Equal(t, "an-123", id)
				return sample, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Analyses: analyses,
		}

		cmd := &main.ShowCmd{ID: "an-123"}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "an-123")
		assert.Contains(t, output, "Storia di Milano")
		assert.Contains(t, output, "formal")
		assert.NotContains(t, output, "Milano è la capitale")
	})

	t.Run("includes the plain text with full flag", func(t *testing.T) {
		t.Parallel()

		analyses := &mock.AnalysisService{
			FindAnalysisByIDFn: func(_ context.Context, _ string) (*testo.Analysis, error) {
				return sample, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Analyses: analyses,
		}

		cmd := &main.ShowCmd{ID: "an-123", Full: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Milano è la capitale economica d'Italia.")
	})

	t.Run("reports a missing analysis", func(t *testing.T) {
		t.Parallel()

		analyses := &mock.AnalysisService{
			FindAnalysisByIDFn: func(_ context.Context, _ string) (*testo.Analysis, error) {
				return nil, testo.Errorf(testo.ENOTFOUND, "analysis not found")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Analyses: analyses,
		}

		cmd := &main.ShowCmd{ID: "missing"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, testo.ENOTFOUND, testo.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
