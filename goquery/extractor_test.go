package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrari/testo"
	"github.com/aferrari/testo/goquery"
)

var _ testo.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers the main element", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		result, err := e.Extract(`<html><head><title>Roma</title></head>
<body><nav>menu</nav><main><p>Roma è la capitale d'Italia.</p></main></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Roma", result.Title)
		assert.Contains(t, result.ContentHTML, "Roma è la capitale d'Italia.")
		assert.NotContains(t, result.ContentHTML, "menu")
	})

	t.Run("falls back to article", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		result, err := e.Extract(`<html><body><article><p>Il Po attraversa Torino.</p></article></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Il Po attraversa Torino.")
	})

	t.Run("matches the content id", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		result, err := e.Extract(`<html><body><div id="content"><p>Venezia è sull'acqua.</p></div></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Venezia è sull'acqua.")
	})

	t.Run("falls back to the whole body", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		result, err := e.Extract(`<html><body><p>Napoli è famosa per la pizza.</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Napoli è famosa per la pizza.")
	})

	t.Run("empty matching region is skipped", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		result, err := e.Extract(`<html><body><main></main><article><p>Firenze e il Rinascimento.</p></article></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Firenze e il Rinascimento.")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		_, err := e.Extract("  ")

		require.Error(t, err)
		assert.Equal(t, testo.EINVALID, testo.ErrorCode(err))
	})
}
