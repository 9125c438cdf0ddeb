package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aferrari/testo/markup"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("replaces curly quotes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `"ciao" e 'mondo'`, markup.Normalize("“ciao” e ‘mondo’"))
	})

	t.Run("replaces dashes with hyphen-minus", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Roma - Milano - Napoli", markup.Normalize("Roma – Milano — Napoli"))
	})

	t.Run("replaces ellipsis with three periods", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "aspetta...", markup.Normalize("aspetta…"))
	})

	t.Run("replaces non-breaking space", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "il mare", markup.Normalize("il mare"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"“Ciao”… – tutto ‘bene’? Sì.",
			"già normalizzato: 'ok' \"ok\" - ...",
			"",
		}
		for _, in := range inputs {
			once := markup.Normalize(in)
			assert.Equal(t, once, markup.Normalize(once))
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", markup.Normalize(""))
	})

	t.Run("preserves accented letters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "città è già più", markup.Normalize("città è già più"))
	})
}
