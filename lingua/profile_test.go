package lingua_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aferrari/testo"
	"github.com/aferrari/testo/lingua"
)

func TestProfile(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields zero profile", func(t *testing.T) {
		t.Parallel()

		p := lingua.Profile("")

		assert.Equal(t, 0, p.WordCount)
		assert.Equal(t, 0, p.ReadingTimeMinutes)
		assert.Equal(t, 0.0, p.LanguageConfidence)
		assert.Equal(t, testo.FormalityMixed, p.Formality)
		assert.Empty(t, p.GeographicReferences)
		assert.Empty(t, p.CulturalReferences)
		assert.Empty(t, p.DialectalIndicators)
	})

	t.Run("counts words and reading time", func(t *testing.T) {
		t.Parallel()

		p := lingua.Profile("Milano ha una storia molto lunga.")

		assert.Equal(t, 6, p.WordCount)
		assert.Equal(t, 1, p.ReadingTimeMinutes)
	})

	t.Run("italian text scores higher than english text", func(t *testing.T) {
		t.Parallel()

		it := lingua.Profile("Milano è la capitale economica d'Italia e la storia della città è importante.")
		en := lingua.Profile("The quick brown fox jumps over the lazy dog near the river bank.")

		assert.Greater(t, it.LanguageConfidence, 20.0)
		assert.Greater(t, it.LanguageConfidence, en.LanguageConfidence)
	})

	t.Run("confidence never exceeds 100", func(t *testing.T) {
		t.Parallel()

		p := lingua.Profile("la la la di di di che che che è già più città Roma Milano Napoli pizza gelato")

		assert.LessOrEqual(t, p.LanguageConfidence, 100.0)
	})

	t.Run("detects geographic references sorted", func(t *testing.T) {
		t.Parallel()

		p := lingua.Profile("Roma e Milano sono in Italia, vicino al Po.")

		assert.Equal(t, []string{"italia", "milano", "po", "roma"}, p.GeographicReferences)
	})

	t.Run("substring inside a longer word is not a reference", func(t *testing.T) {
		t.Parallel()

		p := lingua.Profile("Lo stile romanico è importante.")

		assert.Empty(t, p.GeographicReferences)
	})

	t.Run("detects cultural references", func(t *testing.T) {
		t.Parallel()

		p := lingua.Profile("Il Rinascimento e la pizza di Dante.")

		assert.Equal(t, []string{"dante", "pizza", "rinascimento"}, p.CulturalReferences)
	})

	t.Run("detects dialectal indicators", func(t *testing.T) {
		t.Parallel()

		p := lingua.Profile("Daje, annamo al mare.")

		assert.Equal(t, []string{"annamo", "daje"}, p.DialectalIndicators)
	})
}

func TestProfileFormality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want testo.Formality
	}{
		{
			"academic markers dominate",
			"La metodologia adottata conferma l'ipotesi formulata in letteratura.",
			testo.FormalityAcademic,
		},
		{
			"formal markers dominate",
			"Egregio dottore, con la presente confermiamo. Pertanto procediamo.",
			testo.FormalityFormal,
		},
		{
			"informal markers dominate",
			"Ciao! Dai, che figo, davvero mitico.",
			testo.FormalityInformal,
		},
		{
			"formal and informal tie is mixed",
			"Egregio amico, ciao.",
			testo.FormalityMixed,
		},
		{
			"academic tie falls through to formal",
			"La metodologia è pertanto valida.",
			testo.FormalityFormal,
		},
		{
			"no markers is mixed",
			"Il treno parte alle otto dalla stazione.",
			testo.FormalityMixed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := lingua.Profile(tt.text)

			assert.Equal(t, tt.want, p.Formality)
		})
	}
}
