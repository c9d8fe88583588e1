package questionnairedata

import (
	"testing"

	"ortoform-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEveryInstrument(t *testing.T) {
	counts := map[string]struct {
		sections  int
		questions int
	}{
		"koos":         {6, 42},
		"hoos":         {6, 40},
		"dash":         {6, 42},
		"sefas":        {1, 12},
		"eq5d":         {6, 6},
		"ndi":          {1, 10},
		"satisfaction": {1, 1},
	}

	for _, id := range InstrumentIDs {
		def, err := Load(id)
		require.NoError(t, err, id)

		assert.Equal(t, id, def.ID)
		assert.NotEmpty(t, def.Title, id)

		expected := counts[id]
		assert.Len(t, def.Sections, expected.sections, id)
		assert.Len(t, def.AllQuestions(), expected.questions, id)
	}
}

func TestLoadUnknownInstrument(t *testing.T) {
	_, err := Load("womac")
	assert.Error(t, err)
}

func TestLoadResolvesQuestionKinds(t *testing.T) {
	t.Run("questions with options are regular even when typed text", func(t *testing.T) {
		def, err := Load("dash")
		require.NoError(t, err)

		gate := def.FindQuestion("Q31")
		require.NotNil(t, gate)
		assert.Equal(t, models.QuestionKindRegular, gate.Kind)
		assert.Equal(t, "yes", gate.Options[0].Value)

		free := def.FindQuestion("Q32")
		require.NotNil(t, free)
		assert.Equal(t, models.QuestionKindText, free.Kind)
	})

	t.Run("numeric option values decode as float64", func(t *testing.T) {
		def, err := Load("koos")
		require.NoError(t, err)

		q := def.FindQuestion("S1")
		require.NotNil(t, q)
		require.NotEmpty(t, q.Options)
		assert.IsType(t, float64(0), q.Options[0].Value)
	})

	t.Run("slider questions keep their bounds and labels", func(t *testing.T) {
		def, err := Load("eq5d")
		require.NoError(t, err)

		vas := def.FindQuestion("vas")
		require.NotNil(t, vas)
		assert.Equal(t, models.QuestionKindSlider, vas.Kind)
		assert.Less(t, vas.Min, vas.Max)
	})
}
