package catalog

import (
	"testing"

	"ortoform-service/internal/app/models"
	"ortoform-service/internal/app/services/core/scoring"
	"ortoform-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewQuestionnaireCatalog(t *testing.T) {
	catalog, err := NewQuestionnaireCatalog(zap.NewNop())
	require.NoError(t, err)

	t.Run("loads every embedded instrument", func(t *testing.T) {
		definitions := catalog.List()
		require.Len(t, definitions, 7)

		ids := make([]string, 0, len(definitions))
		for _, def := range definitions {
			ids = append(ids, def.ID)
		}
		assert.Equal(t, []string{"koos", "hoos", "dash", "sefas", "eq5d", "ndi", "satisfaction"}, ids)
	})

	t.Run("every instrument carries a scoring name", func(t *testing.T) {
		for _, def := range catalog.List() {
			assert.NotEmpty(t, def.ScoringName, def.ID)
			assert.NotEmpty(t, def.Sections, def.ID)
		}
	})

	t.Run("finds instruments by id", func(t *testing.T) {
		def, err := catalog.FindByID("koos")
		require.NoError(t, err)
		assert.Equal(t, "KOOS", def.ScoringName)
		assert.Equal(t, "koosResponses", def.StorageKey())
	})

	t.Run("storage keys are unique across instruments", func(t *testing.T) {
		seen := make(map[string]string)
		for _, def := range catalog.List() {
			previous, dup := seen[def.StorageKey()]
			require.False(t, dup, "%s and %s share storage key %s", previous, def.ID, def.StorageKey())
			seen[def.StorageKey()] = def.ID
		}
	})

	t.Run("unknown ids yield a not-found error", func(t *testing.T) {
		_, err := catalog.FindByID("womac")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		first := catalog.List()
		first[0] = nil
		assert.NotNil(t, catalog.List()[0])
	})
}

func TestValidateDefinition(t *testing.T) {
	c := &questionnaireCatalog{Log: zap.NewNop()}

	valid := func() *models.Questionnaire {
		return &models.Questionnaire{
			ID:          "satisfaction",
			ScoringName: scoring.InstrumentSatisfaction,
			Sections: []models.QuestionnaireSection{
				{Questions: []models.Question{{ID: "S1", Kind: models.QuestionKindRegular}}},
			},
		}
	}

	t.Run("a consistent definition passes", func(t *testing.T) {
		assert.NoError(t, c.validateDefinition(valid()))
	})

	t.Run("duplicate question ids are rejected", func(t *testing.T) {
		def := valid()
		def.Sections[0].Questions = append(def.Sections[0].Questions, models.Question{ID: "S1"})
		assert.Error(t, c.validateDefinition(def))
	})

	t.Run("scoring table referencing a missing question is rejected", func(t *testing.T) {
		def := valid()
		def.Sections[0].Questions[0].ID = "S2"
		assert.Error(t, c.validateDefinition(def))
	})

	t.Run("unknown scoring name is rejected", func(t *testing.T) {
		def := valid()
		def.ScoringName = "WOMAC"
		assert.Error(t, c.validateDefinition(def))
	})
}

func TestDASHWorkQuestionsAreGated(t *testing.T) {
	catalog, err := NewQuestionnaireCatalog(zap.NewNop())
	require.NoError(t, err)

	def, err := catalog.FindByID("dash")
	require.NoError(t, err)

	// Q32-Q36 hang off the work gate Q31, Q38-Q42 off the sports/music
	// gate Q37; the conditional block must survive the definition load.
	for _, id := range []string{"Q32", "Q33", "Q34", "Q35", "Q36"} {
		q := def.FindQuestion(id)
		require.NotNil(t, q, id)
		require.NotNil(t, q.DependsOn, id)
		assert.Equal(t, "Q31", q.DependsOn.QuestionID, id)
	}
	for _, id := range []string{"Q38", "Q39", "Q40", "Q41", "Q42"} {
		q := def.FindQuestion(id)
		require.NotNil(t, q, id)
		require.NotNil(t, q.DependsOn, id)
		assert.Equal(t, "Q37", q.DependsOn.QuestionID, id)
	}
}

func TestEQ5DQuestionKinds(t *testing.T) {
	catalog, err := NewQuestionnaireCatalog(zap.NewNop())
	require.NoError(t, err)

	def, err := catalog.FindByID("eq5d")
	require.NoError(t, err)

	vas := def.FindQuestion("vas")
	require.NotNil(t, vas)
	assert.Equal(t, models.QuestionKindSlider, vas.Kind)
	assert.Equal(t, float64(0), vas.Min)
	assert.Equal(t, float64(100), vas.Max)

	mobility := def.FindQuestion("mobility")
	require.NotNil(t, mobility)
	assert.Equal(t, models.QuestionKindRegular, mobility.Kind)
	assert.Len(t, mobility.Options, 5)
}
