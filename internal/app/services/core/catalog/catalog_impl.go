package catalog

import (
	"fmt"
	"ortoform-service/internal/app/contracts"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/app/services/core/scoring"
	"ortoform-service/internal/pkg/exceptions"
	"ortoform-service/internal/pkg/questionnairedata"

	"go.uber.org/zap"
)

// scoringNameByID bridges route/storage-key short codes to scoring-engine
// instrument names. A loaded instrument missing from this table is a
// definition-time error, not a runtime fallback.
var scoringNameByID = map[string]string{
	"koos":         scoring.InstrumentKOOS,
	"hoos":         scoring.InstrumentHOOS,
	"dash":         scoring.InstrumentDASH,
	"sefas":        scoring.InstrumentSEFAS,
	"eq5d":         scoring.InstrumentEQ5D,
	"ndi":          scoring.InstrumentNDI,
	"satisfaction": scoring.InstrumentSatisfaction,
}

type questionnaireCatalog struct {
	Log     *zap.Logger
	byID    map[string]*models.Questionnaire
	ordered []*models.Questionnaire
}

// NewQuestionnaireCatalog loads and validates every embedded instrument.
// Validation failures are fatal: a misconfigured catalog must never serve a
// blank form.
func NewQuestionnaireCatalog(logger *zap.Logger) (contracts.QuestionnaireCatalog, error) {
	c := &questionnaireCatalog{
		Log:  logger,
		byID: make(map[string]*models.Questionnaire),
	}
	storageKeys := make(map[string]bool)

	if err := scoring.ValidateRegistry(); err != nil {
		return nil, exceptions.ErrQuestionnaireMisconfigured(err)
	}

	for _, id := range questionnairedata.InstrumentIDs {
		def, err := questionnairedata.Load(id)
		if err != nil {
			return nil, exceptions.ErrQuestionnaireMisconfigured(err)
		}

		scoringName, ok := scoringNameByID[id]
		if !ok {
			return nil, exceptions.ErrQuestionnaireMisconfigured(fmt.Errorf("instrument %q has no scoring-name mapping", id))
		}
		def.ScoringName = scoringName

		if err := c.validateDefinition(def); err != nil {
			return nil, exceptions.ErrQuestionnaireMisconfigured(err)
		}

		// Storage keys partition the response store; two instruments sharing
		// one would silently overwrite each other's answers.
		if storageKeys[def.StorageKey()] {
			return nil, exceptions.ErrQuestionnaireMisconfigured(fmt.Errorf("instrument %q reuses storage key %q", def.ID, def.StorageKey()))
		}
		storageKeys[def.StorageKey()] = true

		c.byID[def.ID] = def
		c.ordered = append(c.ordered, def)
	}
	return c, nil
}

func (c *questionnaireCatalog) validateDefinition(def *models.Questionnaire) error {
	seen := make(map[string]bool)
	for _, q := range def.AllQuestions() {
		if q.ID == "" {
			return fmt.Errorf("instrument %q has a question without an id", def.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("instrument %q has duplicate question id %q", def.ID, q.ID)
		}
		seen[q.ID] = true
	}

	// A dependency on an unknown question id keeps the question permanently
	// hidden. That is deliberate policy, but worth a warning at load time.
	for _, q := range def.AllQuestions() {
		if q.DependsOn != nil && !seen[q.DependsOn.QuestionID] {
			c.Log.Warn("question depends on an unknown question and will never be shown",
				zap.String("questionnaire_id", def.ID),
				zap.String("question_id", q.ID),
				zap.String("depends_on", q.DependsOn.QuestionID),
			)
		}
	}

	// The calculator's static section table must only name questions the
	// definition actually contains.
	instrument, err := scoring.ForName(def.ScoringName)
	if err != nil {
		return err
	}
	for _, table := range instrument.Sections {
		for _, id := range table.QuestionIDs {
			if !seen[id] {
				return fmt.Errorf("instrument %q scoring table %q references unknown question %q", def.ID, table.Name, id)
			}
		}
	}
	for _, id := range instrument.TextQuestionIDs {
		if !seen[id] {
			return fmt.Errorf("instrument %q text capture references unknown question %q", def.ID, id)
		}
	}
	return nil
}

func (c *questionnaireCatalog) List() []*models.Questionnaire {
	out := make([]*models.Questionnaire, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *questionnaireCatalog) FindByID(questionnaireID string) (*models.Questionnaire, error) {
	def, ok := c.byID[questionnaireID]
	if !ok {
		return nil, exceptions.ErrQuestionnaireNotFound(questionnaireID)
	}
	return def, nil
}
