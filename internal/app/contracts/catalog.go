package contracts

import "ortoform-service/internal/app/models"

// QuestionnaireCatalog is the in-memory instrument registry built and
// validated at startup.
type QuestionnaireCatalog interface {
	List() []*models.Questionnaire
	// FindByID resolves a lowercase short code (koos, hoos, ...).
	FindByID(questionnaireID string) (*models.Questionnaire, error)
}
