package catalog

import (
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	ListQuestionnaires() []responses.QuestionnaireSummary
	FindQuestionnaireByID(questionnaireID string) (*models.Questionnaire, error)
}
