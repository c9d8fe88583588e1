package catalog

import (
	"ortoform-service/internal/app/contracts"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/pkg/dto/responses"
)

type catalogUsecase struct {
	Catalog contracts.QuestionnaireCatalog
}

func NewCatalogUsecase(questionnaireCatalog contracts.QuestionnaireCatalog) CatalogUsecase {
	return &catalogUsecase{
		Catalog: questionnaireCatalog,
	}
}

func (uc *catalogUsecase) ListQuestionnaires() []responses.QuestionnaireSummary {
	defs := uc.Catalog.List()
	out := make([]responses.QuestionnaireSummary, 0, len(defs))
	for _, def := range defs {
		out = append(out, responses.QuestionnaireSummary{
			ID:            def.ID,
			Title:         def.Title,
			Subtitle:      def.Subtitle,
			ScoringName:   def.ScoringName,
			QuestionCount: len(def.AllQuestions()),
		})
	}
	return out
}

func (uc *catalogUsecase) FindQuestionnaireByID(questionnaireID string) (*models.Questionnaire, error) {
	return uc.Catalog.FindByID(questionnaireID)
}
