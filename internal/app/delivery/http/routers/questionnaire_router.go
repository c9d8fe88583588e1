package routers

import (
	"ortoform-service/internal/app/services/core/catalog"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, catalogController *catalog.CatalogController) {
	router.Get("/", catalogController.ListQuestionnaires)
	router.Get("/{questionnaire_id}", catalogController.FindQuestionnaireByID)
}
